package ogmeta

// Attr represents a single element attribute as a name/value pair.
type Attr struct {
	Name  string
	Value string
}

// Meta represents one metadata declaration: the raw property string of a
// meta element and its content.
type Meta struct {
	Property string
	Content  string
}

// Document is the immutable input snapshot for one extraction pass: the
// attributes of the document's root element, the attributes of each head
// element in document order, and the ordered meta declarations.
type Document struct {
	RootAttrs []Attr
	HeadAttrs [][]Attr
	Metas     []Meta
}

// Source produces a Document snapshot from raw HTML.
// Implementations hide the markup traversal; the extraction core only ever
// sees the snapshot.
type Source interface {
	Snapshot(html string) (*Document, error)
}
