package ogmeta

import "strings"

// Properties is the extracted Open Graph metadata of one document. Title,
// Type and URL are always present on a successful extraction. Pointer
// fields distinguish an absent property from one declared with empty
// content.
type Properties struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	URL         string   `json:"url"`
	Description *string  `json:"description,omitempty"`
	SiteName    *string  `json:"siteName,omitempty"`
	Images      []Image  `json:"images"`
	Profile     *string  `json:"profile,omitempty"`
	Article     *Article `json:"article,omitempty"`
}

// extraction carries the state of one pass: the flat property table, the
// resolved prefixes, and the three structural parsers. One extraction owns
// its state exclusively; nothing is shared across passes.
type extraction struct {
	table    map[string]string
	prefixes PrefixMap
	images   *imageParser
	profile  *profileParser
	article  *articleParser
	registry []propertyRecord
}

// Extract runs one linear pass over the document snapshot: resolve
// prefixes, scan the ordered declarations, finalize the image groups, and
// check conformance. It returns nil when the document does not conform to
// the protocol, i.e. when any of title, type, url or at least one valid
// image is missing. Extract never panics past this boundary and is a pure
// function of its input.
func Extract(doc *Document) *Properties {
	if doc == nil {
		return nil
	}

	e := &extraction{
		table:   make(map[string]string),
		images:  &imageParser{},
		profile: &profileParser{},
		article: &articleParser{},
	}
	e.registry = newRegistry(e.images, e.profile, e.article)
	e.prefixes = ResolvePrefixes(doc.RootAttrs, doc.HeadAttrs)

	for _, meta := range doc.Metas {
		e.scan(meta)
	}
	e.images.finalize()

	return e.assemble()
}

// scan matches one declaration against the registry and dispatches it.
// The first qualifying record wins; declarations match at most one record.
func (e *extraction) scan(meta Meta) {
	property := strings.ToLower(meta.Property)

	for _, record := range e.registry {
		prefix := e.prefixes[record.ns] + ":"
		if !strings.HasPrefix(property, prefix+record.suffix) {
			continue
		}
		suffix := property[len(prefix):]

		store := true
		if record.parser != nil {
			store = record.parser.consume(suffix, meta.Content, e.table)
		}
		if store {
			e.table[record.suffix] = meta.Content
		}
		break
	}
}

// assemble enforces conformance and builds the result. Presence means the
// key exists in the property table, even with empty content.
func (e *extraction) assemble() *Properties {
	title, hasTitle := e.table[titleProp]
	objType, hasType := e.table[typeProp]
	url, hasURL := e.table[urlProp]
	images := e.images.images()

	if !hasTitle || !hasType || !hasURL || images == nil {
		return nil
	}

	props := &Properties{
		Title:  title,
		Type:   objType,
		URL:    url,
		Images: images,
	}
	if desc, ok := e.table[descriptionProp]; ok {
		props.Description = &desc
	}
	if site, ok := e.table[siteNameProp]; ok {
		props.SiteName = &site
	}
	props.Profile = e.profile.fullName(e.table)
	props.Article = e.assembleArticle()

	return props
}

// assembleArticle returns the article object, or nil when the section, all
// three timestamps and the author list are all absent. There is no
// completeness requirement beyond that.
func (e *extraction) assembleArticle() *Article {
	article := &Article{
		PublishedTime:  e.tableValue(publishedTimeProp),
		ModifiedTime:   e.tableValue(modifiedTimeProp),
		ExpirationTime: e.tableValue(expirationTimeProp),
		Section:        e.tableValue(sectionProp),
		Authors:        e.article.authorList(),
	}

	if article.PublishedTime == nil && article.ModifiedTime == nil &&
		article.ExpirationTime == nil && article.Section == nil &&
		article.Authors == nil {
		return nil
	}
	return article
}

// tableValue returns a pointer to the property's value, or nil if the key
// is absent.
func (e *extraction) tableValue(key string) *string {
	if value, ok := e.table[key]; ok {
		return &value
	}
	return nil
}
