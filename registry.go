package ogmeta

// Canonical property suffixes. These are the keys used in the property
// table and the names matched against incoming declarations.
const (
	titleProp       = "title"
	typeProp        = "type"
	urlProp         = "url"
	descriptionProp = "description"
	siteNameProp    = "site_name"

	imageProp          = "image"
	imageStructPfx     = "image:"
	imageURLProp       = "image:url"
	imageSecureURLProp = "image:secure_url"
	imageTypeProp      = "image:type"
	imageWidthProp     = "image:width"
	imageHeightProp    = "image:height"

	firstNameProp = "first_name"
	lastNameProp  = "last_name"

	sectionProp        = "section"
	publishedTimeProp  = "published_time"
	modifiedTimeProp   = "modified_time"
	expirationTimeProp = "expiration_time"
	authorProp         = "author"
)

// structuralParser is a stateful consumer for a property family. consume is
// called with the prefix-stripped suffix, the declaration's content, and a
// read-only view of the property table; it reports whether the value should
// also be stored in the flat property table.
type structuralParser interface {
	consume(suffix, content string, table map[string]string) bool
}

// propertyRecord associates a canonical suffix with its owning namespace
// and, for structured property families, a structural parser.
type propertyRecord struct {
	suffix string
	ns     Namespace
	parser structuralParser
}

// newRegistry builds the static property registry. The slice order is the
// match priority: the scanner stops at the first qualifying record, which
// is what lets the record keyed on the bare "image:" prefix catch every
// image sub-property.
func newRegistry(images *imageParser, profile *profileParser, article *articleParser) []propertyRecord {
	return []propertyRecord{
		{titleProp, NamespaceOpenGraph, nil},
		{typeProp, NamespaceOpenGraph, nil},
		{urlProp, NamespaceOpenGraph, nil},
		{descriptionProp, NamespaceOpenGraph, nil},
		{siteNameProp, NamespaceOpenGraph, nil},
		{imageProp, NamespaceOpenGraph, images},
		{imageStructPfx, NamespaceOpenGraph, images},
		{firstNameProp, NamespaceProfile, profile},
		{lastNameProp, NamespaceProfile, profile},
		{sectionProp, NamespaceArticle, article},
		{publishedTimeProp, NamespaceArticle, article},
		{modifiedTimeProp, NamespaceArticle, article},
		{expirationTimeProp, NamespaceArticle, article},
		{authorProp, NamespaceArticle, article},
	}
}
