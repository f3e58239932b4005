package ogmeta

import (
	"regexp"
	"strings"
)

// Namespace identifies one of the Open Graph Protocol namespaces this
// package recognizes.
type Namespace int

// The recognized namespaces.
const (
	NamespaceOpenGraph Namespace = iota
	NamespaceProfile
	NamespaceArticle
)

// Default prefix tokens, used for any namespace the document does not bind
// explicitly.
const (
	defaultOpenGraphPrefix = "og"
	profileObjectType      = "profile"
	articleObjectType      = "article"
)

// PrefixMap maps each recognized namespace to its prefix token. A resolved
// map always contains exactly one token per namespace.
type PrefixMap map[Namespace]string

// prefixAttrRe matches one binding inside a "prefix" attribute value, e.g.
// "og: http://ogp.me/ns#" or "article: http://ogp.me/ns/article#".
var prefixAttrRe = regexp.MustCompile(`(?i)(\w+):\s+http://ogp\.me/ns((?:/\w+)*)#`)

// xmlnsNameRe matches attribute names like "xmlns:og".
var xmlnsNameRe = regexp.MustCompile(`(?i)^xmlns:(\w+)`)

// xmlnsValueRe matches an OGP namespace URI at the start of an xmlns
// attribute value.
var xmlnsValueRe = regexp.MustCompile(`(?i)^http://ogp\.me/ns((?:/\w+)*)#`)

// ResolvePrefixes derives the namespace prefix mapping from the root
// element's attributes and the attributes of each head element. Two
// mutually exclusive strategies are tried: a "prefix" attribute on the root
// element (or on the single head element, if exactly one exists), and
// falling back to xmlns:* declarations on the root element. Any namespace
// left unbound gets its common default token, so the returned map is always
// fully populated. Malformed or absent inputs silently yield defaults.
func ResolvePrefixes(rootAttrs []Attr, headAttrs [][]Attr) PrefixMap {
	prefixes := make(PrefixMap, 3)

	decl := attrValue(rootAttrs, "prefix")
	if decl == "" && len(headAttrs) == 1 {
		decl = attrValue(headAttrs[0], "prefix")
	}

	if decl != "" {
		// There could be multiple bindings in one attribute value.
		for _, m := range prefixAttrRe.FindAllStringSubmatch(decl, -1) {
			bindPrefix(prefixes, m[1], m[2])
		}
	} else {
		// No "prefix" attribute anywhere, look for xmlns declarations on
		// the root element, e.g. xmlns:og="http://ogp.me/ns#".
		for _, attr := range rootAttrs {
			name := xmlnsNameRe.FindStringSubmatch(strings.ToLower(attr.Name))
			if name == nil {
				continue
			}
			value := xmlnsValueRe.FindStringSubmatch(attr.Value)
			if value == nil {
				continue
			}
			bindPrefix(prefixes, name[1], value[1])
		}
	}

	if _, ok := prefixes[NamespaceOpenGraph]; !ok {
		prefixes[NamespaceOpenGraph] = defaultOpenGraphPrefix
	}
	if _, ok := prefixes[NamespaceProfile]; !ok {
		prefixes[NamespaceProfile] = profileObjectType
	}
	if _, ok := prefixes[NamespaceArticle]; !ok {
		prefixes[NamespaceArticle] = articleObjectType
	}

	return prefixes
}

// bindPrefix binds a prefix token to the namespace identified by the URI
// path. An empty path means the base namespace; the object type is the
// trailing path segment. Unknown object types bind nothing.
func bindPrefix(prefixes PrefixMap, token, path string) {
	if path == "" {
		prefixes[NamespaceOpenGraph] = token
		return
	}

	objType := path[strings.LastIndex(path, "/")+1:]
	switch objType {
	case profileObjectType:
		prefixes[NamespaceProfile] = token
	case articleObjectType:
		prefixes[NamespaceArticle] = token
	}
}

// attrValue returns the value of the named attribute, matching the name
// case-insensitively, or an empty string if absent.
func attrValue(attrs []Attr, name string) string {
	for _, attr := range attrs {
		if strings.EqualFold(attr.Name, name) {
			return attr.Value
		}
	}
	return ""
}
