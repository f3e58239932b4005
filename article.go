package ogmeta

import "strings"

// Article holds the properties of the article object. Each field is
// independently optional; Authors preserves declaration order.
type Article struct {
	PublishedTime  *string  `json:"publishedTime,omitempty"`
	ModifiedTime   *string  `json:"modifiedTime,omitempty"`
	ExpirationTime *string  `json:"expirationTime,omitempty"`
	Section        *string  `json:"section,omitempty"`
	Authors        []string `json:"authors,omitempty"`
}

// articleParser gates the article property family on the document's
// declared object type. Unlike the profile gate, the type is re-checked on
// every declaration until it confirms, so a type declared after the first
// article property still takes effect.
type articleParser struct {
	isArticleType bool
	authors       []string
}

var _ structuralParser = (*articleParser)(nil)

func (p *articleParser) consume(suffix, content string, table map[string]string) bool {
	if !p.isArticleType {
		objType, ok := table[typeProp]
		p.isArticleType = ok && strings.EqualFold(objType, articleObjectType)
	}
	if !p.isArticleType {
		return false
	}

	// The author property is an array of profile URLs, collected here
	// rather than stored in the flat table.
	if suffix == authorProp {
		p.authors = append(p.authors, content)
		return false
	}

	// Remaining article properties are stateless.
	return true
}

// authorList returns the collected author URLs in arrival order, or nil if
// none were collected.
func (p *articleParser) authorList() []string {
	if len(p.authors) == 0 {
		return nil
	}
	return p.authors
}
