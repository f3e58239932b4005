// Package goquery provides a goquery-based implementation of ogmeta.Source
// that turns raw HTML into the extraction core's document snapshot.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogmeta"
	"golang.org/x/net/html"
)

// Ensure Source implements ogmeta.Source at compile time.
var _ ogmeta.Source = (*Source)(nil)

// Source builds document snapshots from HTML markup.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Snapshot parses the HTML and collects the root element's attributes, the
// attributes of each head element in document order, and every meta
// element's property/content pair in document order.
func (s *Source) Snapshot(rawHTML string) (*ogmeta.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, ogmeta.Errorf(ogmeta.EINVALID, "failed to parse HTML: %v", err)
	}

	snap := &ogmeta.Document{}

	if root := doc.Find("html").First(); len(root.Nodes) > 0 {
		snap.RootAttrs = nodeAttrs(root.Nodes[0])
	}

	doc.Find("head").Each(func(_ int, sel *goquery.Selection) {
		snap.HeadAttrs = append(snap.HeadAttrs, nodeAttrs(sel.Nodes[0]))
	})

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		snap.Metas = append(snap.Metas, ogmeta.Meta{
			Property: sel.AttrOr("property", ""),
			Content:  sel.AttrOr("content", ""),
		})
	})

	return snap, nil
}

// nodeAttrs returns all attributes of a node as ordered name/value pairs.
// Namespaced attributes like xmlns:og keep their namespace in the name.
func nodeAttrs(n *html.Node) []ogmeta.Attr {
	if len(n.Attr) == 0 {
		return nil
	}

	attrs := make([]ogmeta.Attr, 0, len(n.Attr))
	for _, a := range n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		attrs = append(attrs, ogmeta.Attr{Name: name, Value: a.Val})
	}
	return attrs
}
