package ogmeta

import "strconv"

// Image holds the structured properties of one og:image group.
type Image struct {
	URL       string `json:"url"`
	SecureURL string `json:"secureUrl,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// imageEntry is one image group under construction. The root slot holds the
// content of the bare og:image declaration that started the group; the
// remaining slots hold sub-property contents.
type imageEntry struct {
	root      string
	url       string
	secureURL string
	typ       string
	width     string
	height    string
}

// imageParser groups the repeated og:image structures. A root marker always
// starts a new entry; sub-properties attach to the current entry, creating
// an orphan entry if none exists yet.
type imageParser struct {
	entries []*imageEntry
	current *imageEntry
}

var _ structuralParser = (*imageParser)(nil)

func (p *imageParser) consume(suffix, content string, _ map[string]string) bool {
	if suffix == imageProp {
		// Root property means end of the current structure.
		p.append(&imageEntry{root: content})
		return false
	}

	if p.current == nil {
		// Sub-property arrived before any root marker.
		p.append(&imageEntry{})
	}

	switch suffix {
	case imageURLProp:
		p.current.url = content
	case imageSecureURLProp:
		p.current.secureURL = content
	case imageTypeProp:
		p.current.typ = content
	case imageWidthProp:
		p.current.width = content
	case imageHeightProp:
		p.current.height = content
	}

	// Image values never enter the property table.
	return false
}

func (p *imageParser) append(entry *imageEntry) {
	p.entries = append(p.entries, entry)
	p.current = entry
}

// finalize removes any entry that never received its root property.
// Pruning depends only on the root slot, not on sub-field completeness.
func (p *imageParser) finalize() {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if p.entries[i].root == "" {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
		}
	}
}

// images returns the finalized image groups in declaration order, or nil if
// none survived finalization. The output URL is the explicit image:url
// sub-property when present, falling back to the root marker content.
// Width and height are parsed as base-10 integers, defaulting to 0.
func (p *imageParser) images() []Image {
	if len(p.entries) == 0 {
		return nil
	}

	out := make([]Image, len(p.entries))
	for i, entry := range p.entries {
		out[i] = Image{
			URL:       entry.root,
			SecureURL: entry.secureURL,
			Type:      entry.typ,
			Width:     parseDimension(entry.width),
			Height:    parseDimension(entry.height),
		}
		if entry.url != "" {
			out[i].URL = entry.url
		}
	}
	return out
}

// parseDimension parses a width/height value, recovering to 0 on any
// failure.
func parseDimension(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
