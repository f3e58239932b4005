// Package bloom provides probabilistic URL deduplication for batch
// extraction runs.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks URLs that have already been dispatched. URLs are normalized
// before testing so that trivially equivalent spellings dedupe together.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the URL was already added, and adds it. False
// positives are possible; false negatives are not.
func (f *Filter) Seen(rawURL string) bool {
	key := Normalize(rawURL)
	if f.f.TestString(key) {
		return true
	}
	f.f.AddString(key)
	return false
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Normalize lowercases the scheme and host and strips the fragment, which
// never reaches the server. Unparseable URLs are used verbatim.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u.String()
}
