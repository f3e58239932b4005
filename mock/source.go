package mock

import "github.com/fwojciec/ogmeta"

var _ ogmeta.Source = (*Source)(nil)

// Source is a mock implementation of ogmeta.Source.
type Source struct {
	SnapshotFn func(html string) (*ogmeta.Document, error)
}

func (s *Source) Snapshot(html string) (*ogmeta.Document, error) {
	return s.SnapshotFn(html)
}
