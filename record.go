package ogmeta

import (
	"context"
	"time"
)

// Record represents one stored extraction result.
type Record struct {
	ID          string      `json:"id"`
	SourceURL   string      `json:"sourceUrl"`
	HTML        string      `json:"html,omitempty"`
	ContentHash string      `json:"contentHash"`
	Properties  *Properties `json:"properties"`
	ExtractedAt time.Time   `json:"extractedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.Properties == nil {
		return Errorf(EINVALID, "record properties required")
	}
	return nil
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`
	Type      *string `json:"type"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordService represents a service for managing stored extraction
// results.
type RecordService interface {
	// CreateRecord stores a new extraction result.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, most recent first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}
