package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ogmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ogmeta.RecordService = (*RecordService)(nil)

// RecordService implements ogmeta.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateRecord stores a new extraction result.
func (s *RecordService) CreateRecord(ctx context.Context, rec *ogmeta.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ExtractedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.HTML)

	images, err := json.Marshal(rec.Properties.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}
	var article []byte
	if rec.Properties.Article != nil {
		article, err = json.Marshal(rec.Properties.Article)
		if err != nil {
			return fmt.Errorf("failed to encode article: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, source_url, title, type, url, description, site_name, profile, images, article, html, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, rec.Properties.Title, rec.Properties.Type, rec.Properties.URL,
		rec.Properties.Description, rec.Properties.SiteName, rec.Properties.Profile,
		string(images), nullableText(article), rec.HTML, rec.ContentHash,
		rec.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*ogmeta.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectRecords+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ogmeta.Errorf(ogmeta.ENOTFOUND, "record not found")
	}
	return recs[0], nil
}

// FindRecords retrieves records matching the filter, most recent first.
func (s *RecordService) FindRecords(ctx context.Context, filter ogmeta.RecordFilter) ([]*ogmeta.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectRecords)
	query.WriteString(" WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, *filter.Type)
	}

	query.WriteString(" ORDER BY extracted_at DESC, id")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ogmeta.Errorf(ogmeta.ENOTFOUND, "record not found")
	}
	return nil
}

const selectRecords = `SELECT id, source_url, title, type, url, description, site_name, profile, images, article, html, content_hash, extracted_at FROM records`

// scanRecords reads result rows back into records, decoding the JSON
// columns.
func scanRecords(rows *sql.Rows) ([]*ogmeta.Record, error) {
	var recs []*ogmeta.Record

	for rows.Next() {
		rec := &ogmeta.Record{Properties: &ogmeta.Properties{}}
		var images string
		var article sql.NullString
		var extractedAt string

		if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.Properties.Title,
			&rec.Properties.Type, &rec.Properties.URL, &rec.Properties.Description,
			&rec.Properties.SiteName, &rec.Properties.Profile, &images, &article,
			&rec.HTML, &rec.ContentHash, &extractedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(images), &rec.Properties.Images); err != nil {
			return nil, fmt.Errorf("failed to decode images: %w", err)
		}
		if article.Valid {
			rec.Properties.Article = &ogmeta.Article{}
			if err := json.Unmarshal([]byte(article.String), rec.Properties.Article); err != nil {
				return nil, fmt.Errorf("failed to decode article: %w", err)
			}
		}

		var err error
		rec.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
		}

		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// nullableText maps empty byte slices to NULL.
func nullableText(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}
