package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure RecordService implements ogmeta.RecordService at compile time.
var _ ogmeta.RecordService = (*sqlite.RecordService)(nil)

// mustOpenDB returns an open in-memory database, closed at test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

// testProperties returns a conforming set of extracted properties.
func testProperties() *ogmeta.Properties {
	desc := "A description"
	section := "Tech"
	return &ogmeta.Properties{
		Title:       "A Post",
		Type:        "article",
		URL:         "https://example.com/post",
		Description: &desc,
		Images: []ogmeta.Image{
			{URL: "https://example.com/post.jpg", Width: 640, Height: 480},
		},
		Article: &ogmeta.Article{
			Section: &section,
			Authors: []string{"https://example.com/jane"},
		},
	}
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp and content hash", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		rec := &ogmeta.Record{
			SourceURL:  "https://example.com/post",
			HTML:       "<html></html>",
			Properties: testProperties(),
		}

		require.NoError(t, s.CreateRecord(context.Background(), rec))

		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.ContentHash)
		assert.False(t, rec.ExtractedAt.IsZero())
	})

	t.Run("rejects a record without a source URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		rec := &ogmeta.Record{Properties: testProperties()}

		err := s.CreateRecord(context.Background(), rec)

		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	})

	t.Run("rejects a record without properties", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		rec := &ogmeta.Record{SourceURL: "https://example.com/post"}

		err := s.CreateRecord(context.Background(), rec)

		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all properties", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		rec := &ogmeta.Record{
			SourceURL:  "https://example.com/post",
			HTML:       "<html></html>",
			Properties: testProperties(),
		}
		require.NoError(t, s.CreateRecord(context.Background(), rec))

		got, err := s.FindRecordByID(context.Background(), rec.ID)

		require.NoError(t, err)
		assert.Equal(t, rec.SourceURL, got.SourceURL)
		assert.Equal(t, rec.ContentHash, got.ContentHash)
		assert.Equal(t, rec.Properties, got.Properties)
		assert.Nil(t, got.Properties.SiteName)
		assert.Nil(t, got.Properties.Profile)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))

		_, err := s.FindRecordByID(context.Background(), "missing")

		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("filters by source URL and type", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		article := &ogmeta.Record{
			SourceURL:  "https://example.com/post",
			Properties: testProperties(),
		}
		require.NoError(t, s.CreateRecord(ctx, article))

		site := &ogmeta.Record{
			SourceURL: "https://example.com/",
			Properties: &ogmeta.Properties{
				Title:  "Home",
				Type:   "website",
				URL:    "https://example.com/",
				Images: []ogmeta.Image{{URL: "https://example.com/a.jpg"}},
			},
		}
		require.NoError(t, s.CreateRecord(ctx, site))

		articleType := "article"
		recs, err := s.FindRecords(ctx, ogmeta.RecordFilter{Type: &articleType})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "https://example.com/post", recs[0].SourceURL)

		sourceURL := "https://example.com/"
		recs, err = s.FindRecords(ctx, ogmeta.RecordFilter{SourceURL: &sourceURL})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Home", recs[0].Properties.Title)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		for range 3 {
			rec := &ogmeta.Record{
				SourceURL:  "https://example.com/post",
				Properties: testProperties(),
			}
			require.NoError(t, s.CreateRecord(ctx, rec))
		}

		recs, err := s.FindRecords(ctx, ogmeta.RecordFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, recs, 2)

		recs, err = s.FindRecords(ctx, ogmeta.RecordFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, recs, 1)
	})
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing record", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(mustOpenDB(t))
		ctx := context.Background()

		rec := &ogmeta.Record{
			SourceURL:  "https://example.com/post",
			Properties: testProperties(),
		}
		require.NoError(t, s.CreateRecord(ctx, rec))

		require.NoError(t, s.DeleteRecord(ctx, rec.ID))

		_, err := s.FindRecordByID(ctx, rec.ID)
		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewRecordService(mustOpenDB(t)).DeleteRecord(context.Background(), "missing")

		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})
}
