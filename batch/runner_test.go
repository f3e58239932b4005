package batch_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/batch"
	"github.com/fwojciec/ogmeta/goquery"
	"github.com/fwojciec/ogmeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conformingHTML = `<html><head>
<meta property="og:title" content="Title">
<meta property="og:type" content="website">
<meta property="og:url" content="https://example.com/">
<meta property="og:image" content="https://example.com/a.jpg">
</head><body></body></html>`

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts properties for each URL in input order", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return conformingHTML, nil
			},
		}

		r := batch.NewRunner(fetcher, goquery.NewSource(), batch.WithRPS(1000))
		results, err := r.Run(context.Background(), []string{
			"https://example.com/a",
			"https://example.com/b",
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "https://example.com/a", results[0].URL)
		assert.Equal(t, "https://example.com/b", results[1].URL)
		require.NotNil(t, results[0].Properties)
		assert.Equal(t, "Title", results[0].Properties.Title)
	})

	t.Run("skips duplicate and empty URLs", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var fetched []string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				mu.Lock()
				fetched = append(fetched, url)
				mu.Unlock()
				return conformingHTML, nil
			},
		}

		r := batch.NewRunner(fetcher, goquery.NewSource(), batch.WithRPS(1000))
		results, err := r.Run(context.Background(), []string{
			"https://example.com/a",
			"",
			"https://example.com/a#frag",
			"https://example.com/b",
		})

		require.NoError(t, err)
		assert.Len(t, results, 2)
		assert.Len(t, fetched, 2)
	})

	t.Run("non-conforming pages yield nil properties without error", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html><head></head><body></body></html>", nil
			},
		}

		r := batch.NewRunner(fetcher, goquery.NewSource(), batch.WithRPS(1000))
		results, err := r.Run(context.Background(), []string{"https://example.com/a"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.NoError(t, results[0].Err)
		assert.Nil(t, results[0].Properties)
	})

	t.Run("fetch failures are reported per URL", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if url == "https://example.com/bad" {
					return "", fetchErr
				}
				return conformingHTML, nil
			},
		}

		r := batch.NewRunner(fetcher, goquery.NewSource(), batch.WithRPS(1000))
		results, err := r.Run(context.Background(), []string{
			"https://example.com/bad",
			"https://example.com/good",
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.ErrorIs(t, results[0].Err, fetchErr)
		require.NotNil(t, results[1].Properties)
	})

	t.Run("snapshot source failures are reported per URL", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return conformingHTML, nil
			},
		}
		source := &mock.Source{
			SnapshotFn: func(html string) (*ogmeta.Document, error) {
				return nil, ogmeta.Errorf(ogmeta.EINVALID, "bad markup")
			},
		}

		r := batch.NewRunner(fetcher, source, batch.WithRPS(1000))
		results, err := r.Run(context.Background(), []string{"https://example.com/a"})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(results[0].Err))
	})

	t.Run("canceled context aborts the run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", ctx.Err()
			},
		}

		r := batch.NewRunner(fetcher, goquery.NewSource(), batch.WithRPS(1000))
		_, err := r.Run(ctx, []string{"https://example.com/a"})

		assert.Error(t, err)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows independent domains immediately", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(1)

		require.NoError(t, l.Wait(context.Background(), "a.example.com"))
		require.NoError(t, l.Wait(context.Background(), "b.example.com"))
	})

	t.Run("canceled context interrupts the wait", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(0.001)
		require.NoError(t, l.Wait(context.Background(), "a.example.com"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, l.Wait(ctx, "a.example.com"))
	})
}
