// Package batch runs Open Graph extraction concurrently over a list of
// URLs, with per-domain rate limiting and duplicate-URL skipping.
package batch

import (
	"context"
	"net/url"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of in-flight fetches.
const DefaultConcurrency = 10

// DefaultRPS is the default per-domain request rate.
const DefaultRPS = 2.0

// Result is the outcome for one URL. Properties is nil when the page
// carried no conforming Open Graph markup; that is not an error.
type Result struct {
	URL        string
	HTML       string
	Properties *ogmeta.Properties
	Err        error
}

// Runner fetches pages and extracts their Open Graph metadata.
type Runner struct {
	fetcher     ogmeta.Fetcher
	source      ogmeta.Source
	limiter     *DomainLimiter
	concurrency int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the number of concurrent fetches.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithRPS sets the per-domain requests-per-second limit.
func WithRPS(rps float64) RunnerOption {
	return func(r *Runner) {
		if rps > 0 {
			r.limiter = NewDomainLimiter(rps)
		}
	}
}

// NewRunner creates a Runner using the given fetcher and snapshot source.
func NewRunner(fetcher ogmeta.Fetcher, source ogmeta.Source, opts ...RunnerOption) *Runner {
	r := &Runner{
		fetcher:     fetcher,
		source:      source,
		limiter:     NewDomainLimiter(DefaultRPS),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes the URLs and returns one result per unique URL, in input
// order. Duplicate URLs (after normalization) are processed once. Per-URL
// failures are reported in the result, not returned; Run itself only fails
// when the context is canceled.
func (r *Runner) Run(ctx context.Context, urls []string) ([]Result, error) {
	seen := bloom.NewFilter(uint(len(urls))+1, 0.001)

	var unique []string
	for _, u := range urls {
		if u == "" || seen.Seen(u) {
			continue
		}
		unique = append(unique, u)
	}

	results := make([]Result, len(unique))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, u := range unique {
		g.Go(func() error {
			results[i] = r.process(ctx, u)
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) process(ctx context.Context, rawURL string) Result {
	res := Result{URL: rawURL}

	if err := r.limiter.Wait(ctx, domainOf(rawURL)); err != nil {
		res.Err = err
		return res
	}

	html, err := r.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		res.Err = err
		return res
	}
	res.HTML = html

	snap, err := r.source.Snapshot(html)
	if err != nil {
		res.Err = err
		return res
	}

	res.Properties = ogmeta.Extract(snap)
	return res
}

// domainOf returns the host part of the URL for rate limiting, or the raw
// string when it cannot be parsed so malformed inputs still share a bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
