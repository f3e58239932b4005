package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/batch"
)

// batchLine is one NDJSON output line of the batch command.
type batchLine struct {
	URL        string             `json:"url"`
	Properties *ogmeta.Properties `json:"properties,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := readURLs(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogmeta.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		return ogmeta.Errorf(ogmeta.EINVALID, "no URLs to process")
	}

	runner := batch.NewRunner(deps.Fetcher, deps.Source,
		batch.WithConcurrency(c.Concurrency),
		batch.WithRPS(c.RPS),
	)

	results, err := runner.Run(deps.Ctx, urls)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	var failures int
	for _, res := range results {
		line := batchLine{URL: res.URL, Properties: res.Properties}
		if res.Err != nil {
			line.Error = res.Err.Error()
			failures++
		}
		if err := enc.Encode(line); err != nil {
			return err
		}

		if c.Save && res.Properties != nil {
			rec := &ogmeta.Record{
				SourceURL:  res.URL,
				HTML:       res.HTML,
				Properties: res.Properties,
			}
			if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", res.URL, ogmeta.ErrorMessage(err))
				failures++
			}
		}
	}

	fmt.Fprintf(deps.Stderr, "Processed %d URLs, %d failures\n", len(results), failures)
	return nil
}

// readURLs reads one URL per line, skipping blank lines and # comments.
func readURLs(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
