package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/ogmeta"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, sourceURL, err := readInput(deps, c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogmeta.ErrorMessage(err))
		return err
	}

	snap, err := deps.Source.Snapshot(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogmeta.ErrorMessage(err))
		return err
	}

	props := ogmeta.Extract(snap)
	if props == nil {
		fmt.Fprintf(deps.Stderr, "error: no conforming Open Graph metadata found\n")
		return ogmeta.Errorf(ogmeta.ENOTFOUND, "no conforming Open Graph metadata found")
	}

	if c.Save {
		rec := &ogmeta.Record{
			SourceURL:  sourceURL,
			HTML:       html,
			Properties: props,
		}
		if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", ogmeta.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved record %s\n", rec.ID)
	}

	out, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}

// readInput resolves the input argument: "-" reads stdin, http(s) inputs are
// fetched, anything else is a file path. The second return value is the
// source URL recorded for saved results.
func readInput(deps *Dependencies, input string) (string, string, error) {
	switch {
	case input == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return string(data), "stdin", nil

	case strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://"):
		html, err := deps.Fetcher.Fetch(deps.Ctx, input)
		if err != nil {
			return "", "", err
		}
		return html, input, nil

	default:
		data, err := os.ReadFile(input)
		if err != nil {
			return "", "", err
		}
		return string(data), "file://" + input, nil
	}
}
