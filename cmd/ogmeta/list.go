package main

import (
	"fmt"

	"github.com/fwojciec/ogmeta"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := ogmeta.RecordFilter{}
	if c.Type != "" {
		filter.Type = &c.Type
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ogmeta.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'ogmeta extract --save' to create one.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			rec.ID, rec.Properties.Type, rec.SourceURL, rec.Properties.Title)
	}

	return nil
}
