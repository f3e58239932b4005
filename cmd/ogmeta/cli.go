package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ogmeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Fetcher ogmeta.Fetcher
	Source  ogmeta.Source
	Records ogmeta.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable info-level logging"`

	Extract ExtractCmd `cmd:"" help:"Extract Open Graph metadata from a file, URL, or stdin"`
	Batch   BatchCmd   `cmd:"" help:"Extract metadata from a list of URLs"`
	List    ListCmd    `cmd:"" help:"List stored extraction records"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Input string `arg:"" help:"HTML file path, URL, or '-' for stdin"`
	Save  bool   `short:"s" help:"Store the result in the database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string  `arg:"" help:"File with one URL per line, or '-' for stdin"`
	Save        bool    `short:"s" help:"Store the results in the database"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64 `default:"2" help:"Per-domain requests per second"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type string `short:"t" help:"Filter by og:type"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
