package main

import (
	"context"
	"io"

	"github.com/fwojciec/ngexplorer"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Searcher  ngexplorer.Searcher
	Paths     ngexplorer.PathMatcher
	Formatter ngexplorer.Formatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocPath string `short:"d" name:"doc-path" help:"Path to documentation.json file (default: NG_EXPLORER_DOC or ./documentation.json)"`
	Debug   bool   `help:"Log loading and query activity to stderr"`

	Search SearchCmd `cmd:"" default:"withargs" help:"Search constructs (omit query to list all)"`
	API    APICmd    `cmd:"" name:"api" help:"Display API details for a component, service, or other construct"`
	Stats  StatsCmd  `cmd:"" help:"Show statistics about the Angular codebase"`
}

// SearchCmd is the "search" subcommand and the default command.
type SearchCmd struct {
	Query   string `arg:"" optional:"" help:"Search query (omit to list all)"`
	Type    string `short:"t" default:"all" help:"Filter by type (component, injectable, directive, pipe, module, class, all)"`
	Path    string `short:"p" help:"Filter by file path pattern (supports wildcards like apps/web/**)"`
	Limit   int    `short:"l" default:"${default_limit}" help:"Limit number of results"`
	Verbose bool   `short:"v" help:"Show full API details for each result"`
	Exact   bool   `short:"e" help:"Use exact name matching instead of fuzzy search"`
}

// APICmd is the "api" subcommand.
type APICmd struct {
	Name string `arg:"" help:"Name of the construct"`
	Type string `short:"t" default:"all" help:"Filter by type (component, injectable, directive, pipe, module, class, all)"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
