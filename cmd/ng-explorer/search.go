package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/ngexplorer"
)

// ruleWidth is the width of the separator between verbose results.
const ruleWidth = 80

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter, err := c.filter(deps.Paths)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngexplorer.ErrorMessage(err))
		return err
	}

	var results []*ngexplorer.Construct
	switch {
	case c.Query != "" && c.Exact:
		results = deps.Searcher.SearchExact(c.Query, filter)
	case c.Query != "":
		results = deps.Searcher.Search(c.Query, filter)
	default:
		results = deps.Searcher.ListByType(filter)
	}

	if c.Verbose && len(results) > 0 {
		rule := strings.Repeat("─", ruleWidth)
		for i, r := range results {
			if i > 0 {
				fmt.Fprintf(deps.Stdout, "\n%s\n\n", rule)
			}
			fmt.Fprintln(deps.Stdout, deps.Formatter.FormatAPIDetails(r))
		}
	} else {
		fmt.Fprintln(deps.Stdout, deps.Formatter.FormatSearchResults(results))
	}

	if len(results) == 0 {
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	if c.Query == "" {
		total := deps.Searcher.CountByType(filter)
		if total > len(results) {
			fmt.Fprintf(deps.Stdout, "Showing %d of %d result(s). Use --limit to show more.\n", len(results), total)
			return nil
		}
	}
	fmt.Fprintf(deps.Stdout, "Found %d result(s)\n", len(results))

	return nil
}

// filter validates the command flags and builds the query filter.
func (c *SearchCmd) filter(paths ngexplorer.PathMatcher) (ngexplorer.SearchFilter, error) {
	typ, err := ngexplorer.ParseConstructType(c.Type)
	if err != nil {
		return ngexplorer.SearchFilter{}, err
	}
	if c.Limit < 0 {
		return ngexplorer.SearchFilter{}, ngexplorer.Errorf(ngexplorer.EINVALID, "Invalid limit: %d. Limit must not be negative", c.Limit)
	}
	if c.Path != "" && paths != nil {
		if err := paths.Validate(c.Path); err != nil {
			return ngexplorer.SearchFilter{}, err
		}
	}
	return ngexplorer.SearchFilter{Type: typ, Path: c.Path, Limit: c.Limit}, nil
}
