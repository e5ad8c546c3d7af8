package main

import (
	"fmt"

	"github.com/fwojciec/ngexplorer"
)

// maxSuggestions caps the "did you mean" list.
const maxSuggestions = 5

// Run executes the api command.
func (c *APICmd) Run(deps *Dependencies) error {
	typ, err := ngexplorer.ParseConstructType(c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngexplorer.ErrorMessage(err))
		return err
	}

	construct, err := deps.Searcher.FindByName(c.Name, typ)
	if ngexplorer.ErrorCode(err) == ngexplorer.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngexplorer.ErrorMessage(err))
		c.suggest(deps, typ)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ngexplorer.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, deps.Formatter.FormatAPIDetails(construct))
	return nil
}

// suggest prints close fuzzy matches for a name that was not found.
func (c *APICmd) suggest(deps *Dependencies, typ ngexplorer.ConstructType) {
	suggestions := deps.Searcher.Search(c.Name, ngexplorer.SearchFilter{Type: typ, Limit: maxSuggestions})
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(deps.Stderr)
	fmt.Fprintln(deps.Stderr, "Did you mean one of these?")
	for _, s := range suggestions {
		fmt.Fprintf(deps.Stderr, "  • %s (%s)\n", s.Name, s.Type)
	}
}
