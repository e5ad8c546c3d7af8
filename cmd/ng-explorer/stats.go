package main

import "fmt"

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Formatter.FormatStats(deps.Searcher.Stats()))
	return nil
}
