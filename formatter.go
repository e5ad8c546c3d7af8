package ngexplorer

// Formatter renders query results for the terminal.
type Formatter interface {
	// FormatSearchResults renders a compact list of constructs.
	FormatSearchResults(results []*Construct) string

	// FormatAPIDetails renders the full API of a single construct.
	FormatAPIDetails(c *Construct) string

	// FormatStats renders collection statistics.
	FormatStats(stats Stats) string
}
