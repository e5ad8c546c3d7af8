package mock

import "github.com/fwojciec/ngexplorer"

var _ ngexplorer.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of ngexplorer.Formatter.
type Formatter struct {
	FormatSearchResultsFn func(results []*ngexplorer.Construct) string
	FormatAPIDetailsFn    func(c *ngexplorer.Construct) string
	FormatStatsFn         func(stats ngexplorer.Stats) string
}

func (f *Formatter) FormatSearchResults(results []*ngexplorer.Construct) string {
	return f.FormatSearchResultsFn(results)
}

func (f *Formatter) FormatAPIDetails(c *ngexplorer.Construct) string {
	return f.FormatAPIDetailsFn(c)
}

func (f *Formatter) FormatStats(stats ngexplorer.Stats) string {
	return f.FormatStatsFn(stats)
}
