package search

import (
	"strings"

	"github.com/fwojciec/ngexplorer"
)

// Ensure Engine implements ngexplorer.Searcher at compile time.
var _ ngexplorer.Searcher = (*Engine)(nil)

// Engine answers queries against a collection. It owns its index and never
// mutates the collection.
type Engine struct {
	constructs []*ngexplorer.Construct
	index      *Index
	paths      ngexplorer.PathMatcher
	stats      ngexplorer.Stats
}

// NewEngine builds the search index for coll. Path filters are evaluated
// with paths; a nil matcher disables path filtering.
func NewEngine(coll *ngexplorer.Collection, paths ngexplorer.PathMatcher) *Engine {
	constructs := coll.All()
	return &Engine{
		constructs: constructs,
		index:      NewIndex(constructs),
		paths:      paths,
		stats:      coll.Stats(),
	}
}

// Search runs a fuzzy query. The query is normalized the same way as
// indexed names, so "UserComp" and "User" rank alike against
// UserComponent. Ranking order is kept through filtering.
func (e *Engine) Search(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	matches := e.index.Search(ngexplorer.NormalizeName(query))

	results := make([]*ngexplorer.Construct, 0, len(matches))
	for _, m := range matches {
		results = append(results, m.Construct)
	}
	results = e.filter(results, filter)
	return truncate(results, filter.Limit)
}

// SearchExact returns constructs whose name equals query ignoring case.
// Suffix normalization does not apply.
func (e *Engine) SearchExact(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	var results []*ngexplorer.Construct
	for _, c := range e.constructs {
		if strings.EqualFold(c.Name, query) {
			results = append(results, c)
		}
	}
	results = e.filter(results, filter)
	return truncate(results, filter.Limit)
}

// ListByType returns constructs passing the filter in collection order.
func (e *Engine) ListByType(filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	return truncate(e.filter(e.constructs, filter), filter.Limit)
}

// CountByType returns the filtered count before the limit is applied.
func (e *Engine) CountByType(filter ngexplorer.SearchFilter) int {
	return len(e.filter(e.constructs, filter))
}

// FindByName returns the first construct named name, ignoring case.
func (e *Engine) FindByName(name string, typ ngexplorer.ConstructType) (*ngexplorer.Construct, error) {
	for _, c := range e.constructs {
		if c.Type.Matches(typ) && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, ngexplorer.Errorf(ngexplorer.ENOTFOUND, "No construct found with name: %s", name)
}

// Stats returns counts for the underlying collection.
func (e *Engine) Stats() ngexplorer.Stats {
	return e.stats
}

// filter applies the type filter, then the path filter. The input slice is
// never modified.
func (e *Engine) filter(constructs []*ngexplorer.Construct, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	out := make([]*ngexplorer.Construct, 0, len(constructs))
	for _, c := range constructs {
		if !c.Type.Matches(filter.Type) {
			continue
		}
		if filter.Path != "" && e.paths != nil && !e.paths.Match(filter.Path, c.RelativeFile()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func truncate(constructs []*ngexplorer.Construct, limit int) []*ngexplorer.Construct {
	if limit <= 0 {
		return []*ngexplorer.Construct{}
	}
	if len(constructs) > limit {
		return constructs[:limit]
	}
	return constructs
}
