package mock

import "github.com/fwojciec/ngexplorer"

var _ ngexplorer.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of ngexplorer.Searcher.
type Searcher struct {
	SearchFn      func(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct
	SearchExactFn func(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct
	ListByTypeFn  func(filter ngexplorer.SearchFilter) []*ngexplorer.Construct
	CountByTypeFn func(filter ngexplorer.SearchFilter) int
	FindByNameFn  func(name string, typ ngexplorer.ConstructType) (*ngexplorer.Construct, error)
	StatsFn       func() ngexplorer.Stats
}

func (s *Searcher) Search(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	return s.SearchFn(query, filter)
}

func (s *Searcher) SearchExact(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	return s.SearchExactFn(query, filter)
}

func (s *Searcher) ListByType(filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
	return s.ListByTypeFn(filter)
}

func (s *Searcher) CountByType(filter ngexplorer.SearchFilter) int {
	return s.CountByTypeFn(filter)
}

func (s *Searcher) FindByName(name string, typ ngexplorer.ConstructType) (*ngexplorer.Construct, error) {
	return s.FindByNameFn(name, typ)
}

func (s *Searcher) Stats() ngexplorer.Stats {
	return s.StatsFn()
}
