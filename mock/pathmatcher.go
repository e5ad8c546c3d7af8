package mock

import "github.com/fwojciec/ngexplorer"

var _ ngexplorer.PathMatcher = (*PathMatcher)(nil)

// PathMatcher is a mock implementation of ngexplorer.PathMatcher.
type PathMatcher struct {
	ValidateFn func(pattern string) error
	MatchFn    func(pattern, file string) bool
}

func (m *PathMatcher) Validate(pattern string) error {
	return m.ValidateFn(pattern)
}

func (m *PathMatcher) Match(pattern, file string) bool {
	return m.MatchFn(pattern, file)
}
