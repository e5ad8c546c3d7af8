// Package doublestar provides glob matching of construct file paths.
package doublestar

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/ngexplorer"
)

// Ensure Matcher implements ngexplorer.PathMatcher at compile time.
var _ ngexplorer.PathMatcher = (*Matcher)(nil)

// Matcher matches slash-separated paths against globs supporting "**" and
// "*". Patterns without a slash are matched against the base name, so
// "*.service.ts" finds services in any directory.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Validate returns EINVALID if pattern is not a valid glob.
func (m *Matcher) Validate(pattern string) error {
	if !doublestar.ValidatePattern(pattern) {
		return ngexplorer.Errorf(ngexplorer.EINVALID, "invalid path pattern: %s", pattern)
	}
	return nil
}

// Match reports whether file matches pattern. A leading "./" on either
// side is ignored. Wildcards do not match hidden files or directories:
// a file with a segment starting with "." only matches patterns that
// themselves name a dot segment.
func (m *Matcher) Match(pattern, file string) bool {
	pattern = strings.TrimPrefix(pattern, "./")
	file = strings.TrimPrefix(file, "./")

	if !strings.Contains(pattern, "/") {
		file = path.Base(file)
	}
	if hasDotSegment(file) && !hasDotSegment(pattern) {
		return false
	}

	ok, err := doublestar.Match(pattern, file)
	if err != nil {
		return false
	}
	return ok
}

// hasDotSegment reports whether any slash-separated segment of p starts
// with a dot.
func hasDotSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}
