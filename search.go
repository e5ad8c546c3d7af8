package ngexplorer

// DefaultLimit is the result cap used when the caller does not supply one.
const DefaultLimit = 50

// SearchFilter scopes a query. Limit is applied last, after ranking and
// filtering; a Limit of 0 yields no results.
type SearchFilter struct {
	// Type restricts results to one kind. TypeAll disables the filter.
	Type ConstructType `json:"type"`

	// Path is an optional glob matched against each construct's file.
	Path string `json:"path"`

	Limit int `json:"limit"`
}

// Searcher represents the query engine over a loaded collection.
type Searcher interface {
	// Search performs a fuzzy search and returns matches best-first.
	Search(query string, filter SearchFilter) []*Construct

	// SearchExact returns constructs whose name equals query, ignoring
	// case, in collection order.
	SearchExact(query string, filter SearchFilter) []*Construct

	// ListByType returns constructs passing the type and path filters in
	// collection order.
	ListByType(filter SearchFilter) []*Construct

	// CountByType returns the number of constructs ListByType would return
	// without a limit.
	CountByType(filter SearchFilter) int

	// FindByName returns the first construct whose name equals name,
	// ignoring case. Returns ENOTFOUND if no construct matches.
	FindByName(name string, typ ConstructType) (*Construct, error)

	// Stats returns counts for the underlying collection.
	Stats() Stats
}

// PathMatcher matches file paths against glob patterns.
type PathMatcher interface {
	// Validate returns EINVALID if pattern is malformed.
	Validate(pattern string) error

	// Match reports whether file matches pattern. Malformed patterns
	// never match.
	Match(pattern, file string) bool
}
