// Package search implements fuzzy ranking and filtered queries over a
// loaded construct collection.
package search

import (
	"sort"
	"strings"

	"github.com/fwojciec/ngexplorer"
)

// Field weights. Only the normalized name and selector are indexed;
// descriptions and file paths are left out to keep recall narrow.
const (
	NameWeight     = 2.0
	SelectorWeight = 1.5
)

// entry pairs a construct with its derived search fields.
type entry struct {
	construct      *ngexplorer.Construct
	normalizedName string
	selector       string
}

// Match is a ranked index hit. Lower scores are better.
type Match struct {
	Construct *ngexplorer.Construct
	Score     float64
}

// Index is a weighted fuzzy index over constructs. It is immutable and
// safe to query repeatedly.
type Index struct {
	entries []entry
}

// NewIndex builds an index over constructs, preserving their order for
// tie-breaking. Constructs without a selector are indexed by name only.
func NewIndex(constructs []*ngexplorer.Construct) *Index {
	entries := make([]entry, 0, len(constructs))
	for _, c := range constructs {
		if c == nil {
			continue
		}
		entries = append(entries, entry{
			construct:      c,
			normalizedName: ngexplorer.NormalizeName(c.Name),
			selector:       c.Selector(),
		})
	}
	return &Index{entries: entries}
}

// Len returns the number of indexed constructs.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Search returns constructs matching query, best first. Queries shorter
// than MinMatchLength match nothing.
func (idx *Index) Search(query string) []Match {
	pattern := []rune(strings.ToLower(query))
	if len(pattern) < MinMatchLength {
		return nil
	}

	const total = NameWeight + SelectorWeight

	var matches []Match
	for _, e := range idx.entries {
		score, matched := 1.0, false
		if s, ok := scoreField(pattern, e.normalizedName); ok {
			score *= weigh(s, NameWeight/total)
			matched = true
		}
		if s, ok := scoreField(pattern, e.selector); ok {
			score *= weigh(s, SelectorWeight/total)
			matched = true
		}
		if matched {
			matches = append(matches, Match{Construct: e.construct, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score < matches[j].Score
	})
	return matches
}
