package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/ngexplorer"
)

// Ensure LoggingSearcher implements ngexplorer.Searcher.
var _ ngexplorer.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging of every query.
type LoggingSearcher struct {
	next   ngexplorer.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next ngexplorer.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) Search(query string, filter ngexplorer.SearchFilter) (results []*ngexplorer.Construct) {
	defer func(begin time.Time) {
		s.log("search", query, filter, len(results), begin)
	}(time.Now())
	return s.next.Search(query, filter)
}

// SearchExact delegates to the wrapped searcher and logs the query.
func (s *LoggingSearcher) SearchExact(query string, filter ngexplorer.SearchFilter) (results []*ngexplorer.Construct) {
	defer func(begin time.Time) {
		s.log("search exact", query, filter, len(results), begin)
	}(time.Now())
	return s.next.SearchExact(query, filter)
}

// ListByType delegates to the wrapped searcher and logs the listing.
func (s *LoggingSearcher) ListByType(filter ngexplorer.SearchFilter) (results []*ngexplorer.Construct) {
	defer func(begin time.Time) {
		s.log("list", "", filter, len(results), begin)
	}(time.Now())
	return s.next.ListByType(filter)
}

// CountByType delegates to the wrapped searcher.
func (s *LoggingSearcher) CountByType(filter ngexplorer.SearchFilter) int {
	return s.next.CountByType(filter)
}

// FindByName delegates to the wrapped searcher and logs the lookup.
func (s *LoggingSearcher) FindByName(name string, typ ngexplorer.ConstructType) (c *ngexplorer.Construct, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find",
			"name", name,
			"type", typ,
			"found", c != nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindByName(name, typ)
}

// Stats delegates to the wrapped searcher.
func (s *LoggingSearcher) Stats() ngexplorer.Stats {
	return s.next.Stats()
}

func (s *LoggingSearcher) log(op, query string, filter ngexplorer.SearchFilter, n int, begin time.Time) {
	s.logger.Info(op,
		"query", query,
		"type", filter.Type,
		"path", filter.Path,
		"limit", filter.Limit,
		"results", n,
		"duration", time.Since(begin),
	)
}
