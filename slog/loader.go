// Package slog provides structured logging decorators for ngexplorer services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ngexplorer"
)

// Ensure LoggingLoader implements ngexplorer.Loader.
var _ ngexplorer.Loader = (*LoggingLoader)(nil)

// LoggingLoader wraps a Loader with debug logging.
type LoggingLoader struct {
	next   ngexplorer.Loader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next ngexplorer.Loader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the outcome.
func (l *LoggingLoader) Load(ctx context.Context) (coll *ngexplorer.Collection, err error) {
	defer func(begin time.Time) {
		attrs := []any{"duration", time.Since(begin)}
		if coll != nil {
			attrs = append(attrs,
				"path", coll.Path,
				"constructs", coll.Len(),
				"fingerprint", coll.Fingerprint,
				"skipped", coll.Skipped,
			)
		}
		if err != nil {
			l.logger.Error("load", append(attrs, "err", err)...)
			return
		}
		l.logger.Info("load", attrs...)
	}(time.Now())
	return l.next.Load(ctx)
}
