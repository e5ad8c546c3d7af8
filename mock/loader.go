package mock

import (
	"context"

	"github.com/fwojciec/ngexplorer"
)

var _ ngexplorer.Loader = (*Loader)(nil)

// Loader is a mock implementation of ngexplorer.Loader.
type Loader struct {
	LoadFn func(ctx context.Context) (*ngexplorer.Collection, error)
}

func (l *Loader) Load(ctx context.Context) (*ngexplorer.Collection, error) {
	return l.LoadFn(ctx)
}
