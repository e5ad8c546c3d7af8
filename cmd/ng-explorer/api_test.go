package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/ngexplorer"
	main "github.com/fwojciec/ngexplorer/cmd/ng-explorer"
	"github.com/fwojciec/ngexplorer/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints details of the named construct", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			FindByNameFn: func(name string, typ ngexplorer.ConstructType) (*ngexplorer.Construct, error) {
				assert.Equal(t, "userservice", name)
				assert.Equal(t, ngexplorer.TypeInjectable, typ)
				return &ngexplorer.Construct{Name: "UserService", Type: ngexplorer.TypeInjectable}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Searcher:  searcher,
			Formatter: listFormatter(),
		}

		err := (&main.APICmd{Name: "userservice", Type: "injectable"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "details:UserService")
		assert.Empty(t, stderr.String())
	})

	t.Run("suggests close matches when not found", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			FindByNameFn: func(name string, _ ngexplorer.ConstructType) (*ngexplorer.Construct, error) {
				return nil, ngexplorer.Errorf(ngexplorer.ENOTFOUND, "No construct found with name: %s", name)
			},
			SearchFn: func(query string, filter ngexplorer.SearchFilter) []*ngexplorer.Construct {
				assert.Equal(t, "UserProfle", query)
				assert.Equal(t, 5, filter.Limit)
				return []*ngexplorer.Construct{
					{Name: "UserProfileComponent", Type: ngexplorer.TypeComponent},
				}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Searcher:  searcher,
			Formatter: listFormatter(),
		}

		err := (&main.APICmd{Name: "UserProfle", Type: "all"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ngexplorer.ENOTFOUND, ngexplorer.ErrorCode(err))
		assert.Contains(t, stderr.String(), "No construct found with name: UserProfle")
		assert.Contains(t, stderr.String(), "Did you mean one of these?")
		assert.Contains(t, stderr.String(), "• UserProfileComponent (component)")
		assert.Empty(t, stdout.String())
	})

	t.Run("omits suggestions when search finds nothing", func(t *testing.T) {
		t.Parallel()

		searcher := &mock.Searcher{
			FindByNameFn: func(name string, _ ngexplorer.ConstructType) (*ngexplorer.Construct, error) {
				return nil, ngexplorer.Errorf(ngexplorer.ENOTFOUND, "No construct found with name: %s", name)
			},
			SearchFn: func(string, ngexplorer.SearchFilter) []*ngexplorer.Construct { return nil },
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Searcher:  searcher,
			Formatter: listFormatter(),
		}

		err := (&main.APICmd{Name: "Zzz", Type: "all"}).Run(deps)

		require.Error(t, err)
		assert.NotContains(t, stderr.String(), "Did you mean")
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Searcher:  &mock.Searcher{},
			Formatter: listFormatter(),
		}

		err := (&main.APICmd{Name: "UserService", Type: "service"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ngexplorer.EINVALID, ngexplorer.ErrorCode(err))
		assert.Contains(t, stderr.String(), "Invalid type: service")
	})
}

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	searcher := &mock.Searcher{
		StatsFn: func() ngexplorer.Stats {
			return ngexplorer.Stats{Components: 2, Total: 2}
		},
	}
	formatter := &mock.Formatter{
		FormatStatsFn: func(stats ngexplorer.Stats) string {
			assert.Equal(t, 2, stats.Total)
			return "stats-view"
		},
	}

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    &bytes.Buffer{},
		Searcher:  searcher,
		Formatter: formatter,
	}

	err := (&main.StatsCmd{}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "stats-view\n", stdout.String())
}
