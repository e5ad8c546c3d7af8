package ngexplorer_test

import (
	"testing"

	"github.com/fwojciec/ngexplorer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips Component", "UserProfileComponent", "UserProfile"},
		{"strips Directive", "HighlightDirective", "Highlight"},
		{"strips Service", "UserService", "User"},
		{"strips Pipe", "CurrencyPipe", "Currency"},
		{"strips Module", "SharedModule", "Shared"},
		{"keeps bare suffix", "Component", "Component"},
		{"keeps names without suffix", "UserModel", "UserModel"},
		{"suffix match is case-sensitive", "Usercomponent", "Usercomponent"},
		{"strips only the trailing suffix", "ServiceComponent", "Service"},
		{"keeps empty name", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ngexplorer.NormalizeName(tt.in))
		})
	}
}

func TestParseConstructType(t *testing.T) {
	t.Parallel()

	t.Run("accepts every known type and all", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"component", "injectable", "directive", "pipe", "module", "class", "all"} {
			typ, err := ngexplorer.ParseConstructType(s)
			require.NoError(t, err)
			assert.Equal(t, ngexplorer.ConstructType(s), typ)
		}
	})

	t.Run("rejects unknown type with EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := ngexplorer.ParseConstructType("service")

		require.Error(t, err)
		assert.Equal(t, ngexplorer.EINVALID, ngexplorer.ErrorCode(err))
		assert.Contains(t, ngexplorer.ErrorMessage(err), "Invalid type: service")
		assert.Contains(t, ngexplorer.ErrorMessage(err), "component, injectable, directive, pipe, module, class, all")
	})
}

func TestConstructType_Matches(t *testing.T) {
	t.Parallel()

	assert.True(t, ngexplorer.TypePipe.Matches(ngexplorer.TypeAll))
	assert.True(t, ngexplorer.TypePipe.Matches(ngexplorer.TypePipe))
	assert.False(t, ngexplorer.TypePipe.Matches(ngexplorer.TypeComponent))
}

func TestConstruct_Label(t *testing.T) {
	t.Parallel()

	t.Run("returns component selector", func(t *testing.T) {
		t.Parallel()

		c := &ngexplorer.Construct{Component: &ngexplorer.Component{Selector: "app-user"}}

		assert.Equal(t, "app-user", c.Selector())
		assert.Equal(t, "app-user", c.Label())
	})

	t.Run("returns pipe name for pipes", func(t *testing.T) {
		t.Parallel()

		c := &ngexplorer.Construct{Pipe: &ngexplorer.Pipe{PipeName: "currency"}}

		assert.Empty(t, c.Selector())
		assert.Equal(t, "currency", c.Label())
	})

	t.Run("returns empty for services", func(t *testing.T) {
		t.Parallel()

		c := &ngexplorer.Construct{Injectable: &ngexplorer.Injectable{}}

		assert.Empty(t, c.Label())
	})
}

func TestConstruct_RelativeFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "src/app/user.ts", (&ngexplorer.Construct{File: "./src/app/user.ts"}).RelativeFile())
	assert.Equal(t, "src/app/user.ts", (&ngexplorer.Construct{File: "src/app/user.ts"}).RelativeFile())
}

func TestCollection_All(t *testing.T) {
	t.Parallel()

	coll := &ngexplorer.Collection{
		Classes:     []*ngexplorer.Construct{{Name: "Model"}},
		Components:  []*ngexplorer.Construct{{Name: "AppComponent"}},
		Pipes:       []*ngexplorer.Construct{{Name: "DatePipe"}},
		Injectables: []*ngexplorer.Construct{{Name: "ApiService"}},
	}

	names := func() []string {
		var out []string
		for _, c := range coll.All() {
			out = append(out, c.Name)
		}
		return out
	}

	want := []string{"AppComponent", "ApiService", "DatePipe", "Model"}
	assert.Equal(t, want, names())
	assert.Equal(t, want, names(), "order is stable across calls")
	assert.Equal(t, 4, coll.Len())
}

func TestCollection_Stats(t *testing.T) {
	t.Parallel()

	coll := &ngexplorer.Collection{
		Path:        "/tmp/documentation.json",
		Fingerprint: 42,
		Components:  []*ngexplorer.Construct{{}, {}},
		Modules:     []*ngexplorer.Construct{{}},
	}

	stats := coll.Stats()

	assert.Equal(t, 2, stats.Components)
	assert.Equal(t, 1, stats.Modules)
	assert.Equal(t, 0, stats.Pipes)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, "/tmp/documentation.json", stats.Path)
	assert.Equal(t, uint64(42), stats.Fingerprint)
}
