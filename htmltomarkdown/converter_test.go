package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/ngexplorer"
	"github.com/fwojciec/ngexplorer/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts description paragraph", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>Displays the current user profile.</p>\n")

		require.NoError(t, err)
		assert.Equal(t, "Displays the current user profile.", md)
	})

	t.Run("keeps inline code", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<p>Inject <code>UserService</code> instead.</p>")

		require.NoError(t, err)
		assert.Contains(t, md, "`UserService`")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://angular.dev">Angular</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[Angular](https://angular.dev)")
	})

	t.Run("reduces documentation site links to text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Wraps <a href="../injectables/UserService.html">UserService</a> and <a href="#inputs">inputs</a>.</p>`)

		require.NoError(t, err)
		assert.Equal(t, "Wraps UserService and inputs.", md)
	})

	t.Run("uses atx headings", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Usage</h2><p>Add it to a template.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Usage")
	})

	t.Run("keeps code block language", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<pre><code class="language-html">&lt;app-user&gt;&lt;/app-user&gt;</code></pre>`)

		require.NoError(t, err)
		assert.Contains(t, md, "```html")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ul><li>First</li><li>Second</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("converts code blocks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert("<pre><code>&lt;app-user&gt;&lt;/app-user&gt;</code></pre>")

		require.NoError(t, err)
		assert.Contains(t, md, "```")
		assert.Contains(t, md, "<app-user></app-user>")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("   ")

		require.Error(t, err)
		assert.Equal(t, ngexplorer.EINVALID, ngexplorer.ErrorCode(err))
	})
}
