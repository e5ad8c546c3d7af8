package goquery_test

import (
	"testing"

	"github.com/fwojciec/ngexplorer/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_PlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "strips paragraph tags",
			html: "<p>Shows a user profile.</p>\n",
			want: "Shows a user profile.",
		},
		{
			name: "keeps inline text together",
			html: "<p>Uses <code>UserService</code> to <b>load</b> data.</p>",
			want: "Uses UserService to load data.",
		},
		{
			name: "puts block elements on separate lines",
			html: "<p>First line.</p><p>Second line.</p>",
			want: "First line.\nSecond line.",
		},
		{
			name: "treats br as a line break",
			html: "<p>One<br>Two</p>",
			want: "One\nTwo",
		},
		{
			name: "renders list items as lines",
			html: "<ul><li>alpha</li><li>beta</li></ul>",
			want: "alpha\nbeta",
		},
		{
			name: "collapses whitespace",
			html: "<p>  lots   of\tspace  </p>",
			want: "lots of space",
		},
		{
			name: "decodes entities",
			html: "<p>a &amp; b &lt;c&gt;</p>",
			want: "a & b <c>",
		},
		{
			name: "drops scripts",
			html: "<p>safe</p><script>alert(1)</script>",
			want: "safe",
		},
		{
			name: "passes plain text through",
			html: "no markup here",
			want: "no markup here",
		},
		{
			name: "returns empty for blank input",
			html: "   \n ",
			want: "",
		},
	}

	e := goquery.NewTextExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := e.PlainText(tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
