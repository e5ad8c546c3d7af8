// Package lipgloss renders search results, API details and statistics for
// the terminal.
package lipgloss

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/ngexplorer"
)

// Theme defines the colour palette used by the Formatter.
type Theme struct {
	// Heading is used for construct names in the detail view.
	Heading lipgloss.Color

	// Section is used for section labels and selectors.
	Section lipgloss.Color

	// Member is used for member names.
	Member lipgloss.Color

	// Muted is for file paths, types and descriptions.
	Muted lipgloss.Color

	// Warning marks deprecations.
	Warning lipgloss.Color

	// Kinds maps each construct type to its tag colour.
	Kinds map[ngexplorer.ConstructType]lipgloss.Color
}

// DefaultTheme returns the default ANSI palette.
func DefaultTheme() *Theme {
	return &Theme{
		Heading: lipgloss.Color("2"), // Green
		Section: lipgloss.Color("6"), // Cyan
		Member:  lipgloss.Color("2"), // Green
		Muted:   lipgloss.Color("8"), // Gray
		Warning: lipgloss.Color("3"), // Yellow
		Kinds: map[ngexplorer.ConstructType]lipgloss.Color{
			ngexplorer.TypeComponent:  lipgloss.Color("4"),
			ngexplorer.TypeInjectable: lipgloss.Color("5"),
			ngexplorer.TypeDirective:  lipgloss.Color("6"),
			ngexplorer.TypePipe:       lipgloss.Color("3"),
			ngexplorer.TypeModule:     lipgloss.Color("2"),
			ngexplorer.TypeClass:      lipgloss.Color("7"),
		},
	}
}

// styles holds the lipgloss styles derived from a Theme.
type styles struct {
	heading  lipgloss.Style
	name     lipgloss.Style
	section  lipgloss.Style
	member   lipgloss.Style
	muted    lipgloss.Style
	faint    lipgloss.Style
	warning  lipgloss.Style
	yes      lipgloss.Style
	bold     lipgloss.Style
	total    lipgloss.Style
	kinds    map[ngexplorer.ConstructType]lipgloss.Style
	fallback lipgloss.Style
}

// newStyles binds theme to a renderer for w. The renderer drops colours
// when w is not a terminal.
func newStyles(w io.Writer, theme *Theme) styles {
	r := lipgloss.NewRenderer(w)

	s := styles{
		heading:  r.NewStyle().Bold(true).Foreground(theme.Heading),
		name:     r.NewStyle().Bold(true),
		section:  r.NewStyle().Foreground(theme.Section),
		member:   r.NewStyle().Foreground(theme.Member),
		muted:    r.NewStyle().Foreground(theme.Muted),
		faint:    r.NewStyle().Faint(true),
		warning:  r.NewStyle().Foreground(theme.Warning),
		yes:      r.NewStyle().Foreground(theme.Member),
		bold:     r.NewStyle().Bold(true),
		total:    r.NewStyle().Bold(true).Foreground(theme.Member),
		kinds:    make(map[ngexplorer.ConstructType]lipgloss.Style, len(theme.Kinds)),
		fallback: r.NewStyle(),
	}
	for kind, color := range theme.Kinds {
		s.kinds[kind] = r.NewStyle().Foreground(color)
	}
	return s
}

func (s styles) kind(t ngexplorer.ConstructType) lipgloss.Style {
	if style, ok := s.kinds[t]; ok {
		return style
	}
	return s.fallback
}
