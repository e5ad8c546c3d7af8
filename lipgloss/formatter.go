package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/ngexplorer"
)

// Ensure Formatter implements ngexplorer.Formatter at compile time.
var _ ngexplorer.Formatter = (*Formatter)(nil)

// maxSummaryLength caps the description shown in the result list.
const maxSummaryLength = 200

// Formatter renders constructs with lipgloss styles.
type Formatter struct {
	styles styles

	// Text extracts list summaries from HTML descriptions when no raw
	// description is available. Optional.
	Text ngexplorer.TextExtractor

	// Converter renders HTML descriptions as Markdown in the detail view
	// when no raw description is available. Optional.
	Converter ngexplorer.Converter
}

// NewFormatter creates a Formatter whose output is destined for w.
func NewFormatter(w io.Writer, theme *Theme) *Formatter {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Formatter{styles: newStyles(w, theme)}
}

// FormatSearchResults renders one block per construct: a type tag and name,
// the file, the selector or pipe name, and a short description.
func (f *Formatter) FormatSearchResults(results []*ngexplorer.Construct) string {
	if len(results) == 0 {
		return f.styles.warning.Render("No results found.")
	}

	var lines []string
	for _, c := range results {
		name := f.styles.name.Render(c.Name)
		if c.Deprecated {
			name = f.styles.warning.Bold(true).Render(c.Name + " (deprecated)")
		}
		lines = append(lines, f.typeTag(c.Type)+" "+name)
		lines = append(lines, f.styles.faint.Render("  File: "+c.RelativeFile()))

		if label := c.Label(); label != "" {
			lines = append(lines, f.styles.section.Render("  Selector: "+label))
		}
		if summary := f.summary(c); summary != "" {
			lines = append(lines, f.styles.muted.Render("  "+summary))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// FormatAPIDetails renders the full API of a construct.
func (f *Formatter) FormatAPIDetails(c *ngexplorer.Construct) string {
	s := f.styles
	lines := []string{
		s.heading.Render(c.Name),
		s.muted.Render("File: " + c.File),
		s.muted.Render("Type: " + string(c.Type)),
	}

	if c.Deprecated {
		msg := "Deprecated"
		if c.DeprecationMessage != "" {
			msg += ": " + c.DeprecationMessage
		}
		lines = append(lines, s.warning.Render(msg))
	}

	if desc := f.description(c); desc != "" {
		lines = append(lines, "", desc)
	}

	switch {
	case c.Component != nil:
		lines = append(lines, f.componentDetails(c.Component)...)
	case c.Injectable != nil:
		lines = append(lines, f.injectableDetails(c.Injectable)...)
	case c.Directive != nil:
		lines = append(lines, f.directiveDetails(c.Directive)...)
	case c.Pipe != nil:
		lines = append(lines, f.pipeDetails(c.Pipe)...)
	case c.Module != nil:
		lines = append(lines, f.moduleDetails(c.Module)...)
	case c.Class != nil:
		lines = append(lines, f.classDetails(c.Class)...)
	}

	return strings.Join(lines, "\n")
}

// FormatStats renders per-kind construct counts.
func (f *Formatter) FormatStats(stats ngexplorer.Stats) string {
	s := f.styles
	rule := s.muted.Render(strings.Repeat("─", 40))
	row := func(kind ngexplorer.ConstructType, label string, n int) string {
		return fmt.Sprintf("%s %s", s.kind(kind).Render(fmt.Sprintf("%-15s", label+":")), s.yes.Render(fmt.Sprint(n)))
	}

	lines := []string{
		"",
		s.section.Bold(true).Render("Angular Codebase Statistics"),
		rule,
		row(ngexplorer.TypeComponent, "Components", stats.Components),
		row(ngexplorer.TypeInjectable, "Injectables", stats.Injectables),
		row(ngexplorer.TypeDirective, "Directives", stats.Directives),
		row(ngexplorer.TypePipe, "Pipes", stats.Pipes),
		row(ngexplorer.TypeModule, "Modules", stats.Modules),
		row(ngexplorer.TypeClass, "Classes", stats.Classes),
		rule,
		fmt.Sprintf("%s %s", s.bold.Render(fmt.Sprintf("%-15s", "Total:")), s.total.Render(fmt.Sprint(stats.Total))),
	}
	if stats.Path != "" {
		lines = append(lines, s.muted.Render(fmt.Sprintf("Source: %s (%016x)", stats.Path, stats.Fingerprint)))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (f *Formatter) typeTag(t ngexplorer.ConstructType) string {
	return f.styles.kind(t).Render("[" + string(t) + "]")
}

// summary returns the first two non-blank description lines, truncated.
func (f *Formatter) summary(c *ngexplorer.Construct) string {
	desc := c.RawDescription
	if strings.TrimSpace(desc) == "" && c.Description != "" && f.Text != nil {
		if text, err := f.Text.PlainText(c.Description); err == nil {
			desc = text
		}
	}

	var parts []string
	for _, line := range strings.Split(desc, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
		if len(parts) == 2 {
			break
		}
	}

	summary := strings.Join(parts, " ")
	if runes := []rune(summary); len(runes) > maxSummaryLength {
		summary = string(runes[:maxSummaryLength-3]) + "..."
	}
	return summary
}

// description returns the full description for the detail view.
func (f *Formatter) description(c *ngexplorer.Construct) string {
	if raw := strings.TrimSpace(c.RawDescription); raw != "" {
		return raw
	}
	if strings.TrimSpace(c.Description) == "" || f.Converter == nil {
		return ""
	}
	md, err := f.Converter.Convert(c.Description)
	if err != nil {
		return ""
	}
	return md
}

func (f *Formatter) componentDetails(c *ngexplorer.Component) []string {
	var lines []string
	lines = append(lines, f.selectorSection(c.Selector)...)
	lines = append(lines, f.flag("Standalone:", c.Standalone)...)
	lines = append(lines, f.propertySection("Inputs:", c.Inputs)...)
	lines = append(lines, f.propertySection("Outputs:", c.Outputs)...)
	lines = append(lines, f.propertySection("Properties:", c.Properties)...)
	lines = append(lines, f.methodSection(c.Methods)...)
	lines = append(lines, f.constructorSection("Constructor:", c.Constructor)...)
	lines = append(lines, f.heritage(c.Extends, c.Implements)...)
	return lines
}

func (f *Formatter) injectableDetails(c *ngexplorer.Injectable) []string {
	var lines []string
	lines = append(lines, f.propertySection("Properties:", c.Properties)...)
	lines = append(lines, f.methodSection(c.Methods)...)
	lines = append(lines, f.constructorSection("Constructor Dependencies:", c.Constructor)...)
	lines = append(lines, f.heritage(c.Extends, c.Implements)...)
	return lines
}

func (f *Formatter) directiveDetails(c *ngexplorer.Directive) []string {
	var lines []string
	lines = append(lines, f.selectorSection(c.Selector)...)
	lines = append(lines, f.flag("Standalone:", c.Standalone)...)
	lines = append(lines, f.propertySection("Inputs:", c.Inputs)...)
	lines = append(lines, f.propertySection("Outputs:", c.Outputs)...)
	lines = append(lines, f.methodSection(c.Methods)...)
	lines = append(lines, f.heritage(c.Extends, c.Implements)...)
	return lines
}

func (f *Formatter) pipeDetails(c *ngexplorer.Pipe) []string {
	var lines []string
	if c.PipeName != "" {
		lines = append(lines, "", f.styles.section.Render("Pipe Name:"), "  "+c.PipeName)
	}
	lines = append(lines, f.flag("Pure:", c.Pure)...)
	return lines
}

func (f *Formatter) moduleDetails(c *ngexplorer.Module) []string {
	var lines []string
	lines = append(lines, f.nameSection("Declarations:", c.Declarations)...)
	lines = append(lines, f.nameSection("Imports:", c.Imports)...)
	lines = append(lines, f.nameSection("Exports:", c.Exports)...)
	lines = append(lines, f.nameSection("Providers:", c.Providers)...)
	lines = append(lines, f.nameSection("Bootstrap:", c.Bootstrap)...)
	return lines
}

func (f *Formatter) classDetails(c *ngexplorer.Class) []string {
	var lines []string
	lines = append(lines, f.propertySection("Properties:", c.Properties)...)
	lines = append(lines, f.methodSection(c.Methods)...)
	lines = append(lines, f.constructorSection("Constructor:", c.Constructor)...)
	lines = append(lines, f.heritage(c.Extends, c.Implements)...)
	return lines
}

func (f *Formatter) selectorSection(selector string) []string {
	if selector == "" {
		return nil
	}
	return []string{"", f.styles.section.Render("Selector:"), "  " + selector}
}

func (f *Formatter) flag(label string, v bool) []string {
	value := f.styles.muted.Render("No")
	if v {
		value = f.styles.yes.Render("Yes")
	}
	return []string{"", f.styles.section.Render(label) + " " + value}
}

func (f *Formatter) propertySection(label string, props []*ngexplorer.Property) []string {
	if len(props) == 0 {
		return nil
	}
	lines := []string{"", f.styles.section.Render(label)}
	for _, p := range props {
		line := "  • " + f.styles.member.Render(p.Name) + ": " + f.styles.muted.Render(p.Type)
		if p.DefaultValue != "" {
			line += " = " + p.DefaultValue
		}
		line += f.deprecated(p.Deprecated)
		lines = append(lines, line)
		lines = append(lines, f.memberDescription(p.RawDescription)...)
	}
	return lines
}

func (f *Formatter) methodSection(methods []*ngexplorer.Method) []string {
	if len(methods) == 0 {
		return nil
	}
	lines := []string{"", f.styles.section.Render("Methods:")}
	for _, m := range methods {
		returnType := m.ReturnType
		if returnType == "" {
			returnType = "void"
		}
		line := "  • " + f.styles.member.Render(m.Name) + "(" + formatArgs(m.Args) + "): " +
			f.styles.muted.Render(returnType) + f.deprecated(m.Deprecated)
		lines = append(lines, line)
		lines = append(lines, f.memberDescription(m.RawDescription)...)
	}
	return lines
}

func (f *Formatter) constructorSection(label string, c *ngexplorer.Constructor) []string {
	if c == nil {
		return nil
	}
	lines := []string{"", f.styles.section.Render(label)}
	if len(c.Args) == 0 {
		return append(lines, f.styles.muted.Render("  No dependencies"))
	}
	for _, a := range c.Args {
		lines = append(lines, "  • "+f.styles.member.Render(a.Name)+": "+f.styles.muted.Render(a.Type))
	}
	return lines
}

func (f *Formatter) nameSection(label string, names []string) []string {
	if len(names) == 0 {
		return nil
	}
	lines := []string{"", f.styles.section.Render(label)}
	for _, name := range names {
		lines = append(lines, "  • "+name)
	}
	return lines
}

func (f *Formatter) heritage(extends, implements []string) []string {
	var lines []string
	if len(extends) > 0 {
		lines = append(lines, "", f.styles.section.Render("Extends:")+" "+strings.Join(extends, ", "))
	}
	if len(implements) > 0 {
		lines = append(lines, "", f.styles.section.Render("Implements:")+" "+strings.Join(implements, ", "))
	}
	return lines
}

func (f *Formatter) deprecated(v bool) string {
	if !v {
		return ""
	}
	return f.styles.warning.Render(" (deprecated)")
}

func (f *Formatter) memberDescription(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, "    "+f.styles.muted.Render(line))
		}
	}
	return lines
}

func formatArgs(args []*ngexplorer.Arg) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		parts = append(parts, a.Name+": "+a.Type)
	}
	return strings.Join(parts, ", ")
}
