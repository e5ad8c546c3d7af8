package ngexplorer

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// TextExtractor reduces an HTML fragment to plain text.
type TextExtractor interface {
	// PlainText returns the visible text of html with tags removed.
	// Block elements are separated by newlines.
	PlainText(html string) (string, error)
}
