package mock

import "github.com/fwojciec/ngexplorer"

var _ ngexplorer.Converter = (*Converter)(nil)

// Converter is a mock implementation of ngexplorer.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ ngexplorer.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of ngexplorer.TextExtractor.
type TextExtractor struct {
	PlainTextFn func(html string) (string, error)
}

func (e *TextExtractor) PlainText(html string) (string, error) {
	return e.PlainTextFn(html)
}
