package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ngexplorer"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements ngexplorer.TextExtractor at compile time.
var _ ngexplorer.TextExtractor = (*TextExtractor)(nil)

// blockSelector matches elements that start a new line of text.
const blockSelector = "p, div, li, pre, blockquote, h1, h2, h3, h4, h5, h6, tr, dt, dd"

// TextExtractor reduces Compodoc HTML descriptions to plain text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// PlainText returns the visible text of fragment, one line per block element.
// Runs of whitespace inside a line collapse to a single space and blank
// lines are dropped.
func (e *TextExtractor) PlainText(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", ngexplorer.Errorf(ngexplorer.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithNodes(newline())
	})
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendNodes(newline())
	})

	var lines []string
	for _, line := range strings.Split(doc.Find("body").Text(), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
