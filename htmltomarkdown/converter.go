// Package htmltomarkdown renders Compodoc HTML descriptions as Markdown for
// the detail view.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/ngexplorer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements ngexplorer.Converter at compile time.
var _ ngexplorer.Converter = (*Converter)(nil)

// Converter turns Compodoc description HTML into terminal-friendly
// Markdown. Links into the generated documentation site are reduced to
// their text since they do not resolve outside of it.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithCodeBlockFence("```"),
				commonmark.WithBulletListMarker("-"),
				commonmark.WithLinkEmptyHrefBehavior(commonmark.LinkBehaviorSkip),
				commonmark.WithLinkEmptyContentBehavior(commonmark.LinkBehaviorSkip),
			),
			table.NewTablePlugin(),
		),
	)
	conv.Register.PreRenderer(func(_ converter.Context, doc *html.Node) {
		unwrapSiteLinks(doc)
	}, converter.PriorityEarly)
	return &Converter{conv: conv}
}

// Convert transforms an HTML description into trimmed Markdown.
func (c *Converter) Convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", ngexplorer.Errorf(ngexplorer.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(fragment)
	if err != nil {
		return "", ngexplorer.Errorf(ngexplorer.EINVALID, "failed to convert description: %v", err)
	}

	return strings.TrimSpace(result), nil
}

// unwrapSiteLinks replaces anchors pointing inside the documentation site
// (relative hrefs and fragments) with their children.
func unwrapSiteLinks(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		unwrapSiteLinks(child)
		if child.DataAtom == atom.A && isSiteLink(child) {
			for grandchild := child.FirstChild; grandchild != nil; {
				following := grandchild.NextSibling
				child.RemoveChild(grandchild)
				n.InsertBefore(grandchild, child)
				grandchild = following
			}
			n.RemoveChild(child)
		}
		child = next
	}
}

func isSiteLink(a *html.Node) bool {
	for _, attr := range a.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		return href != "" && !strings.Contains(href, "://") && !strings.HasPrefix(href, "mailto:")
	}
	return false
}
