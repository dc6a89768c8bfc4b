// Package goquery extracts the visible text of HTML documents using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TextExtractor implements wordfreq.TextExtractor at compile time.
var _ wordfreq.TextExtractor = (*TextExtractor)(nil)

// skippedElements never contribute text a reader would see.
var skippedElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
	atom.Iframe:   true,
	atom.Object:   true,
}

// blockElements are separated from their neighbours by whitespace so that
// "<p>um</p><p>dois</p>" yields two words instead of "umdois".
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Caption: true, atom.Dd: true, atom.Details: true,
	atom.Dialog: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true,
	atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.Option: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Td: true,
	atom.Th: true, atom.Tr: true, atom.Ul: true,
}

// TextExtractor returns the visible text of an HTML document.
type TextExtractor struct {
	selector string
}

// Option configures a TextExtractor.
type Option func(*TextExtractor)

// WithSelector restricts extraction to elements matching a CSS selector
// (e.g., "main", "article .content"). Defaults to the document body.
func WithSelector(selector string) Option {
	return func(e *TextExtractor) {
		e.selector = selector
	}
}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor(opts ...Option) *TextExtractor {
	e := &TextExtractor{selector: "body"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText parses rawHTML and returns the text of the selected elements.
// Scripts, styles and other non-rendered elements are skipped. A blank
// document has no text.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector)
	if sel.Length() == 0 {
		return "", wordfreq.Errorf(wordfreq.ENOTFOUND, "no elements match selector %q", e.selector)
	}

	var b strings.Builder
	for i, n := range sel.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeText(&b, n)
	}

	return strings.TrimSpace(b.String()), nil
}

// writeText appends the text beneath n in document order.
func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte(' ')
	}
}
