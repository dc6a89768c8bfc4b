// Package trafilatura extracts the main article content of a page with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/wordfreq"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wordfreq.Extractor at compile time.
var _ wordfreq.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to strip navigation, footers and other
// boilerplate so that only article text is counted.
type Extractor struct {
	fallback bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithFallback toggles the readability and dom-distiller fallback
// extractors trafilatura compares its own result against. Enabled by default.
func WithFallback(enabled bool) Option {
	return func(e *Extractor) {
		e.fallback = enabled
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{fallback: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
// Returns ENOTFOUND when trafilatura finds no main content.
func (e *Extractor) Extract(rawHTML string) (*wordfreq.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &wordfreq.Article{}, nil
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: e.fallback,
	})
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, wordfreq.Errorf(wordfreq.ENOTFOUND, "no main content found")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, err
	}

	return &wordfreq.Article{
		Title:       result.Metadata.Title,
		ContentHTML: buf.String(),
	}, nil
}
