// Package readability extracts the main article content of a page with go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/wordfreq"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements wordfreq.Extractor at compile time.
var _ wordfreq.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// NewExtractorForURL creates an Extractor that resolves relative links
// against the page's URL. An unparsable URL is ignored.
func NewExtractorForURL(rawURL string) *Extractor {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &Extractor{}
	}
	return &Extractor{pageURL: u}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*wordfreq.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &wordfreq.Article{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &wordfreq.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
