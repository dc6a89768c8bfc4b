package mock

import "github.com/fwojciec/wordfreq"

// Compile-time interface verification.
var (
	_ wordfreq.Extractor     = (*Extractor)(nil)
	_ wordfreq.TextExtractor = (*TextExtractor)(nil)
)

// Extractor is a mock implementation of wordfreq.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wordfreq.Article, error)
}

func (e *Extractor) Extract(html string) (*wordfreq.Article, error) {
	return e.ExtractFn(html)
}

// TextExtractor is a mock implementation of wordfreq.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
