package scrape

import "github.com/fwojciec/wordfreq"

// Ensure MainTextExtractor implements wordfreq.TextExtractor at compile time.
var _ wordfreq.TextExtractor = (*MainTextExtractor)(nil)

// MainTextExtractor narrows a page to its main content before taking its
// text, so navigation menus and footers do not skew the counts.
type MainTextExtractor struct {
	Main wordfreq.Extractor
	Text wordfreq.TextExtractor
}

// NewMainTextExtractor creates a MainTextExtractor.
func NewMainTextExtractor(main wordfreq.Extractor, text wordfreq.TextExtractor) *MainTextExtractor {
	return &MainTextExtractor{Main: main, Text: text}
}

// ExtractText extracts the main content of html and returns its text.
func (e *MainTextExtractor) ExtractText(html string) (string, error) {
	result, err := e.Main.Extract(html)
	if err != nil {
		return "", err
	}
	if result.ContentHTML == "" {
		return "", nil
	}
	return e.Text.ExtractText(result.ContentHTML)
}
