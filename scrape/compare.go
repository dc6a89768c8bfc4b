package scrape

import "github.com/fwojciec/wordfreq"

// ContentDiffers compares the text of statically fetched HTML with the text
// of browser-rendered HTML. Returns true if the rendered page has more than
// 50% more tokens, suggesting JavaScript adds meaningful content. Also returns
// true when extracting the static text fails.
func ContentDiffers(staticHTML, renderedHTML string, extractor wordfreq.TextExtractor) bool {
	staticText, err := extractor.ExtractText(staticHTML)
	if err != nil {
		return true
	}

	renderedText, err := extractor.ExtractText(renderedHTML)
	if err != nil {
		return false
	}

	staticLen := countTokens(staticText)
	renderedLen := countTokens(renderedText)

	if staticLen == 0 {
		return renderedLen > 0
	}

	return float64(renderedLen) > float64(staticLen)*1.5
}

func countTokens(text string) int {
	var n int
	for _, token := range wordfreq.Split(text) {
		if token != "" {
			n++
		}
	}
	return n
}
