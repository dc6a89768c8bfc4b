package wordfreq

// Article is the main content of a page with navigation, footers and
// ads stripped.
type Article struct {
	Title       string
	ContentHTML string
}

// Extractor finds the article inside a full HTML document.
type Extractor interface {
	Extract(html string) (*Article, error)
}

// TextExtractor converts HTML into the plain text a reader would see.
type TextExtractor interface {
	// ExtractText returns the visible text of the document body.
	// Text of separate block elements is separated by whitespace.
	ExtractText(html string) (string, error)
}
