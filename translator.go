package wordfreq

import "context"

// Translator glosses words from one language into another.
type Translator interface {
	// Translate returns a translation for each word it could translate,
	// keyed by the original word. Words without a translation are omitted.
	Translate(ctx context.Context, words []string, from, to string) (map[string]string, error)
}
