package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.Translator = (*Translator)(nil)

// Translator is a mock implementation of wordfreq.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, words []string, from, to string) (map[string]string, error)
}

func (t *Translator) Translate(ctx context.Context, words []string, from, to string) (map[string]string, error) {
	return t.TranslateFn(ctx, words, from, to)
}
