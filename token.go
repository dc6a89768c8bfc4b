package wordfreq

import "context"

// TokenCounter reports how many model tokens a text costs. Translators
// use it to size the word batches they send.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
