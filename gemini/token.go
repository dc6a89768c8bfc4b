package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/wordfreq"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ wordfreq.TokenCounter = (*TokenCounter)(nil)

// TokenCounter sizes translation batches offline, before any request
// reaches the API.
type TokenCounter struct {
	model string
	local *tokenizer.LocalTokenizer
}

// NewTokenCounter loads the local tokenizer for model, or DefaultModel
// when model is empty. Only models the tokenizer package knows are
// accepted.
func NewTokenCounter(model string) (*TokenCounter, error) {
	if model == "" {
		model = DefaultModel
	}
	local, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "no local tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{model: model, local: local}, nil
}

// Model returns the model whose vocabulary is used.
func (c *TokenCounter) Model() string { return c.model }

// CountTokens returns how many tokens text costs as a user turn.
func (c *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	turn := genai.NewContentFromText(text, "user")
	res, err := c.local.CountTokens([]*genai.Content{turn}, nil)
	if err != nil {
		return 0, fmt.Errorf("tokenize for %s: %w", c.model, err)
	}
	return int(res.TotalTokens), nil
}
