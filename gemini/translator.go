// Package gemini glosses ranked words with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for translation.
const DefaultModel = "gemini-2.5-flash"

// DefaultBatchTokens bounds the word list sent in one request.
const DefaultBatchTokens = 2000

// DefaultBatchSize bounds the words per request when no TokenCounter is set.
const DefaultBatchSize = 200

// DefaultConcurrency is the number of batch requests in flight at once.
const DefaultConcurrency = 4

// Ensure Translator implements wordfreq.Translator at compile time.
var _ wordfreq.Translator = (*Translator)(nil)

// Translator implements wordfreq.Translator using Google Gemini.
type Translator struct {
	client      *genai.Client
	model       string
	counter     wordfreq.TokenCounter
	batchTokens int
	concurrency int
	limiter     *rate.Limiter
}

// Option configures a Translator.
type Option func(*Translator)

// WithModel sets the Gemini model.
func WithModel(model string) Option {
	return func(t *Translator) {
		t.model = model
	}
}

// WithTokenCounter batches words by token count instead of word count.
func WithTokenCounter(counter wordfreq.TokenCounter, batchTokens int) Option {
	return func(t *Translator) {
		t.counter = counter
		t.batchTokens = batchTokens
	}
}

// WithConcurrency bounds the batch requests in flight. Values below 1
// send batches one at a time.
func WithConcurrency(n int) Option {
	return func(t *Translator) {
		t.concurrency = max(n, 1)
	}
}

// WithRateLimit spaces requests to at most rps per second.
func WithRateLimit(rps float64) Option {
	return func(t *Translator) {
		t.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewTranslator creates a new Translator.
func NewTranslator(client *genai.Client, opts ...Option) *Translator {
	t := &Translator{
		client:      client,
		model:       DefaultModel,
		batchTokens: DefaultBatchTokens,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate glosses words from language from into language to, one request
// per batch.
func (t *Translator) Translate(ctx context.Context, words []string, from, to string) (map[string]string, error) {
	if from == "" {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "source language required")
	}
	if to == "" {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "target language required")
	}

	translations := make(map[string]string, len(words))
	if len(words) == 0 {
		return translations, nil
	}

	batches, err := t.batches(ctx, words)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	config := BuildConfig()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)
	for _, batch := range batches {
		g.Go(func() error {
			got, err := t.translateBatch(gctx, batch, from, to, config)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			for word, translation := range got {
				translations[word] = translation
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return translations, nil
}

func (t *Translator) translateBatch(ctx context.Context, batch []string, from, to string, config *genai.GenerateContentConfig) (map[string]string, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	result, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildTranslatePrompt(batch, from, to)}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, wordfreq.Errorf(wordfreq.EINTERNAL, "gemini returned nil result")
	}
	return ParseTranslations(result.Text(), batch), nil
}

func (t *Translator) batches(ctx context.Context, words []string) ([][]string, error) {
	if t.counter == nil {
		return BatchBySize(words, DefaultBatchSize), nil
	}
	return BatchByTokens(ctx, words, t.counter, t.batchTokens)
}

// BatchBySize splits words into consecutive batches of at most size words.
func BatchBySize(words []string, size int) [][]string {
	if size <= 0 {
		size = len(words)
	}
	var batches [][]string
	for len(words) > 0 {
		n := min(size, len(words))
		batches = append(batches, words[:n])
		words = words[n:]
	}
	return batches
}

// BatchByTokens splits words into consecutive batches whose token counts sum
// to at most budget. A word over budget on its own gets a batch of its own.
func BatchByTokens(ctx context.Context, words []string, counter wordfreq.TokenCounter, budget int) ([][]string, error) {
	var batches [][]string
	var current []string
	var used int

	for _, word := range words {
		n, err := counter.CountTokens(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("count tokens: %w", err)
		}
		if len(current) > 0 && used+n > budget {
			batches = append(batches, current)
			current, used = nil, 0
		}
		current = append(current, word)
		used += n
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches, nil
}

// BuildConfig returns the GenerateContentConfig for translation requests.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You translate vocabulary lists for language learners. For each word give its most common translation. Reply with one line per word: the word exactly as given, a tab character, then the translation. Output nothing else.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildTranslatePrompt lists words one per line under the language pair.
func BuildTranslatePrompt(words []string, from, to string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Translate these words from %s to %s.\n\n", from, to)
	for _, w := range words {
		sb.WriteString(w)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseTranslations reads word<TAB>translation lines. Lines without a tab,
// with an empty translation, or naming a word not in words are ignored.
func ParseTranslations(text string, words []string) map[string]string {
	want := make(map[string]bool, len(words))
	for _, w := range words {
		want[w] = true
	}

	translations := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		word, translation, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		word = strings.TrimSpace(word)
		translation = strings.TrimSpace(translation)
		if translation == "" || !want[word] {
			continue
		}
		translations[word] = translation
	}
	return translations
}
