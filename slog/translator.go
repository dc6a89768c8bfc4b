package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingTranslator implements wordfreq.Translator.
var _ wordfreq.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with logging.
type LoggingTranslator struct {
	next   wordfreq.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next wordfreq.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs how many of the
// words came back translated.
func (t *LoggingTranslator) Translate(ctx context.Context, words []string, from, to string) (translations map[string]string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"from", from,
			"to", to,
			"words", len(words),
			"translated", len(translations),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, words, from, to)
}
