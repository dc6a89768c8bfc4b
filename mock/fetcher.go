package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

// Compile-time interface verification.
var (
	_ wordfreq.Fetcher    = (*Fetcher)(nil)
	_ wordfreq.TextLoader = (*TextLoader)(nil)
)

// Fetcher is a mock implementation of wordfreq.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

// TextLoader is a mock implementation of wordfreq.TextLoader.
type TextLoader struct {
	LoadFn func(ctx context.Context, url string) (string, error)
}

func (l *TextLoader) Load(ctx context.Context, url string) (string, error) {
	return l.LoadFn(ctx, url)
}
