package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure Loader implements wordfreq.TextLoader at compile time.
var _ wordfreq.TextLoader = (*Loader)(nil)

// Loader produces the visible text of a URL. It serves pages from Cache when
// a fresh copy exists, otherwise fetches with retries and stores the result.
type Loader struct {
	Fetcher wordfreq.Fetcher
	Text    wordfreq.TextExtractor

	// Cache is optional. Read failures are treated as misses and write
	// failures are logged.
	Cache wordfreq.PageCache

	// MaxAge bounds how old a cached page may be. Zero never expires.
	MaxAge time.Duration

	RetryDelays []time.Duration

	// Logger may be nil.
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Load returns the extracted text of the page at url.
func (l *Loader) Load(ctx context.Context, url string) (string, error) {
	html, err := l.html(ctx, url)
	if err != nil {
		return "", err
	}
	return l.Text.ExtractText(html)
}

func (l *Loader) html(ctx context.Context, url string) (string, error) {
	if page := l.cached(ctx, url); page != nil {
		return page.HTML, nil
	}

	html, err := FetchWithRetry(ctx, url, l.Fetcher.Fetch, l.Logger, l.RetryDelays)
	if err != nil {
		return "", err
	}

	if l.Cache != nil {
		page := &wordfreq.Page{URL: url, HTML: html, FetchedAt: l.now()}
		if err := l.Cache.SavePage(ctx, page); err != nil && l.Logger != nil {
			l.Logger.Warn("cache save failed", "url", url, "err", err)
		}
	}
	return html, nil
}

func (l *Loader) cached(ctx context.Context, url string) *wordfreq.Page {
	if l.Cache == nil {
		return nil
	}
	page, err := l.Cache.FindPage(ctx, url)
	if err != nil {
		if wordfreq.ErrorCode(err) != wordfreq.ENOTFOUND && l.Logger != nil {
			l.Logger.Warn("cache lookup failed", "url", url, "err", err)
		}
		return nil
	}
	if page.Stale(l.now(), l.MaxAge) {
		return nil
	}
	return page
}

func (l *Loader) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}
