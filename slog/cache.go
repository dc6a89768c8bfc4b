package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Ensure LoggingPageCache implements wordfreq.PageCache.
var _ wordfreq.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with logging of hits, misses and writes.
type LoggingPageCache struct {
	next   wordfreq.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next wordfreq.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// FindPage delegates to the wrapped cache and logs whether the page was found.
func (c *LoggingPageCache) FindPage(ctx context.Context, url string) (page *wordfreq.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "hit", err == nil, "duration", time.Since(begin)}
		if err == nil {
			attrs = append(attrs, "fetched_at", page.FetchedAt)
		} else if wordfreq.ErrorCode(err) != wordfreq.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Info("cache lookup", attrs...)
	}(time.Now())
	return c.next.FindPage(ctx, url)
}

// SavePage delegates to the wrapped cache and logs the operation.
func (c *LoggingPageCache) SavePage(ctx context.Context, page *wordfreq.Page) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache save",
			"url", page.URL,
			"bytes", len(page.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SavePage(ctx, page)
}

// FindPages delegates to the wrapped cache.
func (c *LoggingPageCache) FindPages(ctx context.Context, filter wordfreq.PageFilter) ([]*wordfreq.Page, error) {
	return c.next.FindPages(ctx, filter)
}

// DeletePages delegates to the wrapped cache and logs how many pages were removed.
func (c *LoggingPageCache) DeletePages(ctx context.Context) (n int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache clear",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.DeletePages(ctx)
}
