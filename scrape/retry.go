// Package scrape turns a URL into countable text: it picks a fetcher,
// retries transient failures, consults the page cache and extracts the
// visible text of the fetched HTML.
package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryDelays returns n doubling delays starting at one second.
// Zero or negative n disables retries.
func RetryDelays(n int) []time.Duration {
	if n <= 0 {
		return []time.Duration{}
	}
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// FetchWithRetry fetches url, retrying once per entry in delays after
// waiting that long. Application errors other than EINTERNAL (a missing
// page, an invalid URL) are permanent and returned immediately.
// The logger may be nil.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || permanent(err) {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.Info("retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

func permanent(err error) bool {
	switch wordfreq.ErrorCode(err) {
	case wordfreq.ENOTFOUND, wordfreq.EINVALID:
		return true
	}
	return false
}
