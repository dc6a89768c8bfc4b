// Package http provides an HTTP-based implementation of wordfreq.Fetcher
// for pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with rod.DefaultFetchTimeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// DefaultAcceptLanguage asks servers for the Portuguese edition of a page.
const DefaultAcceptLanguage = "pt,pt-BR;q=0.9,en;q=0.5"

// DefaultUserAgent identifies the fetcher to servers.
const DefaultUserAgent = "wordfreq/1.0 (+https://github.com/fwojciec/wordfreq)"

// Ensure Fetcher implements wordfreq.Fetcher at compile time.
var _ wordfreq.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
// Response bodies are decoded to UTF-8 using the declared charset.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	acceptLanguage string
	userAgent      string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithAcceptLanguage sets the Accept-Language request header.
func WithAcceptLanguage(v string) Option {
	return func(f *Fetcher) {
		f.acceptLanguage = v
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(v string) Option {
	return func(f *Fetcher) {
		f.userAgent = v
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		acceptLanguage: DefaultAcceptLanguage,
		userAgent:      DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.acceptLanguage != "" {
		req.Header.Set("Accept-Language", f.acceptLanguage)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", wordfreq.Errorf(wordfreq.ENOTFOUND, "page not found: %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}

	enc, _, _ := charset.DetermineEncoding(b, resp.Header.Get("Content-Type"))
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", url, err)
	}

	return string(decoded), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
