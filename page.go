package wordfreq

import (
	"context"
	"time"
)

// Page is a fetched HTML page kept in the page cache.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	HTML        string    `json:"html"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Stale reports whether the page was fetched more than maxAge before now.
// A non-positive maxAge never expires.
func (p *Page) Stale(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return now.Sub(p.FetchedAt) > maxAge
}

// PageCache stores fetched HTML so repeated runs against the same URL
// do not hit the network.
type PageCache interface {
	// FindPage retrieves the cached page for url.
	// Returns ENOTFOUND if the page is not cached.
	FindPage(ctx context.Context, url string) (*Page, error)

	// SavePage stores the page, replacing any previous copy of the same URL.
	SavePage(ctx context.Context, page *Page) error

	// FindPages retrieves cached pages matching the filter, newest first.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePages removes every cached page and returns how many were removed.
	DeletePages(ctx context.Context) (int, error)
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
