package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wordfreq"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wordfreq.PageCache = (*PageCache)(nil)

// PageCache implements wordfreq.PageCache using SQLite.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashContent computes xxHash of content and returns it as 16 hex digits.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// SavePage stores page, replacing the cached copy of the same URL.
// ID and ContentHash are assigned; a zero FetchedAt is set to now.
func (c *PageCache) SavePage(ctx context.Context, page *wordfreq.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now()
	}
	page.FetchedAt = page.FetchedAt.UTC().Truncate(time.Second)
	page.ContentHash = hashContent(page.HTML)

	// The row keeps its ID across refreshes.
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO pages (id, url, html, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			html = excluded.html,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
		RETURNING id
	`, uuid.New().String(), page.URL, page.HTML, page.ContentHash,
		page.FetchedAt.Format(time.RFC3339)).Scan(&page.ID)

	return err
}

// FindPage retrieves the cached page for url.
func (c *PageCache) FindPage(ctx context.Context, url string) (*wordfreq.Page, error) {
	row := c.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE url = ?", url)
	page, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wordfreq.Errorf(wordfreq.ENOTFOUND, "page not cached: %s", url)
	}
	return page, err
}

// FindPages retrieves cached pages matching the filter, newest first.
func (c *PageCache) FindPages(ctx context.Context, filter wordfreq.PageFilter) ([]*wordfreq.Page, error) {
	query := "SELECT " + pageColumns + " FROM pages"
	var args []any
	if filter.URL != nil {
		query += " WHERE url = ?"
		args = append(args, *filter.URL)
	}
	query += " ORDER BY fetched_at DESC, url ASC"
	tail, pageArgs := paginate(filter.Limit, filter.Offset)
	query += tail
	args = append(args, pageArgs...)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*wordfreq.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

// DeletePages removes every cached page.
func (c *PageCache) DeletePages(ctx context.Context) (int, error) {
	result, err := c.db.ExecContext(ctx, "DELETE FROM pages")
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
