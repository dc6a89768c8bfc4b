package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/wordfreq"
)

const pageColumns = "id, url, html, content_hash, fetched_at"

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanPage reads one row selected with pageColumns.
func scanPage(row rowScanner) (*wordfreq.Page, error) {
	var (
		page      wordfreq.Page
		fetchedAt string
	)
	if err := row.Scan(&page.ID, &page.URL, &page.HTML, &page.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("page %s: bad fetched_at %q: %w", page.URL, fetchedAt, err)
	}
	page.FetchedAt = t
	return &page, nil
}

// paginate returns the LIMIT/OFFSET tail for a query. SQLite needs a
// LIMIT before any OFFSET; -1 means unbounded.
func paginate(limit, offset int) (string, []any) {
	if limit <= 0 && offset <= 0 {
		return "", nil
	}
	if limit <= 0 {
		limit = -1
	}
	var b strings.Builder
	args := []any{limit}
	b.WriteString(" LIMIT ?")
	if offset > 0 {
		b.WriteString(" OFFSET ?")
		args = append(args, offset)
	}
	return b.String(), args
}
