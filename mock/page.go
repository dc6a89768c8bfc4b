package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of wordfreq.PageCache.
type PageCache struct {
	FindPageFn    func(ctx context.Context, url string) (*wordfreq.Page, error)
	SavePageFn    func(ctx context.Context, page *wordfreq.Page) error
	FindPagesFn   func(ctx context.Context, filter wordfreq.PageFilter) ([]*wordfreq.Page, error)
	DeletePagesFn func(ctx context.Context) (int, error)
}

func (c *PageCache) FindPage(ctx context.Context, url string) (*wordfreq.Page, error) {
	return c.FindPageFn(ctx, url)
}

func (c *PageCache) SavePage(ctx context.Context, page *wordfreq.Page) error {
	return c.SavePageFn(ctx, page)
}

func (c *PageCache) FindPages(ctx context.Context, filter wordfreq.PageFilter) ([]*wordfreq.Page, error) {
	return c.FindPagesFn(ctx, filter)
}

func (c *PageCache) DeletePages(ctx context.Context) (int, error) {
	return c.DeletePagesFn(ctx)
}
