package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_SavePage(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and content hash", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		page := &wordfreq.Page{URL: "https://example.com", HTML: "<p>olá</p>"}

		require.NoError(t, cache.SavePage(context.Background(), page))

		assert.NotEmpty(t, page.ID)
		assert.Len(t, page.ContentHash, 16)
		assert.False(t, page.FetchedAt.IsZero())
	})

	t.Run("returns error for page without URL", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))

		err := cache.SavePage(context.Background(), &wordfreq.Page{HTML: "<p>olá</p>"})

		require.Error(t, err)
		assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	})

	t.Run("replaces the copy of the same URL and keeps its ID", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		ctx := context.Background()

		first := &wordfreq.Page{URL: "https://example.com", HTML: "antigo"}
		require.NoError(t, cache.SavePage(ctx, first))
		second := &wordfreq.Page{URL: "https://example.com", HTML: "novo"}
		require.NoError(t, cache.SavePage(ctx, second))

		got, err := cache.FindPage(ctx, "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "novo", got.HTML)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, second.ContentHash, got.ContentHash)
		assert.NotEqual(t, first.ContentHash, second.ContentHash)

		pages, err := cache.FindPages(ctx, wordfreq.PageFilter{})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})

	t.Run("identical HTML hashes identically", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		ctx := context.Background()

		a := &wordfreq.Page{URL: "https://a.example.com", HTML: "<p>igual</p>"}
		b := &wordfreq.Page{URL: "https://b.example.com", HTML: "<p>igual</p>"}
		require.NoError(t, cache.SavePage(ctx, a))
		require.NoError(t, cache.SavePage(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
	})
}

func TestPageCache_FindPage(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a saved page", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		ctx := context.Background()
		fetchedAt := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

		page := &wordfreq.Page{URL: "https://example.com/artigo", HTML: "<p>coração</p>", FetchedAt: fetchedAt}
		require.NoError(t, cache.SavePage(ctx, page))

		got, err := cache.FindPage(ctx, "https://example.com/artigo")

		require.NoError(t, err)
		assert.Equal(t, page.ID, got.ID)
		assert.Equal(t, "<p>coração</p>", got.HTML)
		assert.True(t, fetchedAt.Equal(got.FetchedAt))
	})

	t.Run("returns ENOTFOUND for uncached URL", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))

		_, err := cache.FindPage(context.Background(), "https://example.com/nada")

		require.Error(t, err)
		assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
	})
}

func TestPageCache_FindPages(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, cache *sqlite.PageCache) {
		t.Helper()
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			page := &wordfreq.Page{
				URL:       fmt.Sprintf("https://example.com/%d", i),
				HTML:      fmt.Sprintf("<p>%d</p>", i),
				FetchedAt: base.Add(time.Duration(i) * time.Hour),
			}
			require.NoError(t, cache.SavePage(context.Background(), page))
		}
	}

	t.Run("lists newest first", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		seed(t, cache)

		pages, err := cache.FindPages(context.Background(), wordfreq.PageFilter{})

		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "https://example.com/2", pages[0].URL)
		assert.Equal(t, "https://example.com/0", pages[2].URL)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		seed(t, cache)
		url := "https://example.com/1"

		pages, err := cache.FindPages(context.Background(), wordfreq.PageFilter{URL: &url})

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, url, pages[0].URL)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))
		seed(t, cache)

		pages, err := cache.FindPages(context.Background(), wordfreq.PageFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, pages, 1)
		assert.Equal(t, "https://example.com/1", pages[0].URL)
	})

	t.Run("returns empty slice when cache is empty", func(t *testing.T) {
		t.Parallel()

		cache := sqlite.NewPageCache(setupTestDB(t))

		pages, err := cache.FindPages(context.Background(), wordfreq.PageFilter{})

		require.NoError(t, err)
		assert.Empty(t, pages)
	})
}

func TestPageCache_DeletePages(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewPageCache(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, cache.SavePage(ctx, &wordfreq.Page{URL: "https://example.com/a", HTML: "a"}))
	require.NoError(t, cache.SavePage(ctx, &wordfreq.Page{URL: "https://example.com/b", HTML: "b"}))

	n, err := cache.DeletePages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = cache.DeletePages(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = cache.FindPage(ctx, "https://example.com/a")
	assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
}

func TestPageCache_FindPages_OffsetWithoutLimit(t *testing.T) {
	t.Parallel()

	cache := sqlite.NewPageCache(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		page := &wordfreq.Page{URL: fmt.Sprintf("https://example.com/%d", i), HTML: "x", FetchedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, cache.SavePage(ctx, page))
	}

	pages, err := cache.FindPages(ctx, wordfreq.PageFilter{Offset: 2})

	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "https://example.com/0", pages[0].URL)
}
