package scrape_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/mock"
	"github.com/fwojciec/wordfreq/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthrough treats the HTML itself as its text.
var passthrough = &mock.TextExtractor{
	ExtractTextFn: func(html string) (string, error) { return html, nil },
}

func staticFetcher(html string, err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) { return html, err },
		CloseFn: func() error { return nil },
	}
}

// browserLauncher returns a BrowserFunc and a pointer counting launches.
func browserLauncher(html string, err error) (scrape.BrowserFunc, *int) {
	launches := 0
	return func() (wordfreq.Fetcher, error) {
		launches++
		return staticFetcher(html, err), nil
	}, &launches
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"auto", "http", "browser"} {
		m, err := scrape.ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, scrape.Mode(s), m)
	}

	m, err := scrape.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, scrape.ModeAuto, m)

	_, err = scrape.ParseMode("selenium")
	require.Error(t, err)
	assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
}

func TestProbeFetcher_Fetch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	long := strings.Repeat("palavra ", 60)

	t.Run("http mode never launches the browser", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("rendered", nil)
		p := scrape.NewProbeFetcher(scrape.ModeHTTP, staticFetcher("estático", nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "estático", html)
		assert.Zero(t, *launches)
		assert.False(t, p.Launched())
	})

	t.Run("browser mode uses the browser", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("renderizado", nil)
		p := scrape.NewProbeFetcher(scrape.ModeBrowser, staticFetcher("estático", nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")
		require.NoError(t, err)
		_, err = p.Fetch(ctx, "https://example.com/outra")
		require.NoError(t, err)

		assert.Equal(t, "renderizado", html)
		assert.Equal(t, 1, *launches, "browser launched once")
	})

	t.Run("auto mode keeps a complete static page", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("renderizado", nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher(long, nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, long, html)
		assert.Zero(t, *launches)
	})

	t.Run("auto mode switches to rendered page when it adds content", func(t *testing.T) {
		t.Parallel()

		launch, _ := browserLauncher(long, nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("carregando", nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, long, html)
	})

	t.Run("auto mode keeps thin static page when rendering adds nothing", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("poucas palavras aqui", nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("poucas palavras aqui", nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "poucas palavras aqui", html)
		assert.Equal(t, 1, *launches)
	})

	t.Run("auto mode falls back to browser when static fetch fails", func(t *testing.T) {
		t.Parallel()

		launch, _ := browserLauncher("renderizado", nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("", errors.New("HTTP 403")), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "renderizado", html)
	})

	t.Run("auto mode returns missing page without launching", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("renderizado", nil)
		notFound := wordfreq.Errorf(wordfreq.ENOTFOUND, "page not found")
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("", notFound), launch, passthrough)

		_, err := p.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		assert.Equal(t, wordfreq.ENOTFOUND, wordfreq.ErrorCode(err))
		assert.Zero(t, *launches)
	})

	t.Run("auto mode keeps static page when browser cannot start", func(t *testing.T) {
		t.Parallel()

		launch := func() (wordfreq.Fetcher, error) { return nil, errors.New("chrome not found") }
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("pouco texto", nil), launch, passthrough)

		html, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "pouco texto", html)
	})

	t.Run("auto mode returns static error when browser cannot start", func(t *testing.T) {
		t.Parallel()

		launch := func() (wordfreq.Fetcher, error) { return nil, errors.New("chrome not found") }
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("", errors.New("HTTP 500")), launch, passthrough)

		_, err := p.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("min tokens option lowers the completeness bar", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("renderizado", nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("um dois três", nil), launch, passthrough,
			scrape.WithMinTokens(3))

		_, err := p.Fetch(ctx, "https://example.com")

		require.NoError(t, err)
		assert.Zero(t, *launches)
	})

	t.Run("browser mode without launcher is invalid", func(t *testing.T) {
		t.Parallel()

		p := scrape.NewProbeFetcher(scrape.ModeBrowser, staticFetcher("", nil), nil, passthrough)

		_, err := p.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	})
}

func TestProbeFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("closes static fetcher and launched browser", func(t *testing.T) {
		t.Parallel()

		var staticClosed, browserClosed bool
		static := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
			CloseFn: func() error { staticClosed = true; return nil },
		}
		browser := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "texto", nil },
			CloseFn: func() error { browserClosed = true; return nil },
		}
		launch := func() (wordfreq.Fetcher, error) { return browser, nil }

		p := scrape.NewProbeFetcher(scrape.ModeBrowser, static, launch, passthrough)
		_, err := p.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)

		require.NoError(t, p.Close())
		assert.True(t, staticClosed)
		assert.True(t, browserClosed)
	})

	t.Run("does not launch a browser to close it", func(t *testing.T) {
		t.Parallel()

		launch, launches := browserLauncher("", nil)
		p := scrape.NewProbeFetcher(scrape.ModeAuto, staticFetcher("", nil), launch, passthrough)

		require.NoError(t, p.Close())
		assert.Zero(t, *launches)
	})
}
