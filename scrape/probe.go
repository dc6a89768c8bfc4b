package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/wordfreq"
)

// Mode selects how pages are fetched.
type Mode string

// Fetch modes.
const (
	// ModeAuto fetches statically and switches to the browser when the
	// static page fails or looks like an unrendered JavaScript shell.
	ModeAuto    Mode = "auto"
	ModeHTTP    Mode = "http"
	ModeBrowser Mode = "browser"
)

// ParseMode validates a fetch mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAuto, ModeHTTP, ModeBrowser:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", wordfreq.Errorf(wordfreq.EINVALID, "unknown fetch mode %q (want auto, http or browser)", s)
	}
}

// DefaultMinTokens is the token count below which ModeAuto suspects a
// static page of needing JavaScript.
const DefaultMinTokens = 50

// BrowserFunc starts a browser-backed fetcher. It is called at most once,
// and only when a page needs rendering.
type BrowserFunc func() (wordfreq.Fetcher, error)

// Ensure ProbeFetcher implements wordfreq.Fetcher at compile time.
var _ wordfreq.Fetcher = (*ProbeFetcher)(nil)

// ProbeFetcher chooses between a static fetcher and a browser per Mode.
// The browser is launched lazily so static pages never pay for Chrome.
//
// Decision flow in ModeAuto:
//   - Static fetch fails (other than a missing page) → browser
//   - Static text has at least MinTokens tokens → static
//   - Rendered text has >50% more tokens than static → browser
//   - Otherwise, or when the browser fails → static
type ProbeFetcher struct {
	mode      Mode
	static    wordfreq.Fetcher
	launch    BrowserFunc
	text      wordfreq.TextExtractor
	minTokens int

	mu      sync.Mutex
	browser wordfreq.Fetcher
}

// ProbeOption configures a ProbeFetcher.
type ProbeOption func(*ProbeFetcher)

// WithMinTokens sets the token count that marks a static page as complete.
func WithMinTokens(n int) ProbeOption {
	return func(p *ProbeFetcher) {
		p.minTokens = n
	}
}

// NewProbeFetcher creates a ProbeFetcher. text is used to compare static and
// rendered pages in ModeAuto.
func NewProbeFetcher(mode Mode, static wordfreq.Fetcher, launch BrowserFunc, text wordfreq.TextExtractor, opts ...ProbeOption) *ProbeFetcher {
	p := &ProbeFetcher{
		mode:      mode,
		static:    static,
		launch:    launch,
		text:      text,
		minTokens: DefaultMinTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch retrieves url with the fetcher the mode calls for.
func (p *ProbeFetcher) Fetch(ctx context.Context, url string) (string, error) {
	switch p.mode {
	case ModeHTTP:
		return p.static.Fetch(ctx, url)
	case ModeBrowser:
		browser, err := p.browserFetcher()
		if err != nil {
			return "", err
		}
		return browser.Fetch(ctx, url)
	}

	staticHTML, err := p.static.Fetch(ctx, url)
	if err != nil {
		if wordfreq.ErrorCode(err) == wordfreq.ENOTFOUND || ctx.Err() != nil {
			return "", err
		}
		browser, berr := p.browserFetcher()
		if berr != nil {
			return "", err
		}
		return browser.Fetch(ctx, url)
	}

	if p.complete(staticHTML) {
		return staticHTML, nil
	}

	browser, err := p.browserFetcher()
	if err != nil {
		return staticHTML, nil
	}
	renderedHTML, err := browser.Fetch(ctx, url)
	if err != nil {
		return staticHTML, nil
	}

	if ContentDiffers(staticHTML, renderedHTML, p.text) {
		return renderedHTML, nil
	}
	return staticHTML, nil
}

// complete reports whether static HTML already carries enough text.
func (p *ProbeFetcher) complete(html string) bool {
	text, err := p.text.ExtractText(html)
	if err != nil {
		return false
	}
	return countTokens(text) >= p.minTokens
}

func (p *ProbeFetcher) browserFetcher() (wordfreq.Fetcher, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.browser != nil {
		return p.browser, nil
	}
	if p.launch == nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "browser fetching not configured")
	}

	browser, err := p.launch()
	if err != nil {
		return nil, err
	}
	p.browser = browser
	return browser, nil
}

// Launched reports whether the browser has been started.
func (p *ProbeFetcher) Launched() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.browser != nil
}

// Close releases the static fetcher and the browser, if one was launched.
func (p *ProbeFetcher) Close() error {
	err := p.static.Close()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.browser != nil {
		if berr := p.browser.Close(); err == nil {
			err = berr
		}
		p.browser = nil
	}
	return err
}
