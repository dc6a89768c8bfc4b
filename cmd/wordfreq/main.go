package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/cases"
	"github.com/fwojciec/wordfreq/fs"
	"github.com/fwojciec/wordfreq/gemini"
	"github.com/fwojciec/wordfreq/goquery"
	wfhttp "github.com/fwojciec/wordfreq/http"
	"github.com/fwojciec/wordfreq/readability"
	"github.com/fwojciec/wordfreq/rod"
	"github.com/fwojciec/wordfreq/scrape"
	wfslog "github.com/fwojciec/wordfreq/slog"
	"github.com/fwojciec/wordfreq/sqlite"
	"github.com/fwojciec/wordfreq/toml"
	"github.com/fwojciec/wordfreq/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		os.Exit(1)
	}
}

// errorText returns the message of application errors and the full
// text of anything else.
func errorText(err error) string {
	var e *wordfreq.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// Page cache path. Set before calling Run().
	DBPath string

	// Configuration file path. Missing files are ignored.
	ConfigPath string

	// Input for sources given as "-" or omitted.
	Stdin io.Reader

	// SQLite database backing the page cache, opened only when needed.
	DB *sqlite.DB

	// Services for end-to-end testing. Nil values are built from flags.
	Fetcher    wordfreq.Fetcher
	Translator wordfreq.Translator
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wordfreq"),
		kong.Description("Rank the words of a web page by how often they occur"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(toml.Loader, m.ConfigPath),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return wordfreq.Errorf(wordfreq.EINVALID, "no command specified. Run 'wordfreq --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	folder, err := cases.NewFolder(cli.Locale)
	if err != nil {
		return err
	}
	deps.Folder = folder
	deps.Locale = folder.Locale()

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "count", "text":
		source, flags := cli.Text.Source, cli.Text.FetchFlags
		if command == "count" {
			source, flags = cli.Count.Source, cli.Count.FetchFlags
		}

		deps.Text = textExtractor(flags.Extract, flags.Selector, source)

		if fs.IsURL(source) {
			loader, err := m.loader(flags, deps.Locale, deps.Text, logger, cli.Verbose)
			if err != nil {
				return err
			}
			defer loader.Fetcher.Close()
			defer m.Close()
			deps.Loader = loader
		}

		if command == "count" && cli.Count.Translate != "" {
			translator, err := m.translator(ctx, cli.Count.Model, stderr)
			if err != nil {
				return err
			}
			if cli.Verbose {
				translator = wfslog.NewLoggingTranslator(translator, logger)
			}
			deps.Translator = translator
		}

	case "cache":
		cache, err := m.openCache(stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Cache = cache
		if cli.Verbose {
			deps.Cache = wfslog.NewLoggingPageCache(cache, logger)
		}
	}

	return kongCtx.Run(deps)
}

// textExtractor builds the HTML-to-text pipeline selected by --extract.
// The selector only narrows whole-body extraction.
func textExtractor(mode, selector, source string) wordfreq.TextExtractor {
	body := goquery.NewTextExtractor()
	switch mode {
	case "main":
		return scrape.NewMainTextExtractor(trafilatura.NewExtractor(), body)
	case "readability":
		article := readability.NewExtractor()
		if fs.IsURL(source) {
			article = readability.NewExtractorForURL(source)
		}
		return scrape.NewMainTextExtractor(article, body)
	default:
		if selector != "" {
			return goquery.NewTextExtractor(goquery.WithSelector(selector))
		}
		return body
	}
}

// loader wires fetching, retries and the page cache for URL sources.
func (m *Main) loader(flags FetchFlags, locale string, text wordfreq.TextExtractor, logger *slog.Logger, verbose bool) (*scrape.Loader, error) {
	mode, err := scrape.ParseMode(flags.Render)
	if err != nil {
		return nil, err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []wfhttp.Option{
			wfhttp.WithTimeout(flags.Timeout),
			wfhttp.WithAcceptLanguage(acceptLanguage(locale)),
		}
		if flags.UserAgent != "" {
			opts = append(opts, wfhttp.WithUserAgent(flags.UserAgent))
		}
		static := wfhttp.NewFetcher(opts...)
		launch := func() (wordfreq.Fetcher, error) {
			browser, err := rod.NewFetcher(
				rod.WithFetchTimeout(flags.Timeout),
				rod.WithRenderDelay(flags.RenderDelay),
			)
			if err != nil {
				return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
			}
			return browser, nil
		}
		// Completeness is judged on the whole body, whatever --extract says.
		fetcher = scrape.NewProbeFetcher(mode, static, launch, goquery.NewTextExtractor(),
			scrape.WithMinTokens(flags.MinWords))
	}
	if verbose {
		fetcher = wfslog.NewLoggingFetcher(fetcher, logger)
	}

	loader := &scrape.Loader{
		Fetcher:     fetcher,
		Text:        text,
		MaxAge:      flags.CacheMaxAge,
		RetryDelays: scrape.RetryDelays(flags.Retries),
		Logger:      logger,
	}

	if flags.Cache {
		cache, err := m.openCache(io.Discard)
		if err != nil {
			// A broken cache never blocks counting.
			logger.Warn("page cache unavailable", "path", m.DBPath, "err", err)
		} else {
			loader.Cache = cache
			if verbose {
				loader.Cache = wfslog.NewLoggingPageCache(cache, logger)
			}
		}
	}

	return loader, nil
}

// acceptLanguage prefers pages in locale, falling back to English.
func acceptLanguage(locale string) string {
	if locale == "pt" {
		return wfhttp.DefaultAcceptLanguage
	}
	if strings.HasPrefix(locale, "en") {
		return locale
	}
	return locale + ",en;q=0.5"
}

func (m *Main) openCache(stderr io.Writer) (*sqlite.PageCache, error) {
	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0755)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(stderr, "Hint: Set WORDFREQ_DB to use a different cache path\n")
		return nil, fmt.Errorf("failed to open page cache at %q: %w", m.DBPath, err)
	}
	return sqlite.NewPageCache(m.DB), nil
}

func (m *Main) translator(ctx context.Context, model string, stderr io.Writer) (wordfreq.Translator, error) {
	if m.Translator != nil {
		return m.Translator, nil
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	opts := []gemini.Option{gemini.WithModel(model), gemini.WithRateLimit(translateRPS)}
	if counter, err := gemini.NewTokenCounter(model); err == nil {
		opts = append(opts, gemini.WithTokenCounter(counter, gemini.DefaultBatchTokens))
	}
	return gemini.NewTranslator(client, opts...), nil
}

// translateRPS keeps batch requests under the free tier's per-minute quota.
const translateRPS = 2

func defaultDBPath() string {
	if path := os.Getenv("WORDFREQ_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wordfreq.db"
	}
	return filepath.Join(home, ".wordfreq", "cache.db")
}

func defaultConfigPath() string {
	if path := os.Getenv("WORDFREQ_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordfreq", "config.toml")
}
