package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Locale is the language of the counted text.
	Locale string

	Folder     wordfreq.CaseFolder
	Loader     wordfreq.TextLoader
	Text       wordfreq.TextExtractor
	Cache      wordfreq.PageCache
	Translator wordfreq.Translator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Locale  string `default:"pt" env:"WORDFREQ_LOCALE" help:"Language of the text, as a BCP 47 tag"`
	Verbose bool   `short:"v" help:"Log fetches, cache use and translation to stderr"`

	Count CountCmd `cmd:"" help:"Rank the words of a page, file or stdin by frequency"`
	Text  TextCmd  `cmd:"" help:"Print the text that count would analyze"`
	Cache CacheCmd `cmd:"" help:"Inspect or clear the page cache"`
}

// FetchFlags control how a SOURCE is turned into text.
type FetchFlags struct {
	Extract     string        `enum:"body,main,readability" default:"body" help:"Text to analyze: whole body, main content (trafilatura) or readability article"`
	Selector    string        `default:"body" help:"CSS selector whose text is analyzed with --extract=body"`
	Render      string        `enum:"auto,http,browser" default:"auto" help:"Fetch pages statically, with headless Chrome, or decide per page"`
	Timeout     time.Duration `default:"10s" help:"Per-request fetch timeout"`
	RenderDelay time.Duration `help:"Extra wait after load before reading a browser-rendered page"`
	MinWords    int           `default:"50" help:"With --render=auto, static pages with fewer words are also rendered in the browser"`
	UserAgent   string        `env:"WORDFREQ_USER_AGENT" help:"User-Agent header for static fetches"`
	Retries     int           `default:"3" help:"Retries for failed fetches"`
	Cache       bool          `default:"true" negatable:"" help:"Use the page cache"`
	CacheMaxAge time.Duration `default:"24h" help:"Refetch cached pages older than this (0 keeps them forever)"`
}

// CountCmd is the "count" subcommand.
type CountCmd struct {
	Source    string `arg:"" optional:"" help:"URL, file path, or - for stdin (default)"`
	Limit     int    `short:"n" help:"Show only the N most frequent words"`
	MinCount  int    `default:"1" help:"Drop words occurring fewer times"`
	Format    string `short:"f" enum:"tsv,csv,json" default:"tsv" help:"Output format"`
	Translate string `placeholder:"LANG" help:"Translate words into LANG with Gemini (needs GEMINI_API_KEY)"`
	Model     string `default:"gemini-2.5-flash" env:"WORDFREQ_MODEL" help:"Gemini model used by --translate"`

	FetchFlags `embed:""`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Source string `arg:"" optional:"" help:"URL, file path, or - for stdin (default)"`

	FetchFlags `embed:""`
}

// CacheCmd is the "cache" subcommand group.
type CacheCmd struct {
	List  CacheListCmd  `cmd:"" help:"List cached pages, newest first"`
	Clear CacheClearCmd `cmd:"" help:"Remove every cached page"`
}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct {
	Limit int `short:"n" help:"Show at most N pages"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
