// Package cases provides locale-aware lowercasing backed by golang.org/x/text/cases.
package cases

import (
	"strings"
	"sync"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "pt"

// Ensure Folder implements wordfreq.CaseFolder at compile time.
var _ wordfreq.CaseFolder = (*Folder)(nil)

// Folder lowercases text using the casing rules of a single locale.
// Folder is safe for concurrent use.
type Folder struct {
	tag language.Tag

	mu    sync.Mutex
	caser cases.Caser
}

// NewFolder returns a Folder for the BCP 47 locale tag (e.g., "pt", "pt-BR", "tr").
// Returns EINVALID if the tag cannot be parsed.
func NewFolder(locale string) (*Folder, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "locale required")
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "invalid locale %q: %v", locale, err)
	}

	return &Folder{
		tag:   tag,
		caser: cases.Lower(tag),
	}, nil
}

// Lower returns s lowercased according to the folder's locale.
func (f *Folder) Lower(s string) string {
	// Casers keep state between calls and must not be shared unguarded.
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.caser.String(s)
}

// Locale returns the canonical form of the folder's locale tag.
func (f *Folder) Locale() string {
	return f.tag.String()
}
