package wordfreq

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// WordCount is a normalized word and the number of times it occurred.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CaseFolder lowercases tokens using the casing rules of a specific locale.
type CaseFolder interface {
	Lower(s string) string
}

// delimiter matches an optional comma or period followed by a run of
// whitespace. Whitespace follows the ECMAScript \s class so that the
// non-breaking spaces common in rendered HTML separate words.
var delimiter = regexp.MustCompile(`[,.]?[\t\n\v\f\r\p{Z}\x{FEFF}]+`)

// Split partitions text into tokens. A comma or period directly before
// whitespace belongs to the delimiter and is discarded. Empty tokens
// produced by leading or trailing delimiters are kept; Count drops them.
func Split(text string) []string {
	return delimiter.Split(text, -1)
}

// Rejected reports whether token contains a character that disqualifies it
// from being counted: ASCII punctuation and symbols, digits, hyphen variants
// and a handful of typographic marks (£ ↑ · « »). Tokens that are not valid
// UTF-8 are rejected too.
func Rejected(token string) bool {
	return !utf8.ValidString(token) || strings.ContainsFunc(token, rejectedRune)
}

func rejectedRune(r rune) bool {
	switch {
	case '!' <= r && r <= '/':
		return true
	case '0' <= r && r <= '9':
		return true
	case ':' <= r && r <= '@':
		return true
	case '[' <= r && r <= '`':
		return true
	case '{' <= r && r <= '~':
		return true
	}
	switch r {
	case '–', '£', '↑', '·', '«', '»':
		return true
	}
	return false
}

// Count splits text into tokens, drops rejected and empty tokens, lowercases
// the survivors with folder and returns the distinct words ranked by
// descending count. Words with equal counts keep the order of their first
// occurrence. Count never fails; text without qualifying tokens yields an
// empty result.
func Count(text string, folder CaseFolder) []WordCount {
	index := make(map[string]int)
	counts := []WordCount{}

	for _, token := range Split(text) {
		if token == "" || Rejected(token) {
			continue
		}
		word := folder.Lower(token)
		if i, ok := index[word]; ok {
			counts[i].Count++
			continue
		}
		index[word] = len(counts)
		counts = append(counts, WordCount{Word: word, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Top returns the first n entries of a ranked result.
// A non-positive n returns counts unchanged.
func Top(counts []WordCount, n int) []WordCount {
	if n <= 0 || n >= len(counts) {
		return counts
	}
	return counts[:n]
}

// MinCount returns the entries of a ranked result occurring at least threshold times.
func MinCount(counts []WordCount, threshold int) []WordCount {
	// Ranked descending, so the cut is a prefix.
	for i, c := range counts {
		if c.Count < threshold {
			return counts[:i]
		}
	}
	return counts
}

// Total returns the number of counted tokens in a result.
func Total(counts []WordCount) int {
	var n int
	for _, c := range counts {
		n += c.Count
	}
	return n
}
