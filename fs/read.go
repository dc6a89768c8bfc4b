// Package fs reads local input: text files, saved HTML pages and stdin.
package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html/charset"
)

// Stdin is the source name that selects standard input.
const Stdin = "-"

// ReadText returns the contents of the file at path, or of stdin when path
// is empty or "-". HTML files are decoded to UTF-8 using the charset their
// meta tags declare.
func ReadText(path string, stdin io.Reader) (string, error) {
	if path == "" || path == Stdin {
		if stdin == nil {
			return "", wordfreq.Errorf(wordfreq.EINVALID, "no input")
		}
		return readAll(stdin, false)
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", wordfreq.Errorf(wordfreq.ENOTFOUND, "file not found: %s", path)
	}
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", wordfreq.Errorf(wordfreq.EINVALID, "%s is a directory", path)
	}

	return readAll(f, IsHTML(path))
}

func readAll(r io.Reader, html bool) (string, error) {
	if html {
		br := bufio.NewReader(r)
		// Peek lets the charset sniffer see the meta tags.
		head, _ := br.Peek(1024)
		enc, _, _ := charset.DetermineEncoding(head, "text/html")
		r = enc.NewDecoder().Reader(br)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// IsHTML reports whether path names a saved HTML page.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// IsURL reports whether source names a remote page rather than a local file.
func IsURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
