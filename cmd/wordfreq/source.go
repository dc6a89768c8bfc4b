package main

import (
	"fmt"

	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/fs"
)

// readSource returns the text of source: the visible text of a URL or a
// saved HTML file, or the raw contents of any other file or stdin. A missing
// file counts as empty input and is reported on stderr.
func readSource(deps *Dependencies, source string) (string, error) {
	if fs.IsURL(source) {
		if deps.Loader == nil {
			return "", wordfreq.Errorf(wordfreq.EINTERNAL, "no loader configured for %s", source)
		}
		return deps.Loader.Load(deps.Ctx, source)
	}

	text, err := fs.ReadText(source, deps.Stdin)
	if wordfreq.ErrorCode(err) == wordfreq.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", wordfreq.ErrorMessage(err))
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !fs.IsHTML(source) {
		return text, nil
	}
	return deps.Text.ExtractText(text)
}
