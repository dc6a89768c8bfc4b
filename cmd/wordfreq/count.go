package main

import (
	"fmt"

	"github.com/fwojciec/wordfreq"
)

// Run executes the count command.
func (c *CountCmd) Run(deps *Dependencies) error {
	text, err := readSource(deps, c.Source)
	if err != nil {
		return err
	}

	counts := wordfreq.Count(text, deps.Folder)
	counts = wordfreq.MinCount(counts, c.MinCount)
	counts = wordfreq.Top(counts, c.Limit)

	var translations map[string]string
	if c.Translate != "" && len(counts) > 0 {
		if deps.Translator == nil {
			return wordfreq.Errorf(wordfreq.EINVALID, "translation requires GEMINI_API_KEY")
		}
		words := make([]string, len(counts))
		for i, wc := range counts {
			words[i] = wc.Word
		}
		translations, err = deps.Translator.Translate(deps.Ctx, words, deps.Locale, c.Translate)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
	}

	return wordfreq.Write(deps.Stdout, wordfreq.Format(c.Format), wordfreq.NewEntries(counts, translations))
}
