package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Cache.FindPages(deps.Ctx, wordfreq.PageFilter{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached pages.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %8d  %s\n", p.FetchedAt.Local().Format(time.DateTime), len(p.HTML), p.URL)
	}
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	n, err := deps.Cache.DeletePages(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached %s.\n", n, plural(n, "page", "pages"))
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
