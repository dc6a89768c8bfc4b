package toml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordfreq/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	Locale string `default:"pt"`
	Count  struct {
		Limit       int           `default:"0"`
		MinCount    int           `default:"1"`
		Cache       bool          `default:"true" negatable:""`
		CacheMaxAge time.Duration `default:"24h"`
		Formats     []string
	} `cmd:""`
	Text struct {
		Limit int `default:"0"`
	} `cmd:""`
}

func parse(t *testing.T, config string, args ...string) *testCLI {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	cli := &testCLI{}
	parser, err := kong.New(cli,
		kong.Configuration(toml.Loader, path),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("reads top-level keys", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, `locale = "pt-BR"`, "count")

		assert.Equal(t, "pt-BR", cli.Locale)
	})

	t.Run("accepts underscores for dashed flags", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "min_count = 3\ncache_max_age = \"1h\"\n", "count")

		assert.Equal(t, 3, cli.Count.MinCount)
		assert.Equal(t, time.Hour, cli.Count.CacheMaxAge)
	})

	t.Run("accepts dashed keys", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, `"min-count" = 4`, "count")

		assert.Equal(t, 4, cli.Count.MinCount)
	})

	t.Run("command table applies only to its command", func(t *testing.T) {
		t.Parallel()

		config := "limit = 5\n[count]\nlimit = 100\n"

		assert.Equal(t, 100, parse(t, config, "count").Count.Limit)
		assert.Equal(t, 5, parse(t, config, "text").Text.Limit)
	})

	t.Run("reads booleans and arrays", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "cache = false\nformats = [\"tsv\", \"csv\"]\n", "count")

		assert.False(t, cli.Count.Cache)
		assert.Equal(t, []string{"tsv", "csv"}, cli.Count.Formats)
	})

	t.Run("flags override the file", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, `locale = "pt-BR"`, "count", "--locale=en")

		assert.Equal(t, "en", cli.Locale)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		t.Parallel()

		cli := parse(t, "", "count")

		assert.Equal(t, "pt", cli.Locale)
		assert.Equal(t, 1, cli.Count.MinCount)
		assert.Equal(t, 24*time.Hour, cli.Count.CacheMaxAge)
	})
}

func TestLoader_RejectsMalformedFile(t *testing.T) {
	t.Parallel()

	_, err := toml.Loader(strings.NewReader("locale = "))

	require.Error(t, err)
}
