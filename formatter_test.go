package wordfreq_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntries(t *testing.T) {
	t.Parallel()

	counts := []wordfreq.WordCount{{Word: "gato", Count: 2}, {Word: "cão", Count: 1}}

	entries := wordfreq.NewEntries(counts, map[string]string{"gato": "cat"})

	assert.Equal(t, []wordfreq.Entry{
		{Word: "gato", Count: 2, Translation: "cat"},
		{Word: "cão", Count: 1},
	}, entries)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	entries := []wordfreq.Entry{
		{Word: "o", Count: 3},
		{Word: "gato", Count: 2, Translation: "cat"},
	}

	t.Run("tsv writes one line per entry in ranked order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, wordfreq.FormatTSV, entries)

		require.NoError(t, err)
		assert.Equal(t, "o\t3\ngato\t2\tcat\n", buf.String())
	})

	t.Run("empty format defaults to tsv", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, "", entries[:1])

		require.NoError(t, err)
		assert.Equal(t, "o\t3\n", buf.String())
	})

	t.Run("csv writes vocabulary rows with header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, wordfreq.FormatCSV, entries)

		require.NoError(t, err)
		assert.Equal(t, "left,right,notes\no,,count=3\ngato,cat,count=2\n", buf.String())
	})

	t.Run("json writes an array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, wordfreq.FormatJSON, entries)

		require.NoError(t, err)
		assert.JSONEq(t, `[{"word":"o","count":3},{"word":"gato","count":2,"translation":"cat"}]`, buf.String())
	})

	t.Run("writes nothing for empty tsv result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, wordfreq.FormatTSV, nil)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := wordfreq.Write(&buf, "xml", entries)

		require.Error(t, err)
		assert.Equal(t, wordfreq.EINVALID, wordfreq.ErrorCode(err))
	})
}
