package wordfreq

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Entry is one row of a frequency report: a ranked word and, when
// translation was requested, its gloss.
type Entry struct {
	Word        string `json:"word"`
	Count       int    `json:"count"`
	Translation string `json:"translation,omitempty"`
}

// NewEntries pairs ranked counts with translations keyed by word.
// translations may be nil.
func NewEntries(counts []WordCount, translations map[string]string) []Entry {
	entries := make([]Entry, 0, len(counts))
	for _, c := range counts {
		entries = append(entries, Entry{
			Word:        c.Word,
			Count:       c.Count,
			Translation: translations[c.Word],
		})
	}
	return entries
}

// WriteTSV writes one "word\tcount" line per entry in ranked order.
// A translation, when present, is appended as a third column.
func WriteTSV(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		var err error
		if e.Translation != "" {
			_, err = fmt.Fprintf(w, "%s\t%d\t%s\n", e.Word, e.Count, e.Translation)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\n", e.Word, e.Count)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes entries as a vocabulary file with a left,right,notes
// header: left is the word, right its translation and notes the count.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"left", "right", "notes"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, e.Translation, "count=" + strconv.Itoa(e.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatTSV  Format = "tsv"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Write writes entries to w in the given format.
// Returns EINVALID for an unknown format.
func Write(w io.Writer, format Format, entries []Entry) error {
	switch format {
	case FormatTSV, "":
		return WriteTSV(w, entries)
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	default:
		return Errorf(EINVALID, "unknown format %q", format)
	}
}
