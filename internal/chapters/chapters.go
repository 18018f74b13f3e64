// Package chapters accumulates cumulative track timestamps into an FFMETADATA
// chapter index consumed by the final combine step.
package chapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Entry is one chapter: a half-open [Start, End) range in milliseconds plus a
// display title.
type Entry struct {
	StartMS int64
	EndMS   int64
	Title   string
}

// Builder appends entries in track order, keeping a running cumulative-time
// cursor. Entries are contiguous by construction: each entry's end and the
// next entry's start truncate the same cursor value.
type Builder struct {
	cursor  float64
	entries []Entry
}

// Add appends a chapter spanning the next duration seconds, titled with the
// zero-padded track number and title, then advances the cursor.
func (b *Builder) Add(trackNumber int, title string, durationSeconds float64) {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	start := b.cursor
	end := b.cursor + durationSeconds
	b.entries = append(b.entries, Entry{
		StartMS: toMillis(start),
		EndMS:   toMillis(end),
		Title:   fmt.Sprintf("%02d. %s", trackNumber, title),
	})
	b.cursor = end
}

// Entries returns the accumulated chapters in insertion order.
func (b *Builder) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// TotalMillis returns the cumulative duration of all added chapters.
func (b *Builder) TotalMillis() int64 {
	return toMillis(b.cursor)
}

// WriteFFMetadata serializes the entries in ffmpeg's metadata format: the
// magic header line, then one [CHAPTER] block per entry with a millisecond
// timebase, integer start/end offsets, and a title line.
func (b *Builder) WriteFFMetadata(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(";FFMETADATA1\n"); err != nil {
		return err
	}
	for _, entry := range b.entries {
		if _, err := fmt.Fprintf(bw, "[CHAPTER]\nTIMEBASE=1/1000\nSTART=%d\nEND=%d\ntitle=%s\n",
			entry.StartMS, entry.EndMS, entry.Title); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the FFMETADATA serialization to path.
func (b *Builder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.WriteFFMetadata(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func toMillis(seconds float64) int64 {
	return int64(seconds * 1000)
}
