package chapters_test

import (
	"strings"
	"testing"

	"sleeve/internal/chapters"
)

func TestBuilderAccumulatesContiguousEntries(t *testing.T) {
	var b chapters.Builder
	b.Add(1, "First", 180)
	b.Add(2, "Second", 200)
	b.Add(3, "Third", 150)

	entries := b.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []chapters.Entry{
		{StartMS: 0, EndMS: 180000, Title: "01. First"},
		{StartMS: 180000, EndMS: 380000, Title: "02. Second"},
		{StartMS: 380000, EndMS: 530000, Title: "03. Third"},
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, entry, want[i])
		}
	}

	for i := 0; i < len(entries)-1; i++ {
		if entries[i].EndMS != entries[i+1].StartMS {
			t.Fatalf("entries %d and %d not contiguous: %d != %d", i, i+1, entries[i].EndMS, entries[i+1].StartMS)
		}
	}

	if b.TotalMillis() != 530000 {
		t.Fatalf("unexpected total: %d", b.TotalMillis())
	}
}

func TestBuilderContiguityWithFractionalDurations(t *testing.T) {
	var b chapters.Builder
	durations := []float64{183.337, 201.019, 97.4441}
	for i, d := range durations {
		b.Add(i+1, "Track", d)
	}
	entries := b.Entries()
	for i := 0; i < len(entries)-1; i++ {
		if entries[i].EndMS != entries[i+1].StartMS {
			t.Fatalf("fractional durations broke contiguity at %d: %d != %d", i, entries[i].EndMS, entries[i+1].StartMS)
		}
	}
}

func TestBuilderClampsNegativeDuration(t *testing.T) {
	var b chapters.Builder
	b.Add(1, "Broken", -5)
	entries := b.Entries()
	if entries[0].StartMS != 0 || entries[0].EndMS != 0 {
		t.Fatalf("expected zero-length entry, got %+v", entries[0])
	}
}

func TestWriteFFMetadata(t *testing.T) {
	var b chapters.Builder
	b.Add(1, "Opening", 180)
	b.Add(2, "Closing", 150.5)

	var out strings.Builder
	if err := b.WriteFFMetadata(&out); err != nil {
		t.Fatalf("WriteFFMetadata returned error: %v", err)
	}

	want := ";FFMETADATA1\n" +
		"[CHAPTER]\nTIMEBASE=1/1000\nSTART=0\nEND=180000\ntitle=01. Opening\n" +
		"[CHAPTER]\nTIMEBASE=1/1000\nSTART=180000\nEND=330500\ntitle=02. Closing\n"
	if out.String() != want {
		t.Fatalf("unexpected serialization:\n%s", out.String())
	}
}
