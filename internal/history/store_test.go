package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sleeve/internal/history"
)

func openStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddAndRecent(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	now := time.Now()
	first, err := store.Add(ctx, history.Record{
		CreatedAt:       now.Add(-time.Hour),
		FinishedAt:      now.Add(-time.Hour).Add(4 * time.Minute),
		OutputPath:      "/albums/live-set.mkv",
		Album:           "Live Set",
		Artist:          "The Band",
		TrackCount:      12,
		TotalDurationMS: 3_600_000,
		Status:          history.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected assigned id")
	}

	_, err = store.Add(ctx, history.Record{
		CreatedAt:  now,
		FinishedAt: now.Add(time.Minute),
		OutputPath: "/albums/broken.mkv",
		TrackCount: 3,
		Status:     history.StatusFailed,
		ErrorText:  "encode failed: track 2",
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Status != history.StatusFailed {
		t.Fatalf("expected newest first, got %+v", records[0])
	}
	if records[1].Album != "Live Set" || records[1].TotalDurationMS != 3_600_000 {
		t.Fatalf("record round-trip mismatch: %+v", records[1])
	}
	if records[1].CreatedAt.IsZero() {
		t.Fatal("expected parsed created_at")
	}
}

func TestRecentLimit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Add(ctx, history.Record{
			CreatedAt:  time.Now().Add(time.Duration(i) * time.Second),
			FinishedAt: time.Now().Add(time.Duration(i) * time.Second),
			OutputPath: "/albums/out.mkv",
			TrackCount: 1,
			Status:     history.StatusCompleted,
		})
		if err != nil {
			t.Fatalf("Add returned error: %v", err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(records))
	}
}

func TestReopenKeepsSchema(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	store, err := history.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if _, err := store.Add(context.Background(), history.Record{
		CreatedAt: time.Now(), FinishedAt: time.Now(),
		OutputPath: "/a.mkv", TrackCount: 1, Status: history.StatusCompleted,
	}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := history.Open(path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()

	records, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected persisted record, got %d", len(records))
	}
}
