package db

import (
	"context"
	"testing"

	"github.com/hpungsan/tabstash/internal/tab"
)

func setupBackend(t *testing.T) *Backend {
	t.Helper()
	database, err := Init(t.TempDir())
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewBackend(database)
}

func TestBackend_FirstRunDefaults(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	tabs, err := b.LoadTabs(ctx)
	if err != nil {
		t.Fatalf("LoadTabs failed: %v", err)
	}
	if len(tabs) != 0 {
		t.Errorf("first-run tabs = %d, want 0", len(tabs))
	}

	pro, err := b.ProStatus(ctx)
	if err != nil {
		t.Fatalf("ProStatus failed: %v", err)
	}
	if pro {
		t.Error("first-run pro status should be off")
	}
}

func TestBackend_SaveAndLoadPreservesOrder(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	in := []tab.Tab{
		{ID: "b", URL: "https://example.com/b", Title: "B", FaviconURL: "fb", CapturedAt: 2},
		{ID: "a", URL: "https://example.com/a", Title: "A", FaviconURL: "fa", CapturedAt: 1},
	}
	if err := b.SaveTabs(ctx, in); err != nil {
		t.Fatalf("SaveTabs failed: %v", err)
	}

	out, err := b.LoadTabs(ctx)
	if err != nil {
		t.Fatalf("LoadTabs failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != "b" || out[1].ID != "a" {
		t.Errorf("order = [%s, %s], want [b, a]", out[0].ID, out[1].ID)
	}
	if out[0].Title != "B" || out[0].URL != "https://example.com/b" || out[0].CapturedAt != 2 {
		t.Errorf("fields not round-tripped: %+v", out[0])
	}
}

func TestBackend_SaveReplacesWholeCollection(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	if err := b.SaveTabs(ctx, []tab.Tab{
		{ID: "a", URL: "u", Title: "T", FaviconURL: "f", CapturedAt: 1},
		{ID: "b", URL: "u", Title: "T", FaviconURL: "f", CapturedAt: 2},
	}); err != nil {
		t.Fatalf("SaveTabs failed: %v", err)
	}

	if err := b.SaveTabs(ctx, []tab.Tab{
		{ID: "c", URL: "u", Title: "T", FaviconURL: "f", CapturedAt: 3},
	}); err != nil {
		t.Fatalf("SaveTabs failed: %v", err)
	}

	out, err := b.LoadTabs(ctx)
	if err != nil {
		t.Fatalf("LoadTabs failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != "c" {
		t.Errorf("tabs = %+v, want only c", out)
	}
}

func TestBackend_ProStatusRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := setupBackend(t)

	if err := b.SetProStatus(ctx, true); err != nil {
		t.Fatalf("SetProStatus failed: %v", err)
	}
	pro, err := b.ProStatus(ctx)
	if err != nil {
		t.Fatalf("ProStatus failed: %v", err)
	}
	if !pro {
		t.Error("pro status should be on")
	}

	if err := b.SetProStatus(ctx, false); err != nil {
		t.Fatalf("SetProStatus failed: %v", err)
	}
	pro, err = b.ProStatus(ctx)
	if err != nil {
		t.Fatalf("ProStatus failed: %v", err)
	}
	if pro {
		t.Error("pro status should be off again")
	}
}
