package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreGetFresh(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "markets", []string{"SPX", "BTC"})

	var got []string
	if !s.Get(ctx, "markets", time.Minute, &got) {
		t.Fatalf("expected fresh hit")
	}
	if len(got) != 2 || got[0] != "SPX" {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestMemoryStoreGetExpired(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	base := time.Now()
	s.now = func() time.Time { return base }
	s.Set(ctx, "news", "payload")

	s.now = func() time.Time { return base.Add(16 * time.Minute) }

	var got string
	if s.Get(ctx, "news", 15*time.Minute, &got) {
		t.Fatalf("expected miss past ttl")
	}

	// Expired entries stay readable through the stale path.
	if !s.GetStale(ctx, "news", &got) {
		t.Fatalf("expected stale hit")
	}
	if got != "payload" {
		t.Fatalf("unexpected stale value %q", got)
	}
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var got string
	if s.Get(ctx, "absent", time.Minute, &got) {
		t.Fatalf("expected miss")
	}
	if s.GetStale(ctx, "absent", &got) {
		t.Fatalf("expected stale miss")
	}
}

func TestMemoryStoreSetOverwrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "fear-greed", 42)
	s.Set(ctx, "fear-greed", 55)

	var got int
	if !s.Get(ctx, "fear-greed", time.Minute, &got) {
		t.Fatalf("expected hit")
	}
	if got != 55 {
		t.Fatalf("expected last write to win, got %d", got)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "a", 1)
	s.Set(ctx, "b", 2)

	s.Clear(ctx, "a")
	var got int
	if s.GetStale(ctx, "a", &got) {
		t.Fatalf("expected a cleared")
	}
	if !s.GetStale(ctx, "b", &got) {
		t.Fatalf("expected b kept")
	}

	s.Clear(ctx)
	if s.GetStale(ctx, "b", &got) {
		t.Fatalf("expected all cleared")
	}
}

func TestMemoryStoreTypeMismatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Set(ctx, "k", "string value")
	var got int
	if s.Get(ctx, "k", time.Minute, &got) {
		t.Fatalf("expected miss on incompatible dest type")
	}
}
