package ratelimit

import (
	"testing"
	"time"
)

func TestAllowConsumesTokens(t *testing.T) {
	l := New(map[string]Limit{"p": {Capacity: 2, RefillPerSec: 0}})

	if !l.Allow("p") || !l.Allow("p") {
		t.Fatal("expected first two calls to pass")
	}
	if l.Allow("p") {
		t.Fatal("expected third call to be throttled")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New(map[string]Limit{"p": {Capacity: 1, RefillPerSec: 1}})
	base := time.Now()
	l.now = func() time.Time { return base }

	if !l.Allow("p") {
		t.Fatal("expected first call to pass")
	}
	if l.Allow("p") {
		t.Fatal("expected bucket to be empty")
	}

	l.now = func() time.Time { return base.Add(2 * time.Second) }
	if !l.Allow("p") {
		t.Fatal("expected refilled token after 2s")
	}
}

func TestUnknownKeyNeverThrottled(t *testing.T) {
	l := New(map[string]Limit{})
	for i := 0; i < 100; i++ {
		if !l.Allow("anything") {
			t.Fatal("unknown key must never throttle")
		}
	}
}
