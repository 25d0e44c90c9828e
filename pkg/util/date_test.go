package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2026-02-17T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2026, 2, 17, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestStartOfWeek(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		// Wednesday -> previous Monday
		{time.Date(2026, 2, 18, 15, 30, 0, 0, time.UTC), "2026-02-16"},
		// Monday stays put
		{time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), "2026-02-16"},
		// Sunday belongs to the week started six days earlier
		{time.Date(2026, 2, 22, 23, 59, 0, 0, time.UTC), "2026-02-16"},
	}
	for _, c := range cases {
		if got := FormatDate(StartOfWeek(c.in)); got != c.want {
			t.Fatalf("StartOfWeek(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestEndOfWeek(t *testing.T) {
	in := time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC)
	if got := FormatDate(EndOfWeek(in)); got != "2026-02-22" {
		t.Fatalf("EndOfWeek = %s", got)
	}
}

func TestMonthRanges(t *testing.T) {
	in := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	if got := FormatDate(StartOfMonth(in)); got != "2026-01-01" {
		t.Fatalf("StartOfMonth = %s", got)
	}
	if got := FormatDate(EndOfMonth(in)); got != "2026-01-31" {
		t.Fatalf("EndOfMonth = %s", got)
	}
	next := NextMonth(in)
	if got := FormatDate(next); got != "2026-02-01" {
		t.Fatalf("NextMonth = %s", got)
	}
	if got := FormatDate(EndOfMonth(next)); got != "2026-02-28" {
		t.Fatalf("EndOfMonth(next) = %s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("한국어 요약", 3); got != "한국어" {
		t.Fatalf("unexpected truncate %q", got)
	}
	if got := Truncate("short", 200); got != "short" {
		t.Fatalf("unexpected truncate %q", got)
	}
}
