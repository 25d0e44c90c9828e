package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

func newCalendarAggregator(src *fakeCalendar) *CalendarAggregator {
	return NewCalendarAggregator(src, cache.NewMemoryStore(), nopMetrics{}, logger.Nop(), time.Hour)
}

func TestCalendarRangeForTabs(t *testing.T) {
	agg := newCalendarAggregator(&fakeCalendar{})
	// Wednesday 2026-02-18.
	agg.now = func() time.Time { return time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC) }

	cases := []struct {
		tab  models.CalendarTab
		from string
		to   string
	}{
		{models.TabThisWeek, "2026-02-16", "2026-02-22"},
		{models.TabThisMonth, "2026-02-01", "2026-02-28"},
		{models.TabNextMonth, "2026-03-01", "2026-03-31"},
	}
	for _, c := range cases {
		from, to, err := agg.RangeFor(c.tab)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", c.tab, err)
		}
		if got := from.Format("2006-01-02"); got != c.from {
			t.Fatalf("%s: from = %s, want %s", c.tab, got, c.from)
		}
		if got := to.Format("2006-01-02"); got != c.to {
			t.Fatalf("%s: to = %s, want %s", c.tab, got, c.to)
		}
	}

	if _, _, err := agg.RangeFor("yesterday"); err == nil {
		t.Fatal("expected error for unknown tab")
	}
}

func TestCalendarSortsByTimeThenImpact(t *testing.T) {
	day := time.Date(2026, 2, 18, 13, 30, 0, 0, time.UTC)
	src := &fakeCalendar{
		configured: true,
		events: []models.EconomicEvent{
			{ID: "late", Datetime: day.Add(time.Hour), Impact: models.ImpactHigh},
			{ID: "tie-low", Datetime: day, Impact: models.ImpactLow},
			{ID: "tie-high", Datetime: day, Impact: models.ImpactHigh},
		},
	}
	agg := newCalendarAggregator(src)

	res, err := agg.Get(context.Background(), day.AddDate(0, 0, -1), day.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degraded {
		t.Fatal("healthy fetch must not be degraded")
	}

	order := []string{"tie-high", "tie-low", "late"}
	for i, want := range order {
		if res.Data[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, res.Data[i].ID, want)
		}
	}
}

func TestCalendarMockFallbackWithoutKey(t *testing.T) {
	agg := newCalendarAggregator(&fakeCalendar{configured: false})

	from := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	res, err := agg.Get(context.Background(), from, from.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.Degraded {
		t.Fatal("mock fallback must be degraded")
	}
	// Week-sized range serves the first 8 pool entries.
	if len(res.Data) != 8 {
		t.Fatalf("expected 8 mock events for a week, got %d", len(res.Data))
	}
	for _, e := range res.Data {
		if e.Datetime.Before(from) || e.Datetime.After(from.AddDate(0, 0, 7)) {
			t.Fatalf("mock event outside range: %v", e.Datetime)
		}
		if e.Country != "US" {
			t.Fatalf("mock events must be US, got %q", e.Country)
		}
	}
}

func TestCalendarMockFallbackMonthSizes(t *testing.T) {
	agg := newCalendarAggregator(&fakeCalendar{configured: false})

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	res, err := agg.Get(context.Background(), from, from.AddDate(0, 0, 27))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Data) != 15 {
		t.Fatalf("expected 15 mock events for a month, got %d", len(res.Data))
	}
}

func TestCalendarProviderErrorFallsBackToMock(t *testing.T) {
	src := &fakeCalendar{configured: true, err: errors.New("upstream 502")}
	agg := newCalendarAggregator(src)

	from := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	res, err := agg.Get(context.Background(), from, from.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("provider failure must degrade, not fail: %v", err)
	}
	if !res.Degraded || len(res.Data) == 0 {
		t.Fatalf("expected degraded mock data, got %+v", res)
	}
}

func TestCalendarCachesPerRange(t *testing.T) {
	src := &fakeCalendar{configured: true, events: []models.EconomicEvent{{ID: "e1"}}}
	agg := newCalendarAggregator(src)

	from := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	if _, err := agg.Get(context.Background(), from, to); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := agg.Get(context.Background(), from, to); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("same range must be served from cache, got %d calls", src.calls)
	}

	// A different range is a different cache entry.
	if _, err := agg.Get(context.Background(), from, from.AddDate(0, 0, 27)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("new range must fetch, got %d calls", src.calls)
	}
}
