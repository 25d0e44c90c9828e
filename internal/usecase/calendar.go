package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

// CalendarAggregator serves the US economic calendar per dashboard tab.
// With no provider key, or on provider failure, a synthetic schedule spread
// over the requested range keeps the calendar populated.
type CalendarAggregator struct {
	source  repository.EconomicCalendar
	store   cache.Store
	metrics repository.Metrics
	log     *logger.Logger
	ttl     time.Duration
	now     func() time.Time
}

func NewCalendarAggregator(
	source repository.EconomicCalendar,
	store cache.Store,
	metrics repository.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *CalendarAggregator {
	return &CalendarAggregator{
		source:  source,
		store:   store,
		metrics: metrics,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
	}
}

// RangeFor resolves a tab to its date range. Weeks start on Monday.
func (a *CalendarAggregator) RangeFor(tab models.CalendarTab) (time.Time, time.Time, error) {
	now := a.now().UTC()
	switch tab {
	case models.TabThisWeek:
		return util.StartOfWeek(now), util.EndOfWeek(now), nil
	case models.TabThisMonth:
		return util.StartOfMonth(now), util.EndOfMonth(now), nil
	case models.TabNextMonth:
		next := util.NextMonth(now)
		return next, util.EndOfMonth(next), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown calendar tab %q", tab)
	}
}

// Get returns events for the date range, cached per range.
func (a *CalendarAggregator) Get(ctx context.Context, from, to time.Time) (repository.Result[[]models.EconomicEvent], error) {
	key := cacheKeyFor(from, to)

	var cached []models.EconomicEvent
	if a.store.Get(ctx, key, a.ttl, &cached) {
		a.metrics.RecordCacheRead("calendar", "hit")
		return repository.OK(cached), nil
	}
	a.metrics.RecordCacheRead("calendar", "miss")

	events, reasons := a.fetch(ctx, from, to)
	sortEvents(events)

	a.store.Set(ctx, key, events)
	return repository.Degraded(events, reasons...), nil
}

// Stale returns the last cached range regardless of age.
func (a *CalendarAggregator) Stale(ctx context.Context, from, to time.Time) ([]models.EconomicEvent, bool) {
	var cached []models.EconomicEvent
	if a.store.GetStale(ctx, cacheKeyFor(from, to), &cached) {
		a.metrics.RecordCacheRead("calendar", "stale")
		return cached, true
	}
	return nil, false
}

func (a *CalendarAggregator) fetch(ctx context.Context, from, to time.Time) ([]models.EconomicEvent, []string) {
	if !a.source.Configured() {
		return mockEvents(from, to), []string{"calendar:unconfigured"}
	}

	events, err := a.source.Events(ctx, from, to)
	if err != nil {
		a.metrics.RecordFetch("finnhub", "error")
		a.log.Warn("calendar fetch failed, serving mock schedule", logger.Error(err))
		return mockEvents(from, to), []string{"calendar:fallback"}
	}
	a.metrics.RecordFetch("finnhub", "success")
	return events, nil
}

func cacheKeyFor(from, to time.Time) string {
	return fmt.Sprintf("calendar-%s-%s", util.FormatDate(from), util.FormatDate(to))
}

// sortEvents orders by time ascending, then impact (high first) on ties.
func sortEvents(events []models.EconomicEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Datetime.Equal(events[j].Datetime) {
			return events[i].Datetime.Before(events[j].Datetime)
		}
		return events[i].Impact.Rank() < events[j].Impact.Rank()
	})
}

type mockEvent struct {
	name     string
	nameKo   string
	impact   models.Impact
	actual   string
	forecast string
	previous string
}

// mockEventPool is the synthetic schedule used without a calendar provider.
var mockEventPool = []mockEvent{
	{name: "ISM Manufacturing PMI", nameKo: "ISM 제조업 PMI", impact: models.ImpactHigh, actual: "49.2", forecast: "49.5", previous: "49.3"},
	{name: "JOLTS Job Openings", nameKo: "구인건수(JOLTS)", impact: models.ImpactMedium, forecast: "8.85M", previous: "8.79M"},
	{name: "ADP Nonfarm Employment", nameKo: "ADP 비농업 고용", impact: models.ImpactMedium, forecast: "150K", previous: "143K"},
	{name: "ISM Services PMI", nameKo: "ISM 서비스업 PMI", impact: models.ImpactHigh, forecast: "53.0", previous: "52.8"},
	{name: "Non-Farm Payrolls", nameKo: "비농업 고용지수", impact: models.ImpactHigh, forecast: "170K", previous: "256K"},
	{name: "Unemployment Rate", nameKo: "실업률", impact: models.ImpactHigh, forecast: "4.1%", previous: "4.1%"},
	{name: "Consumer Price Index (CPI)", nameKo: "소비자물가지수", impact: models.ImpactHigh, forecast: "3.1%", previous: "3.2%"},
	{name: "Core CPI MoM", nameKo: "근원 소비자물가(MoM)", impact: models.ImpactHigh, forecast: "0.3%", previous: "0.2%"},
	{name: "Initial Jobless Claims", nameKo: "신규 실업수당 청구건수", impact: models.ImpactMedium, forecast: "215K", previous: "218K"},
	{name: "Producer Price Index (PPI)", nameKo: "생산자물가지수", impact: models.ImpactHigh, forecast: "0.2%", previous: "0.2%"},
	{name: "Retail Sales MoM", nameKo: "소매판매", impact: models.ImpactMedium, forecast: "0.3%", previous: "0.4%"},
	{name: "FOMC Rate Decision", nameKo: "FOMC 금리 결정", impact: models.ImpactHigh, forecast: "4.50%", previous: "4.50%"},
	{name: "FOMC Minutes", nameKo: "FOMC 의사록", impact: models.ImpactHigh, previous: "-"},
	{name: "GDP Growth Rate QoQ", nameKo: "GDP 성장률", impact: models.ImpactHigh, forecast: "3.2%", previous: "3.1%"},
	{name: "Core PCE Price Index", nameKo: "핵심 개인소비지출", impact: models.ImpactHigh, forecast: "2.8%", previous: "2.8%"},
	{name: "CB Consumer Confidence", nameKo: "소비자 신뢰지수", impact: models.ImpactMedium, forecast: "105.0", previous: "104.1"},
	{name: "Michigan Consumer Sentiment", nameKo: "미시간 소비자심리지수", impact: models.ImpactMedium, forecast: "71.7", previous: "71.1"},
	{name: "Durable Goods Orders", nameKo: "내구재 주문", impact: models.ImpactMedium, forecast: "-0.5%", previous: "-2.0%"},
	{name: "Existing Home Sales", nameKo: "기존 주택 판매", impact: models.ImpactLow, forecast: "4.20M", previous: "4.24M"},
	{name: "Fed Chair Speech", nameKo: "연준 의장 연설", impact: models.ImpactHigh, previous: "-"},
}

var mockEventTimes = []string{"13:30", "14:00", "15:00", "15:45", "19:00", "21:00"}

// mockEvents spreads a slice of the pool evenly over the requested range.
// Short ranges get fewer events so a week does not look like a month.
func mockEvents(from, to time.Time) []models.EconomicEvent {
	totalDays := int(math.Round(to.Sub(from).Hours() / 24))
	if totalDays < 1 {
		totalDays = 1
	}

	pool := mockEventPool
	switch {
	case totalDays <= 7:
		pool = pool[:8]
	case totalDays <= 31:
		pool = pool[:15]
	}

	fromKey := util.FormatDate(from)
	events := make([]models.EconomicEvent, 0, len(pool))
	for idx, e := range pool {
		dayOffset := int(math.Round(float64(idx) / float64(len(pool)) * float64(totalDays)))
		day := from.AddDate(0, 0, dayOffset)
		hhmm := mockEventTimes[idx%len(mockEventTimes)]

		var h, m int
		fmt.Sscanf(hhmm, "%d:%d", &h, &m)
		events = append(events, models.EconomicEvent{
			ID:       fmt.Sprintf("mock-%s-%d", fromKey, idx),
			Name:     e.name,
			NameKo:   e.nameKo,
			Datetime: time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.UTC),
			Country:  "US",
			Impact:   e.impact,
			Actual:   e.actual,
			Forecast: e.forecast,
			Previous: e.previous,
		})
	}
	return events
}
