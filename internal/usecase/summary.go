package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/service"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
	"github.com/MatthewLee0811/InvestPulse/pkg/util"
)

const summaryCacheKey = "summary"

// SummaryAggregator composes the Korean market recap from the markets,
// calendar, and sentiment aggregators. Each input is best effort; a failed
// input just leaves its section of the recap empty.
type SummaryAggregator struct {
	markets   *MarketAggregator
	calendar  *CalendarAggregator
	sentiment *SentimentAggregator
	store     cache.Store
	log       *logger.Logger
	ttl       time.Duration
	now       func() time.Time
}

func NewSummaryAggregator(
	markets *MarketAggregator,
	calendar *CalendarAggregator,
	sentiment *SentimentAggregator,
	store cache.Store,
	log *logger.Logger,
	ttl time.Duration,
) *SummaryAggregator {
	return &SummaryAggregator{
		markets:   markets,
		calendar:  calendar,
		sentiment: sentiment,
		store:     store,
		log:       log,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Get returns the generated recap, serving the cache while fresh.
func (a *SummaryAggregator) Get(ctx context.Context) (models.MarketSummary, error) {
	var cached models.MarketSummary
	if a.store.Get(ctx, summaryCacheKey, a.ttl, &cached) {
		return cached, nil
	}

	now := a.now()
	from := util.StartOfWeek(now.UTC())
	to := util.EndOfWeek(now.UTC())

	var (
		wg        sync.WaitGroup
		markets   []models.AssetQuote
		events    []models.EconomicEvent
		sentiment *models.SentimentReading
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		if res, err := a.markets.Get(ctx); err == nil {
			markets = res.Data
		} else {
			a.log.Warn("summary: markets input unavailable", logger.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if res, err := a.calendar.Get(ctx, from, to); err == nil {
			events = res.Data
		} else {
			a.log.Warn("summary: calendar input unavailable", logger.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if reading, err := a.sentiment.Get(ctx); err == nil {
			sentiment = &reading
		} else {
			a.log.Warn("summary: sentiment input unavailable", logger.Error(err))
		}
	}()
	wg.Wait()

	summary := service.GenerateSummary(markets, events, sentiment, now)
	a.store.Set(ctx, summaryCacheKey, summary)
	return summary, nil
}

// Stale returns the last cached recap regardless of age.
func (a *SummaryAggregator) Stale(ctx context.Context) (models.MarketSummary, bool) {
	var cached models.MarketSummary
	if a.store.GetStale(ctx, summaryCacheKey, &cached) {
		return cached, true
	}
	return models.MarketSummary{}, false
}
