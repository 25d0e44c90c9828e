package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

const sentimentCacheKey = "fear-greed"

// SentimentAggregator serves the fear & greed reading. Unlike the other
// aggregators there is no synthetic fallback: a fabricated sentiment value
// would be misleading, so a provider failure is a hard error and the caller
// falls back to stale cache.
type SentimentAggregator struct {
	source  repository.SentimentIndex
	store   cache.Store
	metrics repository.Metrics
	log     *logger.Logger
	ttl     time.Duration
}

func NewSentimentAggregator(
	source repository.SentimentIndex,
	store cache.Store,
	metrics repository.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *SentimentAggregator {
	return &SentimentAggregator{
		source:  source,
		store:   store,
		metrics: metrics,
		log:     log,
		ttl:     ttl,
	}
}

// Get returns the current reading, serving the cache while fresh.
func (a *SentimentAggregator) Get(ctx context.Context) (models.SentimentReading, error) {
	var cached models.SentimentReading
	if a.store.Get(ctx, sentimentCacheKey, a.ttl, &cached) {
		a.metrics.RecordCacheRead("sentiment", "hit")
		return cached, nil
	}
	a.metrics.RecordCacheRead("sentiment", "miss")

	reading, err := a.source.Fetch(ctx)
	if err != nil {
		a.metrics.RecordFetch("alternative", "error")
		a.log.Warn("sentiment fetch failed", logger.Error(err))
		return models.SentimentReading{}, fmt.Errorf("sentiment: %w", err)
	}
	a.metrics.RecordFetch("alternative", "success")

	a.store.Set(ctx, sentimentCacheKey, reading)
	return reading, nil
}

// Stale returns the last cached reading regardless of age.
func (a *SentimentAggregator) Stale(ctx context.Context) (models.SentimentReading, bool) {
	var cached models.SentimentReading
	if a.store.GetStale(ctx, sentimentCacheKey, &cached) {
		a.metrics.RecordCacheRead("sentiment", "stale")
		return cached, true
	}
	return models.SentimentReading{}, false
}
