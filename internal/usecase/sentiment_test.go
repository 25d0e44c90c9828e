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

func newSentimentAggregator(src *fakeSentiment) *SentimentAggregator {
	return NewSentimentAggregator(src, cache.NewMemoryStore(), nopMetrics{}, logger.Nop(), time.Hour)
}

func TestSentimentFetchAndCache(t *testing.T) {
	prev := 48
	src := &fakeSentiment{reading: models.SentimentReading{
		Value: 62, Label: "Greed", LabelKo: "탐욕", PreviousValue: &prev,
	}}
	agg := newSentimentAggregator(src)

	got, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Value != 62 || got.LabelKo != "탐욕" {
		t.Fatalf("unexpected reading %+v", got)
	}

	if _, err := agg.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.calls != 1 {
		t.Fatalf("second call within TTL must hit cache, got %d calls", src.calls)
	}
}

func TestSentimentHardFailure(t *testing.T) {
	agg := newSentimentAggregator(&fakeSentiment{err: errors.New("empty data")})

	if _, err := agg.Get(context.Background()); err == nil {
		t.Fatal("expected hard error, sentiment has no synthetic fallback")
	}
	if _, ok := agg.Stale(context.Background()); ok {
		t.Fatal("failed fetch must not populate the cache")
	}
}

func TestSentimentStaleAfterExpiry(t *testing.T) {
	src := &fakeSentiment{reading: models.SentimentReading{Value: 40}}
	agg := newSentimentAggregator(src)

	if _, err := agg.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Provider breaks after the first success; stale must still serve.
	src.err = errors.New("down")
	agg.ttl = -time.Second

	if _, err := agg.Get(context.Background()); err == nil {
		t.Fatal("expected error once TTL elapsed and provider is down")
	}
	stale, ok := agg.Stale(context.Background())
	if !ok || stale.Value != 40 {
		t.Fatalf("expected stale reading 40, got %+v ok=%v", stale, ok)
	}
}
