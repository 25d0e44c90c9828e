package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

func newNewsAggregator(market, crypto *fakeNews) *NewsAggregator {
	return NewNewsAggregator(market, crypto, cache.NewMemoryStore(), nopMetrics{}, logger.Nop(), 15*time.Minute)
}

func item(id, headline string, age time.Duration) models.NewsItem {
	return models.NewsItem{
		ID:          id,
		Headline:    headline,
		PublishedAt: time.Date(2026, 2, 18, 12, 0, 0, 0, time.UTC).Add(-age),
	}
}

func TestNewsMergeSortsNewestFirst(t *testing.T) {
	market := &fakeNews{configured: true, items: []models.NewsItem{
		item("f1", "Fed holds rates", 2*time.Hour),
		item("f2", "Stocks rally", 4*time.Hour),
	}}
	crypto := &fakeNews{configured: true, items: []models.NewsItem{
		item("c1", "Bitcoin jumps", time.Hour),
	}}

	res, err := newNewsAggregator(market, crypto).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Degraded {
		t.Fatal("two healthy sources must not be degraded")
	}

	ids := make([]string, 0, len(res.Data))
	for _, n := range res.Data {
		ids = append(ids, n.ID)
	}
	if strings.Join(ids, ",") != "c1,f1,f2" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestNewsDedupeKeepsNewest(t *testing.T) {
	market := &fakeNews{configured: true, items: []models.NewsItem{
		item("f1", "Bitcoin Surges Past $100K", 3*time.Hour),
	}}
	crypto := &fakeNews{configured: true, items: []models.NewsItem{
		item("c1", "  bitcoin surges past $100k ", time.Hour),
	}}

	res, err := newNewsAggregator(market, crypto).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Data) != 1 {
		t.Fatalf("expected headline dedupe, got %d items", len(res.Data))
	}
	if res.Data[0].ID != "c1" {
		t.Fatalf("dedupe must keep the newest item, kept %s", res.Data[0].ID)
	}
}

func TestNewsOneSourceFailing(t *testing.T) {
	market := &fakeNews{configured: true, items: []models.NewsItem{
		item("f1", "Fed holds rates", time.Hour),
	}}
	crypto := &fakeNews{configured: true, err: errors.New("upstream down")}

	res, err := newNewsAggregator(market, crypto).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded {
		t.Fatal("failed source must degrade the result")
	}
	if len(res.Data) != 1 || res.Data[0].ID != "f1" {
		t.Fatalf("surviving source must be served, got %+v", res.Data)
	}
}

func TestNewsMockWhenEmpty(t *testing.T) {
	res, err := newNewsAggregator(&fakeNews{}, &fakeNews{}).Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded {
		t.Fatal("mock feed must be degraded")
	}
	if len(res.Data) != 5 {
		t.Fatalf("expected 5 sample items, got %d", len(res.Data))
	}
	for _, n := range res.Data {
		if !strings.HasPrefix(n.Headline, "[샘플]") {
			t.Fatalf("sample headline missing marker: %q", n.Headline)
		}
	}
}
