package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

const newsCacheKey = "news"

// NewsAggregator merges the general market feed with the crypto feed,
// newest first, deduplicated by headline. When neither source yields
// anything the sample feed keeps the panel populated.
type NewsAggregator struct {
	market  repository.NewsSource
	crypto  repository.NewsSource
	store   cache.Store
	metrics repository.Metrics
	log     *logger.Logger
	ttl     time.Duration
	now     func() time.Time
}

func NewNewsAggregator(
	market repository.NewsSource,
	crypto repository.NewsSource,
	store cache.Store,
	metrics repository.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *NewsAggregator {
	return &NewsAggregator{
		market:  market,
		crypto:  crypto,
		store:   store,
		metrics: metrics,
		log:     log,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the merged news feed, serving the cache while fresh.
func (a *NewsAggregator) Get(ctx context.Context) (repository.Result[[]models.NewsItem], error) {
	var cached []models.NewsItem
	if a.store.Get(ctx, newsCacheKey, a.ttl, &cached) {
		a.metrics.RecordCacheRead("news", "hit")
		return repository.OK(cached), nil
	}
	a.metrics.RecordCacheRead("news", "miss")

	items, reasons := a.fetchAll(ctx)
	a.store.Set(ctx, newsCacheKey, items)
	return repository.Degraded(items, reasons...), nil
}

// Stale returns the last cached feed regardless of age.
func (a *NewsAggregator) Stale(ctx context.Context) ([]models.NewsItem, bool) {
	var cached []models.NewsItem
	if a.store.GetStale(ctx, newsCacheKey, &cached) {
		a.metrics.RecordCacheRead("news", "stale")
		return cached, true
	}
	return nil, false
}

func (a *NewsAggregator) fetchAll(ctx context.Context) ([]models.NewsItem, []string) {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		all     []models.NewsItem
		reasons []string
	)

	fetch := func(name string, src repository.NewsSource) {
		defer wg.Done()
		if !src.Configured() {
			mu.Lock()
			reasons = append(reasons, name+":unconfigured")
			mu.Unlock()
			return
		}
		items, err := src.News(ctx)
		if err != nil {
			a.metrics.RecordFetch(name, "error")
			a.log.Warn("news fetch failed", logger.String("source", name), logger.Error(err))
			mu.Lock()
			reasons = append(reasons, name+":failed")
			mu.Unlock()
			return
		}
		a.metrics.RecordFetch(name, "success")
		mu.Lock()
		all = append(all, items...)
		mu.Unlock()
	}

	wg.Add(2)
	go fetch("finnhub", a.market)
	go fetch("cryptopanic", a.crypto)
	wg.Wait()

	if len(all) == 0 {
		return mockNews(a.now()), append(reasons, "news:fallback")
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})
	return dedupeByHeadline(all), reasons
}

// dedupeByHeadline keeps the first (newest) item per normalized headline.
func dedupeByHeadline(items []models.NewsItem) []models.NewsItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Headline))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// mockNews is the sample feed served when no source produced anything.
func mockNews(now time.Time) []models.NewsItem {
	const sampleSummary = "FINNHUB_API_KEY를 설정하면 실제 뉴스 기사와 링크가 표시됩니다."
	const sampleURL = "https://finnhub.io/register"

	samples := []struct {
		headline string
		category models.NewsCategory
		ageHours int
	}{
		{"[샘플] Fed Signals Potential Rate Cut in Coming Months", models.NewsFedPolicy, 1},
		{"[샘플] S&P 500 Hits New All-Time High Amid Tech Rally", models.NewsMarket, 2},
		{"[샘플] Bitcoin Surges Past $100K on Institutional Demand", models.NewsCrypto, 3},
		{"[샘플] Gold Prices Rise as Dollar Weakens", models.NewsCommodity, 5},
		{"[샘플] US GDP Growth Exceeds Expectations at 3.2%", models.NewsEconomy, 8},
	}

	items := make([]models.NewsItem, 0, len(samples))
	for i, s := range samples {
		items = append(items, models.NewsItem{
			ID:          fmt.Sprintf("mock-%d", i+1),
			Headline:    s.headline,
			Summary:     sampleSummary,
			Source:      "Mock",
			URL:         sampleURL,
			PublishedAt: now.Add(-time.Duration(s.ageHours) * time.Hour),
			Category:    s.category,
		})
	}
	return items
}
