package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

func healthyQuoter() *fakeQuoter {
	quotes := make(map[string]repository.Quote)
	for _, asset := range models.Assets {
		if asset.QuoteSymbol == "" {
			continue
		}
		quotes[asset.QuoteSymbol] = repository.Quote{Price: 100, Change: 1, ChangePercent: 1}
	}
	return &fakeQuoter{
		quotes: quotes,
		closes: map[string][]float64{"GC=F": {2900, 2910, 2920}},
	}
}

func newMarketAggregator(q *fakeQuoter, c *fakeCrypto, s *fakeSpot) *MarketAggregator {
	return NewMarketAggregator(q, c, s, cache.NewMemoryStore(), nopMetrics{}, logger.Nop(), 5*time.Minute)
}

func TestMarketsCatalogOrderAndCompleteness(t *testing.T) {
	agg := newMarketAggregator(healthyQuoter(), &fakeCrypto{
		markets:   map[string]repository.CryptoQuote{"BTC": {Price: ptr(97000.0)}},
		dominance: repository.Dominance{BTC: 56.2, USDT: 4.8},
	}, &fakeSpot{usdtKrw: 1460, coinbase: 97100, binance: 97000})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Data) != len(models.Assets) {
		t.Fatalf("expected %d assets, got %d", len(models.Assets), len(res.Data))
	}
	for i, asset := range models.Assets {
		if res.Data[i].Symbol != asset.Symbol {
			t.Fatalf("position %d: expected %s, got %s", i, asset.Symbol, res.Data[i].Symbol)
		}
	}
}

func TestMarketsDerivedSymbols(t *testing.T) {
	quoter := healthyQuoter()
	quoter.quotes["KRW=X"] = repository.Quote{Price: 1430}
	quoter.quotes["BTC-USD"] = repository.Quote{Price: 96000, Change: 1000}
	quoter.quotes["ETH-USD"] = repository.Quote{Price: 3200, Change: 50}

	agg := newMarketAggregator(quoter, &fakeCrypto{
		markets:   map[string]repository.CryptoQuote{},
		dominance: repository.Dominance{BTC: 56.2, USDT: 4.8},
	}, &fakeSpot{usdtKrw: 1460, coinbase: 97100, binance: 97000})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[string]models.AssetQuote)
	for _, q := range res.Data {
		got[q.Symbol] = q
	}

	if got["BTC.D"].Price != 56.2 || got["USDT.D"].Price != 4.8 {
		t.Fatalf("dominance not applied: %+v %+v", got["BTC.D"], got["USDT.D"])
	}

	// (1460/1430 - 1) * 100
	kimp := got["KIMP"].Price
	if kimp < 2.09 || kimp > 2.10 {
		t.Fatalf("kimchi premium = %v, want ~2.097", kimp)
	}

	// (97100/97000 - 1) * 100
	cbp := got["CBP"].Price
	if cbp < 0.10 || cbp > 0.11 {
		t.Fatalf("coinbase premium = %v, want ~0.103", cbp)
	}

	ratio := got["ETHBTC"].Price
	want := 3200.0 / 96000.0
	if ratio < want-1e-9 || ratio > want+1e-9 {
		t.Fatalf("eth/btc ratio = %v, want %v", ratio, want)
	}
}

func TestMarketsPremiumAbsentWhenLegFails(t *testing.T) {
	quoter := healthyQuoter()
	delete(quoter.quotes, "KRW=X") // no USD/KRW, so no kimchi premium

	agg := newMarketAggregator(quoter, &fakeCrypto{
		markets:   map[string]repository.CryptoQuote{},
		dominance: repository.Dominance{BTC: 56.2},
	}, &fakeSpot{usdtKrw: 1460, coinbase: 97100, binance: 97000})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Degraded {
		t.Fatal("expected degraded result")
	}

	for _, q := range res.Data {
		if q.Symbol == "KIMP" && q.Price != 0 {
			t.Fatalf("premium with a missing leg must stay at placeholder, got %v", q.Price)
		}
	}
}

func TestMarketsSymbolFailureIsolated(t *testing.T) {
	quoter := healthyQuoter()
	delete(quoter.quotes, "^GSPC") // SPX fails, rest of the board survives

	agg := newMarketAggregator(quoter, &fakeCrypto{
		markets: map[string]repository.CryptoQuote{},
	}, &fakeSpot{fail: true})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var spx, ndx models.AssetQuote
	for _, q := range res.Data {
		switch q.Symbol {
		case "SPX":
			spx = q
		case "NDX":
			ndx = q
		}
	}
	if spx.Price != 0 {
		t.Fatalf("failed symbol must be a placeholder, got price %v", spx.Price)
	}
	if spx.Name != "S&P 500" || spx.NameKo != "S&P 500" {
		t.Fatalf("placeholder must keep catalog names, got %+v", spx)
	}
	if ndx.Price != 100 {
		t.Fatalf("healthy symbol must survive, got %+v", ndx)
	}
	if !res.Degraded {
		t.Fatal("expected degraded result")
	}
}

func TestMarketsCryptoOverlayPartialFields(t *testing.T) {
	quoter := healthyQuoter()
	quoter.quotes["BTC-USD"] = repository.Quote{Price: 96000, Change: 500, ChangePercent: 0.5}

	// Provider returns only a price; change fields must survive from phase 1.
	agg := newMarketAggregator(quoter, &fakeCrypto{
		markets: map[string]repository.CryptoQuote{
			"BTC": {Price: ptr(97000.0), Sparkline: []float64{1, 2, 3}},
		},
	}, &fakeSpot{fail: true})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range res.Data {
		if q.Symbol != "BTC" {
			continue
		}
		if q.Price != 97000 {
			t.Fatalf("overlay price = %v, want 97000", q.Price)
		}
		if q.Change != 500 || q.ChangePercent != 0.5 {
			t.Fatalf("absent overlay fields must not clobber, got %+v", q)
		}
		if len(q.Sparkline) != 3 {
			t.Fatalf("crypto sparkline not applied: %+v", q.Sparkline)
		}
		return
	}
	t.Fatal("BTC not in result")
}

func TestMarketsSparklineBackfill(t *testing.T) {
	agg := newMarketAggregator(healthyQuoter(), &fakeCrypto{
		markets: map[string]repository.CryptoQuote{},
	}, &fakeSpot{fail: true})

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range res.Data {
		if q.Symbol == "GOLD" {
			if len(q.Sparkline) != 3 {
				t.Fatalf("expected gold sparkline backfill, got %+v", q.Sparkline)
			}
			return
		}
	}
	t.Fatal("GOLD not in result")
}

func TestMarketsCacheHitSkipsProviders(t *testing.T) {
	quoter := healthyQuoter()
	agg := newMarketAggregator(quoter, &fakeCrypto{
		markets: map[string]repository.CryptoQuote{},
	}, &fakeSpot{fail: true})

	if _, err := agg.Get(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := quoter.callCount()

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quoter.callCount() != calls {
		t.Fatalf("second call within TTL must not hit providers (%d -> %d)", calls, quoter.callCount())
	}
	if len(res.Data) != len(models.Assets) {
		t.Fatalf("cached board incomplete: %d", len(res.Data))
	}
}

func TestMarketsTotalFailureServesPlaceholders(t *testing.T) {
	agg := newMarketAggregator(
		&fakeQuoter{quotes: map[string]repository.Quote{}},
		&fakeCrypto{failAll: true},
		&fakeSpot{fail: true},
	)

	res, err := agg.Get(context.Background())
	if err != nil {
		t.Fatalf("total provider failure must still serve the board: %v", err)
	}
	if len(res.Data) != len(models.Assets) {
		t.Fatalf("expected %d placeholders, got %d", len(models.Assets), len(res.Data))
	}
	for _, q := range res.Data {
		if q.Price != 0 || q.Change != 0 {
			t.Fatalf("expected zeroed placeholder, got %+v", q)
		}
	}
	if !res.Degraded {
		t.Fatal("expected degraded result")
	}

	// The zeroed board must not be cached as a fresh result.
	if _, ok := agg.Stale(context.Background()); ok {
		t.Fatal("placeholder board must not populate the cache")
	}
}
