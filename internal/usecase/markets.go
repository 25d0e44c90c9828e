package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/internal/service/ratelimit"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/logger"
)

const (
	marketsCacheKey = "markets"
	sparklineDays   = 30
)

// MarketAggregator assembles the full asset board from the quote provider,
// the crypto market-data provider, and the spot exchanges. Provider failures
// degrade individual symbols; even a total outage still yields one entry per
// catalog symbol so the dashboard keeps its layout.
type MarketAggregator struct {
	quoter  repository.MarketQuoter
	crypto  repository.CryptoMarkets
	spot    repository.SpotRates
	store   cache.Store
	metrics repository.Metrics
	log     *logger.Logger
	limiter *ratelimit.Limiter
	ttl     time.Duration
	now     func() time.Time
}

func NewMarketAggregator(
	quoter repository.MarketQuoter,
	crypto repository.CryptoMarkets,
	spot repository.SpotRates,
	store cache.Store,
	metrics repository.Metrics,
	log *logger.Logger,
	ttl time.Duration,
) *MarketAggregator {
	return &MarketAggregator{
		quoter:  quoter,
		crypto:  crypto,
		spot:    spot,
		store:   store,
		metrics: metrics,
		log:     log,
		limiter: ratelimit.New(nil),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the asset board, serving the cache while fresh. Results are
// always in catalog order with one entry per configured symbol.
func (a *MarketAggregator) Get(ctx context.Context) (repository.Result[[]models.AssetQuote], error) {
	var cached []models.AssetQuote
	if a.store.Get(ctx, marketsCacheKey, a.ttl, &cached) {
		a.metrics.RecordCacheRead("markets", "hit")
		return repository.OK(cached), nil
	}
	a.metrics.RecordCacheRead("markets", "miss")

	started := a.now()
	quotes, reasons := a.fetchAll(ctx)
	a.metrics.RecordLatency("aggregate_markets", a.now().Sub(started).Seconds())

	// A fully zeroed board is still served, but stays out of the cache so
	// stale reads keep the last real data.
	if !allPlaceholders(quotes) {
		a.store.Set(ctx, marketsCacheKey, quotes)
		for _, q := range quotes {
			if q.Price != 0 {
				a.metrics.RecordLastPrice(q.Symbol, q.Price)
			}
		}
	}
	return repository.Degraded(quotes, reasons...), nil
}

// Stale returns the last cached board regardless of age.
func (a *MarketAggregator) Stale(ctx context.Context) ([]models.AssetQuote, bool) {
	var cached []models.AssetQuote
	if a.store.GetStale(ctx, marketsCacheKey, &cached) {
		a.metrics.RecordCacheRead("markets", "stale")
		return cached, true
	}
	return nil, false
}

// fetchAll runs the two-phase fan-out and merges every contribution into
// catalog order.
func (a *MarketAggregator) fetchAll(ctx context.Context) ([]models.AssetQuote, []string) {
	now := a.now()

	var (
		mu         sync.Mutex
		bySymbol   = make(map[string]models.AssetQuote)
		cryptoData map[string]repository.CryptoQuote
		dominance  *repository.Dominance
		sparklines = make(map[string][]float64)
		reasons    []string
	)
	degrade := func(reason string) {
		mu.Lock()
		reasons = append(reasons, reason)
		mu.Unlock()
	}

	// Phase 1: independent fetches in parallel. Per-symbol quote failures
	// are isolated so one bad ticker cannot sink the board.
	var wg sync.WaitGroup
	for _, asset := range models.Assets {
		if asset.QuoteSymbol == "" {
			continue
		}
		wg.Add(1)
		go func(asset models.AssetConfig) {
			defer wg.Done()
			if !a.limiter.Allow("yahoo") {
				a.metrics.RecordFetch("yahoo", "throttled")
				degrade("quote:" + asset.Symbol)
				return
			}
			q, err := a.quoter.Quote(ctx, asset.QuoteSymbol)
			if err != nil {
				a.metrics.RecordFetch("yahoo", "error")
				a.log.Warn("quote fetch failed",
					logger.String("symbol", asset.Symbol), logger.Error(err))
				degrade("quote:" + asset.Symbol)
				return
			}
			a.metrics.RecordFetch("yahoo", "success")
			mu.Lock()
			bySymbol[asset.Symbol] = models.AssetQuote{
				Symbol:        asset.Symbol,
				Name:          asset.Name,
				NameKo:        asset.NameKo,
				Category:      asset.Category,
				Price:         q.Price,
				Change:        q.Change,
				ChangePercent: q.ChangePercent,
				Sparkline:     []float64{},
				UpdatedAt:     now,
			}
			mu.Unlock()
		}(asset)

		if asset.Category == models.CategoryCrypto {
			continue
		}
		wg.Add(1)
		go func(asset models.AssetConfig) {
			defer wg.Done()
			if !a.limiter.Allow("yahoo") {
				a.metrics.RecordFetch("yahoo", "throttled")
				return
			}
			closes, err := a.quoter.DailyCloses(ctx, asset.QuoteSymbol, sparklineDays)
			if err != nil || len(closes) == 0 {
				// Sparkline gaps are cosmetic, not a degradation.
				return
			}
			mu.Lock()
			sparklines[asset.Symbol] = closes
			mu.Unlock()
		}(asset)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if !a.limiter.Allow("coingecko") {
			a.metrics.RecordFetch("coingecko", "throttled")
			degrade("crypto")
			return
		}
		data, err := a.crypto.Markets(ctx)
		if err != nil {
			a.metrics.RecordFetch("coingecko", "error")
			a.log.Warn("crypto markets fetch failed", logger.Error(err))
			degrade("crypto")
			return
		}
		a.metrics.RecordFetch("coingecko", "success")
		mu.Lock()
		cryptoData = data
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		if !a.limiter.Allow("coingecko") {
			a.metrics.RecordFetch("coingecko", "throttled")
			degrade("dominance")
			return
		}
		dom, err := a.crypto.GlobalDominance(ctx)
		if err != nil {
			a.metrics.RecordFetch("coingecko", "error")
			a.log.Warn("dominance fetch failed", logger.Error(err))
			degrade("dominance")
			return
		}
		a.metrics.RecordFetch("coingecko", "success")
		mu.Lock()
		dominance = &dom
		mu.Unlock()
	}()
	wg.Wait()

	// Dominance overlays before premiums so output precedence is stable.
	if dominance != nil {
		bySymbol["BTC.D"] = derivedQuote("BTC.D", dominance.BTC, now)
		bySymbol["USDT.D"] = derivedQuote("USDT.D", dominance.USDT, now)
	}

	// Phase 2: premiums need the phase-1 USDKRW rate.
	usdKrw := bySymbol["USDKRW"].Price
	var pwg sync.WaitGroup
	pwg.Add(2)
	go func() {
		defer pwg.Done()
		premium, err := a.kimchiPremium(ctx, usdKrw)
		if err != nil {
			a.log.Warn("kimchi premium failed", logger.Error(err))
			degrade("kimp")
			return
		}
		mu.Lock()
		bySymbol["KIMP"] = derivedQuote("KIMP", premium, now)
		mu.Unlock()
	}()
	go func() {
		defer pwg.Done()
		premium, err := a.coinbasePremium(ctx)
		if err != nil {
			a.log.Warn("coinbase premium failed", logger.Error(err))
			degrade("cbp")
			return
		}
		mu.Lock()
		bySymbol["CBP"] = derivedQuote("CBP", premium, now)
		mu.Unlock()
	}()
	pwg.Wait()

	// Crypto overlay: only fields the provider actually returned replace
	// the quote-provider values, and only for symbols already present.
	for symbol, info := range cryptoData {
		existing, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		if info.Price != nil {
			existing.Price = *info.Price
		}
		if info.Change != nil {
			existing.Change = *info.Change
		}
		if info.ChangePercent != nil {
			existing.ChangePercent = *info.ChangePercent
		}
		if len(info.Sparkline) > 0 {
			existing.Sparkline = info.Sparkline
		}
		bySymbol[symbol] = existing
	}

	if ratio, ok := ethBtcRatio(bySymbol); ok {
		bySymbol["ETHBTC"] = ratio
	}

	// Sparkline backfill for non-crypto symbols.
	for symbol, closes := range sparklines {
		existing, ok := bySymbol[symbol]
		if !ok {
			continue
		}
		existing.Sparkline = closes
		bySymbol[symbol] = existing
	}

	// Catalog order, with placeholders for anything still missing.
	out := make([]models.AssetQuote, 0, len(models.Assets))
	for _, asset := range models.Assets {
		if q, ok := bySymbol[asset.Symbol]; ok {
			out = append(out, q)
		} else {
			out = append(out, asset.Placeholder(now))
		}
	}
	return out, reasons
}

// kimchiPremium compares the Upbit KRW-USDT price against the USD/KRW rate.
// A missing leg means the premium is absent, never reported as zero.
func (a *MarketAggregator) kimchiPremium(ctx context.Context, usdKrw float64) (float64, error) {
	if usdKrw <= 0 {
		return 0, fmt.Errorf("usdkrw rate unavailable")
	}
	if !a.limiter.Allow("spot") {
		a.metrics.RecordFetch("upbit", "throttled")
		return 0, fmt.Errorf("upbit throttled")
	}
	usdtKrw, err := a.spot.USDTKRW(ctx)
	if err != nil {
		a.metrics.RecordFetch("upbit", "error")
		return 0, err
	}
	a.metrics.RecordFetch("upbit", "success")
	if usdtKrw <= 0 {
		return 0, fmt.Errorf("upbit price unavailable")
	}
	return (usdtKrw/usdKrw - 1) * 100, nil
}

// coinbasePremium compares Coinbase and Binance BTC spot prices.
func (a *MarketAggregator) coinbasePremium(ctx context.Context) (float64, error) {
	if !a.limiter.Allow("spot") || !a.limiter.Allow("spot") {
		return 0, fmt.Errorf("spot throttled")
	}

	var (
		wg      sync.WaitGroup
		cbPrice float64
		bnPrice float64
		cbErr   error
		bnErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		cbPrice, cbErr = a.spot.CoinbaseBTC(ctx)
	}()
	go func() {
		defer wg.Done()
		bnPrice, bnErr = a.spot.BinanceBTC(ctx)
	}()
	wg.Wait()

	if cbErr != nil {
		a.metrics.RecordFetch("coinbase", "error")
		return 0, cbErr
	}
	a.metrics.RecordFetch("coinbase", "success")
	if bnErr != nil {
		a.metrics.RecordFetch("binance", "error")
		return 0, bnErr
	}
	a.metrics.RecordFetch("binance", "success")
	if cbPrice <= 0 || bnPrice <= 0 {
		return 0, fmt.Errorf("spot prices unavailable")
	}
	return (cbPrice/bnPrice - 1) * 100, nil
}

// ethBtcRatio derives the ETH/BTC price ratio once both legs carry live
// prices. The change is reconstructed from each leg's absolute change.
func ethBtcRatio(bySymbol map[string]models.AssetQuote) (models.AssetQuote, bool) {
	btc, okB := bySymbol["BTC"]
	eth, okE := bySymbol["ETH"]
	if !okB || !okE || btc.Price <= 0 || eth.Price <= 0 {
		return models.AssetQuote{}, false
	}

	cfg, _ := models.AssetBySymbol("ETHBTC")
	q := cfg.Placeholder(eth.UpdatedAt)
	q.Price = eth.Price / btc.Price

	prevBtc := btc.Price - btc.Change
	prevEth := eth.Price - eth.Change
	if prevBtc > 0 && prevEth > 0 {
		prevRatio := prevEth / prevBtc
		q.Change = q.Price - prevRatio
		if prevRatio > 0 {
			q.ChangePercent = (q.Price/prevRatio - 1) * 100
		}
	}
	return q, true
}

func derivedQuote(symbol string, value float64, now time.Time) models.AssetQuote {
	cfg, _ := models.AssetBySymbol(symbol)
	q := cfg.Placeholder(now)
	q.Price = value
	return q
}

func allPlaceholders(quotes []models.AssetQuote) bool {
	for _, q := range quotes {
		if q.Price != 0 || q.Change != 0 || q.ChangePercent != 0 || len(q.Sparkline) > 0 {
			return false
		}
	}
	return true
}
