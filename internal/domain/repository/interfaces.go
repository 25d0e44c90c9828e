package repository

import (
	"context"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
)

// Quote is a bulk quote provider's per-symbol result.
type Quote struct {
	Price         float64
	Change        float64
	ChangePercent float64
}

// CryptoQuote is the crypto market-data provider's per-coin result. Nil
// pointer fields mean the provider did not return that field and must not
// overwrite an existing value during merge.
type CryptoQuote struct {
	Price         *float64
	Change        *float64
	ChangePercent *float64
	Sparkline     []float64
}

// Dominance holds the global market-cap percentage metrics.
type Dominance struct {
	BTC  float64
	USDT float64
}

// MarketQuoter serves per-symbol quotes and daily close history for
// indices, commodities, forex, bonds, and raw crypto spot prices.
type MarketQuoter interface {
	Quote(ctx context.Context, quoteSymbol string) (Quote, error)
	DailyCloses(ctx context.Context, quoteSymbol string, days int) ([]float64, error)
}

// CryptoMarkets serves the batch crypto overlay and global dominance metrics.
type CryptoMarkets interface {
	// Markets returns quotes keyed by catalog symbol (BTC, ETH).
	Markets(ctx context.Context) (map[string]CryptoQuote, error)
	GlobalDominance(ctx context.Context) (Dominance, error)
}

// SpotRates serves the three spot lookups behind the premium derivations.
type SpotRates interface {
	USDTKRW(ctx context.Context) (float64, error)
	CoinbaseBTC(ctx context.Context) (float64, error)
	BinanceBTC(ctx context.Context) (float64, error)
}

// EconomicCalendar serves normalized, classified US economic events.
type EconomicCalendar interface {
	Events(ctx context.Context, from, to time.Time) ([]models.EconomicEvent, error)
	Configured() bool
}

// NewsSource serves normalized news items from one upstream provider.
type NewsSource interface {
	News(ctx context.Context) ([]models.NewsItem, error)
	Configured() bool
}

// SentimentIndex serves the current fear & greed reading with the previous
// cycle attached for delta display.
type SentimentIndex interface {
	Fetch(ctx context.Context) (models.SentimentReading, error)
}

// Translator is one AI translation/summarization provider.
type Translator interface {
	Translate(ctx context.Context, headline, summary, articleText string) (models.Translation, error)
	Configured() bool
	Name() string
}

// ArticleFetcher extracts raw article text for translation prompts.
// Best-effort: failures return an empty string.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Metrics records aggregation observability signals.
type Metrics interface {
	RecordFetch(provider, outcome string)
	RecordCacheRead(domain, result string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
