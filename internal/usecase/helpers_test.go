package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/models"
	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
)

type nopMetrics struct{}

func (nopMetrics) RecordFetch(string, string)      {}
func (nopMetrics) RecordCacheRead(string, string)  {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)   {}

type fakeQuoter struct {
	mu     sync.Mutex
	quotes map[string]repository.Quote
	closes map[string][]float64
	calls  int
}

func (f *fakeQuoter) Quote(_ context.Context, symbol string) (repository.Quote, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	q, ok := f.quotes[symbol]
	if !ok {
		return repository.Quote{}, errors.New("no quote for " + symbol)
	}
	return q, nil
}

func (f *fakeQuoter) DailyCloses(_ context.Context, symbol string, _ int) ([]float64, error) {
	c, ok := f.closes[symbol]
	if !ok {
		return nil, errors.New("no history for " + symbol)
	}
	return c, nil
}

func (f *fakeQuoter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCrypto struct {
	markets   map[string]repository.CryptoQuote
	dominance repository.Dominance
	failAll   bool
}

func (f *fakeCrypto) Markets(context.Context) (map[string]repository.CryptoQuote, error) {
	if f.failAll || f.markets == nil {
		return nil, errors.New("crypto markets down")
	}
	return f.markets, nil
}

func (f *fakeCrypto) GlobalDominance(context.Context) (repository.Dominance, error) {
	if f.failAll {
		return repository.Dominance{}, errors.New("dominance down")
	}
	return f.dominance, nil
}

type fakeSpot struct {
	usdtKrw  float64
	coinbase float64
	binance  float64
	fail     bool
}

func (f *fakeSpot) USDTKRW(context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("upbit down")
	}
	return f.usdtKrw, nil
}

func (f *fakeSpot) CoinbaseBTC(context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("coinbase down")
	}
	return f.coinbase, nil
}

func (f *fakeSpot) BinanceBTC(context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("binance down")
	}
	return f.binance, nil
}

type fakeCalendar struct {
	events     []models.EconomicEvent
	err        error
	configured bool
	calls      int
}

func (f *fakeCalendar) Events(context.Context, time.Time, time.Time) ([]models.EconomicEvent, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeCalendar) Configured() bool { return f.configured }

type fakeNews struct {
	items      []models.NewsItem
	err        error
	configured bool
}

func (f *fakeNews) News(context.Context) ([]models.NewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeNews) Configured() bool { return f.configured }

type fakeSentiment struct {
	reading models.SentimentReading
	err     error
	calls   int
}

func (f *fakeSentiment) Fetch(context.Context) (models.SentimentReading, error) {
	f.calls++
	if f.err != nil {
		return models.SentimentReading{}, f.err
	}
	return f.reading, nil
}

type fakeTranslator struct {
	name       string
	configured bool
	err        error
	result     models.Translation
	calls      int
}

func (f *fakeTranslator) Translate(context.Context, string, string, string) (models.Translation, error) {
	f.calls++
	if f.err != nil {
		return models.Translation{}, f.err
	}
	return f.result, nil
}

func (f *fakeTranslator) Configured() bool { return f.configured }
func (f *fakeTranslator) Name() string     { return f.name }

type fakeArticles struct {
	text string
}

func (f *fakeArticles) Fetch(context.Context, string) string { return f.text }

func ptr(v float64) *float64 { return &v }
