package di

import (
	"fmt"

	"github.com/MatthewLee0811/InvestPulse/internal/domain/repository"
	"github.com/MatthewLee0811/InvestPulse/internal/handler/api"
	"github.com/MatthewLee0811/InvestPulse/internal/service/alternative"
	"github.com/MatthewLee0811/InvestPulse/internal/service/coingecko"
	"github.com/MatthewLee0811/InvestPulse/internal/service/cryptopanic"
	"github.com/MatthewLee0811/InvestPulse/internal/service/finnhub"
	"github.com/MatthewLee0811/InvestPulse/internal/service/spot"
	"github.com/MatthewLee0811/InvestPulse/internal/service/translate"
	"github.com/MatthewLee0811/InvestPulse/internal/service/yahoo"
	"github.com/MatthewLee0811/InvestPulse/internal/usecase"
	"github.com/MatthewLee0811/InvestPulse/pkg/cache"
	"github.com/MatthewLee0811/InvestPulse/pkg/config"
	xhttp "github.com/MatthewLee0811/InvestPulse/pkg/http"
	applogger "github.com/MatthewLee0811/InvestPulse/pkg/logger"
	"github.com/MatthewLee0811/InvestPulse/pkg/metrics"
	"github.com/MatthewLee0811/InvestPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	level := cfg.Log.Level
	if level == "" {
		level = "info"
	}
	format := cfg.Log.Format
	if format == "" {
		format = "console"
	}
	output := cfg.Log.Output
	if output == "" {
		output = "stdout"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: output})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCacheStore creates the configured cache backend.
func ProvideCacheStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "redis":
		store, err := cache.NewRedisStore(
			cache.WithRedisAddr(cfg.Cache.Redis.Addr),
			cache.WithRedisPassword(cfg.Cache.Redis.Password),
			cache.WithRedisDB(cfg.Cache.Redis.DB),
			cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return store, nil
	default:
		return cache.NewMemoryStore(), nil
	}
}

// ProvideHTTPClient creates the shared outbound client for data providers.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Providers.Timeout))
}

// ProvideMarketQuoter creates the Yahoo Finance client.
func ProvideMarketQuoter(cfg *config.Config, httpc *xhttp.Client) repository.MarketQuoter {
	return yahoo.New(httpc, cfg.Providers.Yahoo.QuoteURL, cfg.Providers.Yahoo.ChartURL)
}

// ProvideCryptoMarkets creates the CoinGecko client.
func ProvideCryptoMarkets(cfg *config.Config, httpc *xhttp.Client) repository.CryptoMarkets {
	return coingecko.New(httpc, cfg.Providers.CoinGecko.BaseURL, cfg.Providers.CoinGecko.APIKey)
}

// ProvideSpotRates creates the combined exchange spot client.
func ProvideSpotRates(cfg *config.Config, httpc *xhttp.Client) repository.SpotRates {
	return spot.New(httpc,
		cfg.Providers.Upbit.BaseURL,
		cfg.Providers.Coinbase.BaseURL,
		cfg.Providers.Binance.BaseURL,
	)
}

// ProvideFinnhub creates the Finnhub client, shared by the calendar and the
// general news feed.
func ProvideFinnhub(cfg *config.Config, httpc *xhttp.Client) *finnhub.Client {
	return finnhub.New(httpc, cfg.Providers.Finnhub.BaseURL, cfg.Providers.Finnhub.APIKey)
}

// ProvideCryptoNews creates the CryptoPanic client.
func ProvideCryptoNews(cfg *config.Config, httpc *xhttp.Client) *cryptopanic.Client {
	return cryptopanic.New(httpc, cfg.Providers.CryptoPanic.BaseURL, cfg.Providers.CryptoPanic.APIKey)
}

// ProvideSentimentIndex creates the fear & greed client.
func ProvideSentimentIndex(cfg *config.Config, httpc *xhttp.Client) repository.SentimentIndex {
	return alternative.New(httpc, cfg.Providers.Alternative.BaseURL)
}

// ProvideTranslators creates the translation provider chain, primary first.
func ProvideTranslators(cfg *config.Config) []repository.Translator {
	httpc := xhttp.NewClient(xhttp.WithTimeout(cfg.Translate.Timeout))
	return []repository.Translator{
		translate.NewGemini(httpc, "", cfg.Translate.Gemini.Model, cfg.Translate.Gemini.APIKey),
		translate.NewOpenAI(httpc, "", cfg.Translate.OpenAI.Model, cfg.Translate.OpenAI.APIKey),
	}
}

// ProvideArticleFetcher creates the best-effort article text extractor.
func ProvideArticleFetcher(cfg *config.Config) repository.ArticleFetcher {
	return translate.NewArticleFetcher(cfg.Translate.ArticleTimeout)
}

// ProvideMarketAggregator creates the markets usecase.
func ProvideMarketAggregator(
	cfg *config.Config,
	quoter repository.MarketQuoter,
	crypto repository.CryptoMarkets,
	rates repository.SpotRates,
	store cache.Store,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.MarketAggregator {
	return usecase.NewMarketAggregator(quoter, crypto, rates, store, m, log, cfg.Cache.TTL.Markets)
}

// ProvideCalendarAggregator creates the calendar usecase.
func ProvideCalendarAggregator(
	cfg *config.Config,
	fh *finnhub.Client,
	store cache.Store,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.CalendarAggregator {
	return usecase.NewCalendarAggregator(fh, store, m, log, cfg.Cache.TTL.Calendar)
}

// ProvideNewsAggregator creates the news usecase.
func ProvideNewsAggregator(
	cfg *config.Config,
	fh *finnhub.Client,
	cp *cryptopanic.Client,
	store cache.Store,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.NewsAggregator {
	return usecase.NewNewsAggregator(fh, cp, store, m, log, cfg.Cache.TTL.News)
}

// ProvideSentimentAggregator creates the sentiment usecase.
func ProvideSentimentAggregator(
	cfg *config.Config,
	source repository.SentimentIndex,
	store cache.Store,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.SentimentAggregator {
	return usecase.NewSentimentAggregator(source, store, m, log, cfg.Cache.TTL.FearGreed)
}

// ProvideSummaryAggregator creates the summary usecase.
func ProvideSummaryAggregator(
	cfg *config.Config,
	markets *usecase.MarketAggregator,
	calendar *usecase.CalendarAggregator,
	sentiment *usecase.SentimentAggregator,
	store cache.Store,
	log *applogger.Logger,
) *usecase.SummaryAggregator {
	return usecase.NewSummaryAggregator(markets, calendar, sentiment, store, log, cfg.Cache.TTL.Summary)
}

// ProvideTranslateUsecase creates the translate usecase.
func ProvideTranslateUsecase(
	cfg *config.Config,
	providers []repository.Translator,
	articles repository.ArticleFetcher,
	store cache.Store,
	m repository.Metrics,
	log *applogger.Logger,
) *usecase.TranslateUsecase {
	return usecase.NewTranslateUsecase(providers, articles, store, m, log, cfg.Cache.TTL.NewsSummary)
}

// ProvideDashboardHandler creates the Echo route handler.
func ProvideDashboardHandler(
	log *applogger.Logger,
	markets *usecase.MarketAggregator,
	calendar *usecase.CalendarAggregator,
	news *usecase.NewsAggregator,
	sentiment *usecase.SentimentAggregator,
	summary *usecase.SummaryAggregator,
	tr *usecase.TranslateUsecase,
) xhttp.Handler {
	return api.NewDashboardHandler(log, markets, calendar, news, sentiment, summary, tr)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, log, handler)
}
