//go:build wireinject
// +build wireinject

package di

import (
	"github.com/MatthewLee0811/InvestPulse/pkg/config"
	"github.com/MatthewLee0811/InvestPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,
		ProvideCacheStore,
		ProvideHTTPClient,

		// Provider clients
		ProvideMarketQuoter,
		ProvideCryptoMarkets,
		ProvideSpotRates,
		ProvideFinnhub,
		ProvideCryptoNews,
		ProvideSentimentIndex,
		ProvideTranslators,
		ProvideArticleFetcher,

		// Use cases
		ProvideMarketAggregator,
		ProvideCalendarAggregator,
		ProvideNewsAggregator,
		ProvideSentimentAggregator,
		ProvideSummaryAggregator,
		ProvideTranslateUsecase,

		// HTTP surface
		ProvideDashboardHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
