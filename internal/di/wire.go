//go:build wireinject
// +build wireinject

package di

import (
	"StockPulse/pkg/config"
	"StockPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideCache,
		ProvideKafkaPublisher,
		ProvideDecisionPublisher,

		// Providers
		ProvideYahooClient,
		ProvideMarketData,
		ProvidePolarityScorer,

		// Use cases
		ProvideDecisionConfig,
		ProvideAnalysisUseCase,
		ProvideAskAIUseCase,
		ProvideMediaUseCase,

		// Transport
		ProvideRateLimiter,
		ProvideRouter,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
