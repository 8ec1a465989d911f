//go:build wireinject
// +build wireinject

package di

import (
	"trendcheck/pkg/config"
	"trendcheck/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Stores and directory
		ProvideArticleStore,
		ProvideRequestStore,
		ProvideDirectory,

		// News sources and analysis engines
		ProvideProviders,
		ProvideEngines,

		// Use cases
		ProvideAggregator,
		ProvidePoller,
		ProvideSubmitter,

		// HTTP surface
		ProvideHandlers,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
