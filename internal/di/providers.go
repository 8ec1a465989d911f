package di

import (
	"fmt"

	"trendcheck/internal/domain/models"
	domrepo "trendcheck/internal/domain/repository"
	domservice "trendcheck/internal/domain/service"
	"trendcheck/internal/handler/api"
	internalrepo "trendcheck/internal/repository"
	"trendcheck/internal/service/analyzer"
	icache "trendcheck/internal/service/cache"
	"trendcheck/internal/service/news"
	"trendcheck/internal/service/sentiment"
	"trendcheck/internal/usecase"
	"trendcheck/pkg/config"
	xhttp "trendcheck/pkg/http"
	applogger "trendcheck/pkg/logger"
	"trendcheck/pkg/metrics"
	"trendcheck/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	log, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideArticleStore creates the in-memory time-windowed article cache.
func ProvideArticleStore(cfg *config.Config, m domrepo.Metrics) *internalrepo.InMemoryArticleStore {
	return internalrepo.NewInMemoryArticleStore(cfg.News.Retention, m)
}

// ProvideRequestStore creates the in-memory analysis job store.
func ProvideRequestStore() domrepo.RequestStore {
	return internalrepo.NewInMemoryRequestStore()
}

// ProvideDirectory builds the company directory from config, falling back to
// the built-in seed when none is configured.
func ProvideDirectory(cfg *config.Config) *models.CompanyDirectory {
	if len(cfg.Analysis.Companies) == 0 {
		return models.NewCompanyDirectory(models.DefaultCompanies())
	}
	entries := make([]models.CompanyEntry, 0, len(cfg.Analysis.Companies))
	for _, c := range cfg.Analysis.Companies {
		entries = append(entries, models.CompanyEntry{Name: c.Name, Ticker: c.Ticker, Aliases: c.Aliases})
	}
	return models.NewCompanyDirectory(entries)
}

// ProvideProviders creates every configured news source adapter. Disabled
// sources are still constructed; they answer fetches with empty results.
func ProvideProviders(cfg *config.Config, log *applogger.Logger) []domrepo.Provider {
	return []domrepo.Provider{
		news.NewGoogleNewsProvider(news.GoogleNewsConfig{
			Enabled:       cfg.News.GoogleNews.Enabled,
			PollInterval:  cfg.News.GoogleNews.PollInterval,
			Language:      cfg.News.GoogleNews.Language,
			Country:       cfg.News.GoogleNews.Country,
			PerQueryItems: cfg.News.GoogleNews.PerQueryItems,
		}, log),
		news.NewReutersProvider(news.ReutersConfig{
			Enabled:      cfg.News.Reuters.Enabled,
			PollInterval: cfg.News.Reuters.PollInterval,
			Feeds:        cfg.News.Reuters.Feeds,
		}, log),
		news.NewSecProvider(news.SecConfig{
			Enabled:      cfg.News.Sec.Enabled,
			PollInterval: cfg.News.Sec.PollInterval,
			AtomURL:      cfg.News.Sec.AtomURL,
		}, log),
		news.NewFmpProvider(news.FmpConfig{
			Enabled:      cfg.News.Fmp.Enabled,
			PollInterval: cfg.News.Fmp.PollInterval,
			APIKey:       cfg.News.Fmp.APIKey,
			Limit:        cfg.News.Fmp.Limit,
		}, xhttp.NewClient()),
	}
}

// Engines bundles the registered analyzers with the remote engine handle,
// which the app must close on shutdown.
type Engines struct {
	All    []domservice.Analyzer
	Remote *analyzer.Remote
}

// ProvideEngines registers the local engine and, when configured, the
// throttled remote engine with its queue metrics.
func ProvideEngines(cfg *config.Config, m domrepo.Metrics) Engines {
	engines := Engines{
		All: []domservice.Analyzer{analyzer.NewLocal(cfg.Analysis.Remote.TargetLang)},
	}
	if cfg.Analysis.Remote.Enabled {
		client := sentiment.NewClient(sentiment.Config{
			BaseURL: cfg.Analysis.Remote.BaseURL,
			APIKey:  cfg.Analysis.Remote.APIKey,
			Timeout: cfg.Analysis.Remote.Timeout,
		})
		remote := analyzer.NewRemote(client, cfg.Analysis.Remote.MinSpacing, cfg.Analysis.Remote.TargetLang,
			analyzer.WithQueueDepthGauge(m.RecordQueueDepth),
			analyzer.WithQueueWaitObserver(m.RecordQueueWait),
		)
		engines.All = append(engines.All, remote)
		engines.Remote = remote
	}
	return engines
}

// ProvideAggregator creates the fan-out poll use case.
func ProvideAggregator(providers []domrepo.Provider, store *internalrepo.InMemoryArticleStore, m domrepo.Metrics, log *applogger.Logger) *usecase.Aggregator {
	return usecase.NewAggregator(providers, store, m, log)
}

// ProvidePoller creates the background poll loop.
func ProvidePoller(cfg *config.Config, agg *usecase.Aggregator, log *applogger.Logger) *usecase.Poller {
	return usecase.NewPoller(agg, cfg.News.Watchlist, cfg.News.TickInterval, log)
}

// ProvideSubmitter creates the async analysis use case.
func ProvideSubmitter(cfg *config.Config, store domrepo.RequestStore, engines Engines, dir *models.CompanyDirectory, m domrepo.Metrics, log *applogger.Logger) *usecase.Submitter {
	return usecase.NewSubmitter(store, engines.All, dir, cfg.Analysis.JobTimeout, m, log)
}

// ProvideHandlers assembles the HTTP surface and wires the live stream into
// the article store's notify hook.
func ProvideHandlers(log *applogger.Logger, agg *usecase.Aggregator, store *internalrepo.InMemoryArticleStore, sub *usecase.Submitter) xhttp.Handler {
	hub := api.NewStreamHub(log)
	store.SetNotify(hub.Broadcast)
	return xhttp.Handlers{
		api.NewNewsEchoHandler(log, agg, store, icache.NewTTLCache()),
		api.NewAnalyzeEchoHandler(log, sub),
		hub,
	}
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, log *applogger.Logger, poller *usecase.Poller, handler xhttp.Handler, engines Engines) *server.App {
	return server.New(cfg, log, poller, handler, engines.Remote)
}
