package usecase

import (
	"context"
	"time"

	"trendcheck/internal/domain/models"
	"trendcheck/internal/domain/repository"
	"trendcheck/pkg/logger"
)

const backgroundQueryLimit = 200

// Poller drives the background fetch loop. Each tick it checks which
// providers are due against their own minimum interval and dispatches those
// fetches without waiting for them. A provider's clock is stamped before the
// dispatch so a slow fetch cannot pile up duplicates behind itself.
type Poller struct {
	agg       *Aggregator
	watchlist []string
	tick      time.Duration
	log       *logger.Logger

	lastRun map[string]time.Time // touched only by the run loop
}

func NewPoller(agg *Aggregator, watchlist []string, tick time.Duration, log *logger.Logger) *Poller {
	if tick <= 0 {
		tick = 30 * time.Second
	}
	return &Poller{
		agg:       agg,
		watchlist: watchlist,
		tick:      tick,
		log:       log,
		lastRun:   make(map[string]time.Time),
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("poller started",
		logger.Dur("tick", p.tick),
		logger.Strings("watchlist", p.watchlist))
	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.log.Info("poller stopped")
			return
		case <-ticker.C:
			p.sweep(ctx, time.Now())
		}
	}
}

// sweep dispatches every due provider, stamping lastRun first.
func (p *Poller) sweep(ctx context.Context, now time.Time) {
	for _, prov := range p.agg.Providers() {
		last, ok := p.lastRun[prov.Name()]
		if ok && now.Sub(last) < prov.MinPollInterval() {
			continue
		}
		p.lastRun[prov.Name()] = now

		prov := prov
		go func() {
			query := &models.NewsQuery{Tickers: p.watchlist, Limit: backgroundQueryLimit}
			n, err := p.agg.PollProvider(ctx, prov, query)
			if err != nil {
				p.log.Warn("background poll failed",
					logger.String("provider", prov.Name()),
					logger.Error(err))
				return
			}
			p.log.Debug("background poll done",
				logger.String("provider", prov.Name()),
				logger.Int("articles", n))
		}()
	}
}

// due reports whether a provider would fire at now. Used by tests.
func (p *Poller) due(prov repository.Provider, now time.Time) bool {
	last, ok := p.lastRun[prov.Name()]
	return !ok || now.Sub(last) >= prov.MinPollInterval()
}
