package usecase

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"trendcheck/internal/domain/models"
	"trendcheck/internal/domain/repository"
	"trendcheck/pkg/logger"
)

// Aggregator fans a query out to every registered provider and folds the
// results into the article store. One slow or broken provider never blocks
// the others; its failure is counted and logged, not propagated.
type Aggregator struct {
	providers []repository.Provider
	store     repository.ArticleStore
	metrics   repository.Metrics
	log       *logger.Logger
}

func NewAggregator(providers []repository.Provider, store repository.ArticleStore, metrics repository.Metrics, log *logger.Logger) *Aggregator {
	return &Aggregator{providers: providers, store: store, metrics: metrics, log: log}
}

func (a *Aggregator) Providers() []repository.Provider { return a.providers }

// PollAll runs all providers concurrently and returns how many articles were
// stored. It only errors when the context is cancelled.
func (a *Aggregator) PollAll(ctx context.Context, query *models.NewsQuery) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	var total int64
	for _, p := range a.providers {
		p := p
		g.Go(func() error {
			n, err := a.PollProvider(gctx, p, query)
			if err != nil {
				a.log.Warn("provider poll failed",
					logger.String("provider", p.Name()),
					logger.Error(err))
				return nil
			}
			atomic.AddInt64(&total, int64(n))
			return nil
		})
	}
	_ = g.Wait()
	return int(atomic.LoadInt64(&total)), ctx.Err()
}

// PollProvider fetches one provider and upserts its articles.
func (a *Aggregator) PollProvider(ctx context.Context, p repository.Provider, query *models.NewsQuery) (int, error) {
	articles, err := p.Fetch(ctx, query)
	if err != nil {
		a.metrics.RecordFetchError(p.Name())
		return 0, err
	}
	if len(articles) == 0 {
		return 0, nil
	}
	if err := a.store.Upsert(ctx, articles); err != nil {
		return 0, err
	}
	a.metrics.RecordFetch(p.Name(), len(articles))
	return len(articles), nil
}
