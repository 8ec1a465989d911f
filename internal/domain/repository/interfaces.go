package repository

import (
	"context"
	"time"

	"trendcheck/internal/domain/models"
)

// Provider is a news source adapter. Each provider declares its own minimum
// polling cadence; a disabled provider fetches zero articles without error.
// Providers never retry internally; retry cadence belongs to the poller.
type Provider interface {
	Name() string
	MinPollInterval() time.Duration
	Fetch(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error)
}

// ArticleStore is the time-windowed article cache. Upsert overwrites by id
// and evicts entries older than the retention window; all operations are
// safe for concurrent use.
type ArticleStore interface {
	Upsert(ctx context.Context, articles []*models.Article) error
	Query(ctx context.Context, query *models.NewsQuery) ([]*models.Article, error)
	Sources(ctx context.Context) ([]string, error)
}

// RequestStore holds analysis jobs.
type RequestStore interface {
	Save(req *models.AnalysisRequest)
	Get(id string) (*models.AnalysisRequest, bool)
	All() []*models.AnalysisRequest
	Update(req *models.AnalysisRequest)
}

// Metrics records operational counters.
type Metrics interface {
	RecordFetch(provider string, count int)
	RecordFetchError(provider string)
	RecordCacheSize(n int)
	RecordAnalysis(engine, status string)
	RecordQueueWait(seconds float64)
	RecordQueueDepth(n int)
}
