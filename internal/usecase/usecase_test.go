package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trendcheck/internal/domain/models"
	domrepo "trendcheck/internal/domain/repository"
	"trendcheck/internal/domain/service"
	"trendcheck/internal/repository"
	"trendcheck/internal/service/analyzer"
	"trendcheck/pkg/logger"
)

type noopMetrics struct{}

func (noopMetrics) RecordFetch(string, int)    {}
func (noopMetrics) RecordFetchError(string)    {}
func (noopMetrics) RecordCacheSize(int)        {}
func (noopMetrics) RecordAnalysis(string, string) {}
func (noopMetrics) RecordQueueWait(float64)    {}
func (noopMetrics) RecordQueueDepth(int)       {}

type fakeProvider struct {
	name     string
	interval time.Duration
	articles []*models.Article
	err      error
	fetches  int
}

func (f *fakeProvider) Name() string                   { return f.name }
func (f *fakeProvider) MinPollInterval() time.Duration { return f.interval }
func (f *fakeProvider) Fetch(context.Context, *models.NewsQuery) ([]*models.Article, error) {
	f.fetches++
	return f.articles, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestPollAllIsolatesProviderFailures(t *testing.T) {
	now := time.Now()
	good := &fakeProvider{name: "good", articles: []*models.Article{
		{ID: "1", Title: "a", PublishedAt: now},
		{ID: "2", Title: "b", PublishedAt: now},
	}}
	bad := &fakeProvider{name: "bad", err: errors.New("boom")}

	store := repository.NewInMemoryArticleStore(72*time.Hour, nil)
	agg := NewAggregator([]domrepo.Provider{good, bad}, store, noopMetrics{}, testLogger(t))

	n, err := agg.PollAll(context.Background(), &models.NewsQuery{Limit: 100})
	if err != nil {
		t.Fatalf("poll all: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 stored articles despite the failing provider, got %d", n)
	}
}

func TestPollAllCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := repository.NewInMemoryArticleStore(72*time.Hour, nil)
	agg := NewAggregator(nil, store, noopMetrics{}, testLogger(t))
	if _, err := agg.PollAll(ctx, &models.NewsQuery{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestPollerStampsBeforeDispatch(t *testing.T) {
	prov := &fakeProvider{name: "slow", interval: time.Hour}
	store := repository.NewInMemoryArticleStore(72*time.Hour, nil)
	agg := NewAggregator([]domrepo.Provider{prov}, store, noopMetrics{}, testLogger(t))
	p := NewPoller(agg, []string{"AAPL"}, 30*time.Second, testLogger(t))

	now := time.Now()
	if !p.due(prov, now) {
		t.Fatal("provider should be due on first sweep")
	}
	p.sweep(context.Background(), now)
	if p.due(prov, now.Add(30*time.Second)) {
		t.Fatal("provider should not be due again within its interval")
	}
	if !p.due(prov, now.Add(2*time.Hour)) {
		t.Fatal("provider should be due after its interval elapses")
	}
}

func TestSubmitCompletesAsync(t *testing.T) {
	store := repository.NewInMemoryRequestStore()
	sub := NewSubmitter(store, []service.Analyzer{analyzer.NewLocal("lt")}, models.NewCompanyDirectory(models.DefaultCompanies()), time.Minute, noopMetrics{}, testLogger(t))

	req := sub.Submit("alice", "Apple Inc. (AAPL) shares surge after record profit.", "local", false)
	if req.Status != models.StatusPending {
		t.Fatalf("submit should return Pending, got %s", req.Status)
	}

	final := waitForTerminal(t, sub, req.ID)
	if final.Status != models.StatusCompleted {
		t.Fatalf("expected Completed, got %s (%s)", final.Status, final.Error)
	}
	if final.Result == nil || final.Result.Ticker != "AAPL" {
		t.Fatalf("unexpected result: %+v", final.Result)
	}
}

func TestSubmitUnknownEngineFailsAsync(t *testing.T) {
	store := repository.NewInMemoryRequestStore()
	sub := NewSubmitter(store, []service.Analyzer{analyzer.NewLocal("lt")}, models.NewCompanyDirectory(nil), time.Minute, noopMetrics{}, testLogger(t))

	req := sub.Submit("bob", "text", "quantum", false)
	if req.Status != models.StatusPending {
		t.Fatalf("submit itself must not fail, got %s", req.Status)
	}

	final := waitForTerminal(t, sub, req.ID)
	if final.Status != models.StatusFailed {
		t.Fatalf("expected Failed, got %s", final.Status)
	}
	if final.Error == "" {
		t.Fatal("expected an error message naming the engine")
	}
}

func TestEngineMatchIsCaseInsensitive(t *testing.T) {
	store := repository.NewInMemoryRequestStore()
	sub := NewSubmitter(store, []service.Analyzer{analyzer.NewLocal("lt")}, models.NewCompanyDirectory(nil), time.Minute, noopMetrics{}, testLogger(t))

	req := sub.Submit("carol", "shares tumble", "LOCAL", false)
	final := waitForTerminal(t, sub, req.ID)
	if final.Status != models.StatusCompleted {
		t.Fatalf("expected case-insensitive engine match, got %s (%s)", final.Status, final.Error)
	}
}

func waitForTerminal(t *testing.T, sub *Submitter, id string) *models.AnalysisRequest {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if req, ok := sub.Request(id); ok && req.Status != models.StatusPending {
			return req
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("request never reached a terminal status")
	return nil
}
