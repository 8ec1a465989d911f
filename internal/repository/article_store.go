package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"trendcheck/internal/domain/models"
	domrepo "trendcheck/internal/domain/repository"
	"trendcheck/pkg/util"
)

// InMemoryArticleStore keeps articles keyed by their content hash. Every
// upsert overwrites by id (last write wins) and then evicts entries whose
// publishedAt fell outside the retention window; there is no separate
// eviction timer.
type InMemoryArticleStore struct {
	mu        sync.RWMutex
	byID      map[string]*models.Article
	retention time.Duration
	metrics   domrepo.Metrics

	notifyMu sync.RWMutex
	notify   func([]*models.Article)
}

// NewInMemoryArticleStore creates a store with the given retention window.
// metrics may be nil.
func NewInMemoryArticleStore(retention time.Duration, metrics domrepo.Metrics) *InMemoryArticleStore {
	if retention <= 0 {
		retention = 72 * time.Hour
	}
	return &InMemoryArticleStore{
		byID:      make(map[string]*models.Article),
		retention: retention,
		metrics:   metrics,
	}
}

// SetNotify registers a hook invoked with articles that were not previously
// in the store. Used by the live stream endpoint.
func (s *InMemoryArticleStore) SetNotify(fn func([]*models.Article)) {
	s.notifyMu.Lock()
	s.notify = fn
	s.notifyMu.Unlock()
}

// Upsert stores articles and trims the retention window.
func (s *InMemoryArticleStore) Upsert(_ context.Context, articles []*models.Article) error {
	cutoff := time.Now().Add(-s.retention)

	var fresh []*models.Article
	s.mu.Lock()
	for _, a := range articles {
		if a == nil || a.ID == "" {
			continue
		}
		if _, seen := s.byID[a.ID]; !seen {
			fresh = append(fresh, a)
		}
		s.byID[a.ID] = a
	}
	for id, a := range s.byID {
		if a.PublishedAt.Before(cutoff) {
			delete(s.byID, id)
		}
	}
	size := len(s.byID)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.RecordCacheSize(size)
	}

	s.notifyMu.RLock()
	notify := s.notify
	s.notifyMu.RUnlock()
	if notify != nil && len(fresh) > 0 {
		notify(fresh)
	}
	return nil
}

// Query returns articles matching the query, newest first, truncated to the
// clamped limit.
func (s *InMemoryArticleStore) Query(_ context.Context, query *models.NewsQuery) ([]*models.Article, error) {
	s.mu.RLock()
	matched := make([]*models.Article, 0, len(s.byID))
	for _, a := range s.byID {
		if !matchesTickers(a, query.Tickers) {
			continue
		}
		if !matchesSearch(a, query.Search) {
			continue
		}
		matched = append(matched, a)
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})
	if limit := query.ClampedLimit(); len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Sources returns the sorted distinct source names currently in the store.
func (s *InMemoryArticleStore) Sources(_ context.Context) ([]string, error) {
	s.mu.RLock()
	seen := make(map[string]string)
	for _, a := range s.byID {
		key := strings.ToLower(a.Source)
		if _, ok := seen[key]; !ok {
			seen[key] = a.Source
		}
	}
	s.mu.RUnlock()

	out := make([]string, 0, len(seen))
	for _, name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// Len reports the current number of cached articles.
func (s *InMemoryArticleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// An article matches a ticker filter when its ticker set contains one of the
// requested symbols or its title mentions one as a substring; match
// semantics differ per source, so title matching stays a fallback here.
func matchesTickers(a *models.Article, tickers []string) bool {
	if len(tickers) == 0 {
		return true
	}
	for _, want := range tickers {
		for _, have := range a.Tickers {
			if strings.EqualFold(have, want) {
				return true
			}
		}
		if util.ContainsFold(a.Title, want) {
			return true
		}
	}
	return false
}

func matchesSearch(a *models.Article, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	return util.ContainsFold(a.Title, search) || util.ContainsFold(a.Summary, search)
}
