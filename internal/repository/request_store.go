package repository

import (
	"sort"
	"sync"

	"trendcheck/internal/domain/models"
)

// InMemoryRequestStore keeps analysis requests for the lifetime of the
// process. Requests are never evicted.
type InMemoryRequestStore struct {
	mu   sync.RWMutex
	byID map[string]*models.AnalysisRequest
}

func NewInMemoryRequestStore() *InMemoryRequestStore {
	return &InMemoryRequestStore{byID: make(map[string]*models.AnalysisRequest)}
}

// Save stores a copy so later async updates go through Update rather than
// mutating a shared pointer under readers.
func (s *InMemoryRequestStore) Save(req *models.AnalysisRequest) {
	cp := *req
	s.mu.Lock()
	s.byID[cp.ID] = &cp
	s.mu.Unlock()
}

func (s *InMemoryRequestStore) Get(id string) (*models.AnalysisRequest, bool) {
	s.mu.RLock()
	req, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	cp := *req
	return &cp, true
}

// All returns every request, newest first.
func (s *InMemoryRequestStore) All() []*models.AnalysisRequest {
	s.mu.RLock()
	out := make([]*models.AnalysisRequest, 0, len(s.byID))
	for _, req := range s.byID {
		cp := *req
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Update replaces the stored request by id.
func (s *InMemoryRequestStore) Update(req *models.AnalysisRequest) {
	cp := *req
	s.mu.Lock()
	s.byID[cp.ID] = &cp
	s.mu.Unlock()
}
