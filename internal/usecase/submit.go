package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"trendcheck/internal/domain/models"
	"trendcheck/internal/domain/repository"
	"trendcheck/internal/domain/service"
	"trendcheck/pkg/logger"
)

// Submitter accepts analysis jobs. Submit always succeeds and returns a
// Pending request; the outcome, including "no such engine", lands on the
// stored request asynchronously.
type Submitter struct {
	store   repository.RequestStore
	engines map[string]service.Analyzer
	dir     *models.CompanyDirectory
	timeout time.Duration
	metrics repository.Metrics
	log     *logger.Logger
}

func NewSubmitter(store repository.RequestStore, engines []service.Analyzer, dir *models.CompanyDirectory, timeout time.Duration, metrics repository.Metrics, log *logger.Logger) *Submitter {
	byName := make(map[string]service.Analyzer, len(engines))
	for _, e := range engines {
		byName[strings.ToLower(e.EngineName())] = e
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Submitter{
		store:   store,
		engines: byName,
		dir:     dir,
		timeout: timeout,
		metrics: metrics,
		log:     log,
	}
}

// Submit creates a Pending request and hands the work to a goroutine.
func (s *Submitter) Submit(user, text, engine string, translate bool) *models.AnalysisRequest {
	req := &models.AnalysisRequest{
		ID:        uuid.NewString(),
		UserID:    user,
		Text:      text,
		Engine:    engine,
		CreatedAt: time.Now(),
		Status:    models.StatusPending,
	}
	s.store.Save(req)
	go s.run(req, translate)
	return req
}

func (s *Submitter) run(req *models.AnalysisRequest, translate bool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	eng, ok := s.engines[strings.ToLower(req.Engine)]
	if !ok {
		s.fail(req, "unknown engine: "+req.Engine)
		return
	}

	result, err := eng.Analyze(ctx, req.Text, s.dir, translate)
	if err != nil {
		s.fail(req, err.Error())
		return
	}

	req.Status = models.StatusCompleted
	req.Result = result
	s.store.Update(req)
	s.metrics.RecordAnalysis(req.Engine, "completed")
	s.log.Info("analysis completed",
		logger.String("request_id", req.ID),
		logger.String("engine", req.Engine),
		logger.String("direction", result.Direction))
}

func (s *Submitter) fail(req *models.AnalysisRequest, msg string) {
	req.Status = models.StatusFailed
	req.Error = msg
	s.store.Update(req)
	s.metrics.RecordAnalysis(req.Engine, "failed")
	s.log.Warn("analysis failed",
		logger.String("request_id", req.ID),
		logger.String("engine", req.Engine),
		logger.String("error", msg))
}

// Request looks a job up by id.
func (s *Submitter) Request(id string) (*models.AnalysisRequest, bool) {
	return s.store.Get(id)
}

// Requests lists all jobs, newest first.
func (s *Submitter) Requests() []*models.AnalysisRequest {
	return s.store.All()
}

// Engines returns the registered engine names.
func (s *Submitter) Engines() []string {
	out := make([]string, 0, len(s.engines))
	for name := range s.engines {
		out = append(out, name)
	}
	return out
}
