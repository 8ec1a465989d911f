package analyzer

import (
	"context"
	"math"
	"time"

	"trendcheck/internal/domain/models"
	"trendcheck/internal/service/sentiment"
	"trendcheck/pkg/queue"
)

type remoteJob struct {
	text      string
	dir       *models.CompanyDirectory
	translate bool
}

// Remote analyzes text through the hosted analytics API. All calls funnel
// through a throttled queue so bursts of submissions keep a minimum spacing
// between upstream requests.
type Remote struct {
	client     *sentiment.Client
	queue      *queue.Throttled[remoteJob, *models.AnalysisResult]
	targetLang string
}

// RemoteOption configures the queue behind a Remote engine.
type RemoteOption func(*[]queue.Option[remoteJob, *models.AnalysisResult])

// WithQueueDepthGauge reports the backlog size on every change.
func WithQueueDepthGauge(fn func(int)) RemoteOption {
	return func(opts *[]queue.Option[remoteJob, *models.AnalysisResult]) {
		*opts = append(*opts, queue.WithDepthGauge[remoteJob, *models.AnalysisResult](fn))
	}
}

// WithQueueWaitObserver reports how long each job waited before running.
func WithQueueWaitObserver(fn func(float64)) RemoteOption {
	return func(opts *[]queue.Option[remoteJob, *models.AnalysisResult]) {
		*opts = append(*opts, queue.WithWaitObserver[remoteJob, *models.AnalysisResult](fn))
	}
}

func NewRemote(client *sentiment.Client, minSpacing time.Duration, targetLang string, opts ...RemoteOption) *Remote {
	if targetLang == "" {
		targetLang = "lt"
	}
	r := &Remote{client: client, targetLang: targetLang}
	var qopts []queue.Option[remoteJob, *models.AnalysisResult]
	for _, opt := range opts {
		opt(&qopts)
	}
	r.queue = queue.NewThrottled(minSpacing, r.handle, qopts...)
	return r
}

func (r *Remote) EngineName() string { return "remote" }

func (r *Remote) Analyze(ctx context.Context, text string, dir *models.CompanyDirectory, translate bool) (*models.AnalysisResult, error) {
	return r.queue.Do(ctx, remoteJob{text: text, dir: dir, translate: translate})
}

// Close stops the worker; queued jobs are dropped.
func (r *Remote) Close() { r.queue.Close() }

func (r *Remote) handle(ctx context.Context, job remoteJob) (*models.AnalysisResult, error) {
	entities, err := r.client.Entities(ctx, job.text)
	if err != nil {
		return nil, err
	}
	company := ""
	for _, e := range entities {
		if e.Category == "Organization" {
			company = e.Text
			break
		}
	}

	doc, err := r.client.Sentiment(ctx, job.text)
	if err != nil {
		return nil, err
	}
	score := doc.Positive - doc.Negative

	direction := models.DirectionNeutral
	if math.Abs(score) >= 0.1 {
		if score > 0 {
			direction = models.DirectionUp
		} else {
			direction = models.DirectionDown
		}
	}
	magnitude := math.Min(1.0, math.Abs(score)*1.2)

	best := ""
	bestAbs := -1.0
	for _, s := range doc.Sentences {
		if d := math.Abs(s.Positive - s.Negative); d > bestAbs {
			bestAbs = d
			best = s.Text
		}
	}
	if best == "" {
		best = head(job.text, 160)
	}

	translation := ""
	if job.translate {
		translation, err = r.client.Translate(ctx, best, r.targetLang)
		if err != nil {
			return nil, err
		}
	}

	ticker := ""
	resolved := company
	if company != "" {
		if name, tk, ok := job.dir.Resolve(company); ok {
			resolved, ticker = name, tk
		}
	}
	if resolved == "" {
		resolved = "Unknown"
	}

	return &models.AnalysisResult{
		Company:         resolved,
		Ticker:          ticker,
		Direction:       direction,
		Magnitude:       round3(magnitude),
		SentimentScore:  round3(score),
		EvidenceSnippet: best,
		Translation:     translation,
	}, nil
}

func head(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
