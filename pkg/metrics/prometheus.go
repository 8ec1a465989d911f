package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	articlesFetched *prometheus.CounterVec
	fetchErrors     *prometheus.CounterVec
	cacheSize       prometheus.Gauge
	analyses        *prometheus.CounterVec
	queueWait       prometheus.Histogram
	queueDepth      prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		articlesFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcheck_articles_fetched_total",
				Help: "Total number of articles fetched per provider",
			},
			[]string{"provider"},
		),
		fetchErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcheck_fetch_errors_total",
				Help: "Total number of provider fetch failures",
			},
			[]string{"provider"},
		),
		cacheSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "trendcheck_article_cache_size",
				Help: "Number of articles currently held in the cache",
			},
		),
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendcheck_analyses_total",
				Help: "Total number of analysis jobs by engine and outcome",
			},
			[]string{"engine", "status"},
		),
		queueWait: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trendcheck_analysis_queue_wait_seconds",
				Help:    "Time an analysis job spent waiting in the throttled queue",
				Buckets: prometheus.DefBuckets,
			},
		),
		queueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "trendcheck_analysis_queue_depth",
				Help: "Number of jobs waiting in the throttled queue",
			},
		),
	}
}

// RecordFetch records articles fetched by a provider.
func (r *Recorder) RecordFetch(provider string, count int) {
	r.articlesFetched.WithLabelValues(provider).Add(float64(count))
}

// RecordFetchError records a provider fetch failure.
func (r *Recorder) RecordFetchError(provider string) {
	r.fetchErrors.WithLabelValues(provider).Inc()
}

// RecordCacheSize records the current article cache size.
func (r *Recorder) RecordCacheSize(n int) {
	r.cacheSize.Set(float64(n))
}

// RecordAnalysis records a finished analysis job.
func (r *Recorder) RecordAnalysis(engine, status string) {
	r.analyses.WithLabelValues(engine, status).Inc()
}

// RecordQueueWait records how long a job waited before its handler ran.
func (r *Recorder) RecordQueueWait(seconds float64) {
	r.queueWait.Observe(seconds)
}

// RecordQueueDepth records the current throttled queue backlog.
func (r *Recorder) RecordQueueDepth(n int) {
	r.queueDepth.Set(float64(n))
}
