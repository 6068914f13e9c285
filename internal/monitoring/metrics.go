package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Scoring pipeline metrics
	ScoreRequests      *prometheus.CounterVec
	ExtractionStrategy *prometheus.CounterVec
	QuestionsParsed    prometheus.Histogram

	// Archive metrics
	ArchiveWrites prometheus.Counter
	ArchiveSkips  prometheus.Counter
	ArchiveErrors prometheus.Counter
}

// NewMetrics creates a metrics collector backed by its own registry, so
// multiple instances (e.g. in tests) never collide.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15},
			},
			[]string{"method", "path"},
		),

		ScoreRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_score_requests_total",
				Help: "Total number of scoring requests by outcome",
			},
			[]string{"outcome"},
		),
		ExtractionStrategy: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_extraction_strategy_total",
				Help: "Extraction strategy that produced the question list",
			},
			[]string{"strategy"},
		),
		QuestionsParsed: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "backend_questions_parsed",
				Help:    "Number of questions parsed per scoring request",
				Buckets: []float64{1, 10, 25, 50, 100, 150, 200, 300},
			},
		),

		ArchiveWrites: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_archive_writes_total",
				Help: "Total number of sanitized copies written",
			},
		),
		ArchiveSkips: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_archive_skips_total",
				Help: "Total number of archive writes skipped (already saved)",
			},
		),
		ArchiveErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "backend_archive_errors_total",
				Help: "Total number of archive failures",
			},
		),
	}
}

// RecordHTTPRequest records request metrics.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordScoreOutcome records the terminal outcome of a scoring request.
func (m *Metrics) RecordScoreOutcome(outcome string) {
	m.ScoreRequests.WithLabelValues(outcome).Inc()
}

// RecordExtraction records the winning strategy and the question count.
func (m *Metrics) RecordExtraction(strategy string, questions int) {
	m.ExtractionStrategy.WithLabelValues(strategy).Inc()
	m.QuestionsParsed.Observe(float64(questions))
}

// Handler returns an HTTP handler exposing this collector's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
