package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments exposed by the HTTP server.
// Each server owns its registry so that tests can construct servers
// independently without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	activeRequests   prometheus.Gauge
	generationsTotal *prometheus.CounterVec
	rejectionsTotal  prometheus.Counter
}

// NewMetrics creates and registers the server metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seqcalc_http_requests_total",
			Help: "Total number of HTTP requests by path and status code.",
		}, []string{"path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "seqcalc_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seqcalc_http_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seqcalc_generations_total",
			Help: "Total number of sequence generations by kind.",
		}, []string{"kind"}),
		rejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seqcalc_validation_rejections_total",
			Help: "Total number of requests rejected by input validation.",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.activeRequests,
		m.generationsTotal,
		m.rejectionsTotal,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler returns the Prometheus scrape handler for this server's registry.
func (m *Metrics) Handler() http.Handler { return m.handler }

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(path, status string, seconds float64) {
	m.requestsTotal.WithLabelValues(path, status).Inc()
	m.requestDuration.WithLabelValues(path).Observe(seconds)
}

// CountGeneration records one successful sequence generation.
func (m *Metrics) CountGeneration(kind string) {
	m.generationsTotal.WithLabelValues(kind).Inc()
}

// CountRejection records one request rejected by validation.
func (m *Metrics) CountRejection() { m.rejectionsTotal.Inc() }
