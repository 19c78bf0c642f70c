// Package metrics provides Prometheus metrics for the thema API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "thema"

// Metrics holds the server's collectors and the registry they live in.
// Each instance has its own registry, so several servers (or tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Query metrics
	SearchResults prometheus.Histogram
	RateLimited   prometheus.Counter

	// Dataset metrics
	CodesLoaded prometheus.Gauge

	StartTime time.Time
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		StartTime: time.Now(),
	}

	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	m.RequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	m.SearchResults = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of codes matched by a search before pagination",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	m.RateLimited = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	m.CodesLoaded = factory.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "codes_loaded",
			Help:      "Number of codes held in memory",
		},
	)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Seconds since the server started",
		},
		func() float64 { return time.Since(m.StartTime).Seconds() },
	)

	return m
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveSearch records the size of a search result set.
func (m *Metrics) ObserveSearch(total int) {
	m.SearchResults.Observe(float64(total))
}

// SetCodesLoaded records the dataset size.
func (m *Metrics) SetCodesLoaded(n int) {
	m.CodesLoaded.Set(float64(n))
}
