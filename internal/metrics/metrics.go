package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's collectors on a dedicated registry so that
// tests can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	evaluations *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	memoLookups *prometheus.CounterVec
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcq_strategy",
			Name:      "evaluations_total",
			Help:      "Strategy evaluations by resulting regime.",
		}, []string{"regime"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcq_strategy",
			Name:      "rejected_parameters_total",
			Help:      "Requests rejected during parameter validation.",
		}, []string{"reason"}),
		memoLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcq_strategy",
			Name:      "memo_lookups_total",
			Help:      "Memo lookups by outcome.",
		}, []string{"outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcq_strategy",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mcq_strategy",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(
		m.evaluations,
		m.rejected,
		m.memoLookups,
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) ObserveEvaluation(regime string) {
	m.evaluations.WithLabelValues(regime).Inc()
}

func (m *Metrics) ObserveRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) MemoHit() {
	m.memoLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) MemoMiss() {
	m.memoLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
