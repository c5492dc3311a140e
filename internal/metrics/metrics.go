// Package metrics exposes Prometheus collectors for the marketplace flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/polkiloo/campusmart/internal/domain/model"
)

const namespace = "campusmart"

// Metrics owns a private registry so tests can build independent instances.
type Metrics struct {
	registry      *prometheus.Registry
	codesIssued   *prometheus.CounterVec
	verifications *prometheus.CounterVec
	handoffs      prometheus.Counter
	transitions   *prometheus.CounterVec
	requests      *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		codesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_codes_issued_total",
			Help:      "Verification codes issued, by delivery method.",
		}, []string{"method"}),
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verification_attempts_total",
			Help:      "Verification attempts, by outcome.",
		}, []string{"outcome"}),
		handoffs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handoffs_composed_total",
			Help:      "Order handoffs composed.",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Applied order status transitions, by target status.",
		}, []string{"status"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.codesIssued,
		m.verifications,
		m.handoffs,
		m.transitions,
		m.requests,
	)
	return m
}

// CodeIssued counts an issued code by how it reached the user.
func (m *Metrics) CodeIssued(method model.DeliveryMethod) {
	m.codesIssued.WithLabelValues(string(method)).Inc()
}

// VerificationAttempt counts a validation outcome.
func (m *Metrics) VerificationAttempt(outcome model.VerificationOutcome) {
	m.verifications.WithLabelValues(string(outcome)).Inc()
}

// HandoffComposed counts a composed handoff.
func (m *Metrics) HandoffComposed() {
	m.handoffs.Inc()
}

// OrderTransitioned counts an applied status change.
func (m *Metrics) OrderTransitioned(status model.OrderStatus) {
	m.transitions.WithLabelValues(string(status)).Inc()
}

// ObserveRequest records one served HTTP request. route is the matched
// pattern, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
