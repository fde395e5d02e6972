package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "governance"

var histogramBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}

// Outcome labels shared by the governance counters
const (
	OutcomeAllowed         = "allowed"
	OutcomeDenied          = "denied"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeInvalid         = "invalid"
	OutcomeSuccess         = "success"
	OutcomeConflict        = "conflict"
	OutcomeError           = "error"
)

// Metrics holds the Prometheus collectors of the governance core.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	authzDecisions    *prometheus.CounterVec
	seatAssignments   *prometheus.CounterVec
	statusTransitions *prometheus.CounterVec
	policyCache       *prometheus.CounterVec
	requestTotal      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
// Collectors already registered with reg are reused.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		authzDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authz_decisions_total",
			Help:      "Authorization decisions by resource, action and outcome",
		}, []string{"resource", "action", "outcome"}),
		seatAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seat_assignments_total",
			Help:      "License seat assignments by seat kind and outcome",
		}, []string{"kind", "outcome"}),
		statusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Governed record status transitions by outcome",
		}, []string{"outcome"}),
		policyCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "policy_cache_total",
			Help:      "Tenant policy cache lookups by result",
		}, []string{"result"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   histogramBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.authzDecisions = registerCounter(reg, m.authzDecisions)
	m.seatAssignments = registerCounter(reg, m.seatAssignments)
	m.statusTransitions = registerCounter(reg, m.statusTransitions)
	m.policyCache = registerCounter(reg, m.policyCache)
	m.requestTotal = registerCounter(reg, m.requestTotal)

	if err := reg.Register(m.requestLatency); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				m.requestLatency = existing
			}
		}
	}
	return m
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return c
}

// AuthzDecision counts one guard decision
func (m *Metrics) AuthzDecision(resource, action, outcome string) {
	if m == nil {
		return
	}
	m.authzDecisions.WithLabelValues(resource, action, outcome).Inc()
}

// SeatAssignment counts one seat assignment attempt; kind is "user" or "location"
func (m *Metrics) SeatAssignment(kind, outcome string) {
	if m == nil {
		return
	}
	m.seatAssignments.WithLabelValues(kind, outcome).Inc()
}

// StatusTransition counts one transition attempt
func (m *Metrics) StatusTransition(outcome string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(outcome).Inc()
}

// PolicyCache counts one cache lookup; result is "hit", "miss" or "error"
func (m *Metrics) PolicyCache(result string) {
	if m == nil {
		return
	}
	m.policyCache.WithLabelValues(result).Inc()
}

// ObserveRequest records one handled HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	m.requestTotal.With(labels).Inc()
	m.requestLatency.With(labels).Observe(duration.Seconds())
}

// Handler exposes everything gathered by g in the Prometheus text format
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
