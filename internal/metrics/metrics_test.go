package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersRecordLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.AuthzDecision("LICENSE", "update", OutcomeAllowed)
	m.AuthzDecision("LICENSE", "update", OutcomeAllowed)
	m.AuthzDecision("LICENSE", "delete", OutcomeDenied)
	m.SeatAssignment("user", OutcomeConflict)
	m.StatusTransition(OutcomeSuccess)
	m.PolicyCache("hit")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.authzDecisions.WithLabelValues("LICENSE", "update", OutcomeAllowed)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.authzDecisions.WithLabelValues("LICENSE", "delete", OutcomeDenied)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.seatAssignments.WithLabelValues("user", OutcomeConflict)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.statusTransitions.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.policyCache.WithLabelValues("hit")))
}

func TestNewReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := New(reg)
	second := New(reg)

	first.StatusTransition(OutcomeError)
	second.StatusTransition(OutcomeError)

	assert.Equal(t, float64(2), testutil.ToFloat64(first.statusTransitions.WithLabelValues(OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.AuthzDecision("TEAM", "read", OutcomeAllowed)
		m.SeatAssignment("location", OutcomeSuccess)
		m.StatusTransition(OutcomeInvalid)
		m.PolicyCache("miss")
		m.ObserveRequest("GET", "/health", 200, time.Millisecond)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveRequest("GET", "/api/v1/teams/:slug/policy", http.StatusOK, 20*time.Millisecond)

	recorder := httptest.NewRecorder()
	Handler(reg).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.True(t, strings.Contains(body, "governance_api_http_requests_total"))
	assert.True(t, strings.Contains(body, `route="/api/v1/teams/:slug/policy"`))
}
