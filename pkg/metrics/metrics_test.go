package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCounters(t *testing.T) {
	m := New()

	m.Branch("greeting")
	m.Branch("greeting")
	m.Branch("fallback")
	m.ExternalCall("search")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.branches.WithLabelValues("greeting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.branches.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.externalCalls.WithLabelValues("search")))
}

func TestMetricsHandlerServesText(t *testing.T) {
	m := New()
	m.Branch("greeting")
	m.ObserveRequestDuration(25 * time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "festbot_intent_total")
	assert.Contains(t, body, "festbot_chat_request_duration_seconds")
}
