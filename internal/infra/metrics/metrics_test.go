package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, gatherer prometheus.Gatherer) string {
	t.Helper()

	rec := httptest.NewRecorder()
	Handler(gatherer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Body.String()
}

func TestCollector_Counters(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(OutcomeSuccess)
	c.RecordLogin(OutcomeSuccess)
	c.RecordLogin("OAUTH_EXCHANGE_FAILED")
	c.RecordRotation("REFRESH_TOKEN_INVALID")
	c.RecordRevocation("single")

	body := scrape(t, reg)

	assert.Contains(t, body, `gateway_logins_total{outcome="success"} 2`)
	assert.Contains(t, body, `gateway_logins_total{outcome="OAUTH_EXCHANGE_FAILED"} 1`)
	assert.Contains(t, body, `gateway_refresh_rotations_total{outcome="REFRESH_TOKEN_INVALID"} 1`)
	assert.Contains(t, body, `gateway_revocations_total{scope="single"} 1`)
}

func TestCollector_RecordSweep(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)

	c.RecordSweep(4, 2, nil)
	c.RecordSweep(1, 0, errors.New("boom"))

	body := scrape(t, reg)

	assert.Contains(t, body, `gateway_retention_sweeps_total{outcome="success"} 1`)
	assert.Contains(t, body, `gateway_retention_sweeps_total{outcome="error"} 1`)
	assert.Contains(t, body, `gateway_retention_deleted_records_total{kind="refresh_token"} 5`)
	assert.Contains(t, body, `gateway_retention_deleted_records_total{kind="provider_token_record"} 2`)
}

func TestHandler_ExposesRuntimeAndHTTPMetrics(t *testing.T) {
	reg := NewRegistry()
	c := NewCollector(reg)
	c.RecordHTTPRequest(http.MethodGet, "/me", http.StatusOK, 15*time.Millisecond)

	body := scrape(t, reg)

	assert.Contains(t, body, `gateway_http_requests_total{method="GET",route="/me",status="200"} 1`)
	assert.Contains(t, body, `gateway_http_request_duration_seconds_count{method="GET",route="/me"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
