package metrics

import (
	"io"
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

func TestUpstreamMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewUpstreamMetrics(reg)

	m.Observe(OutcomeOK, 120*time.Millisecond)
	m.Observe(OutcomeOK, 80*time.Millisecond)
	m.Observe(OutcomeBadStatus, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeBadStatus)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Requests.WithLabelValues(OutcomeTransportError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestUpstreamMetrics_NilIsNoop(t *testing.T) {
	var m *UpstreamMetrics
	assert.NotPanics(t, func() { m.Observe(OutcomeOK, time.Millisecond) })
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := NewRegistry()
	NewUpstreamMetrics(reg).Observe(OutcomeGraphQLError, 10*time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `leetcode_upstream_requests_total{outcome="graphql_error"} 1`))
	assert.Contains(t, string(body), "go_goroutines")
}
