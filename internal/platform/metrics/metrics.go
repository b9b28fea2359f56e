package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for leetcode_upstream_requests_total.
const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeBadStatus      = "bad_status"
	OutcomeInvalidBody    = "invalid_body"
	OutcomeGraphQLError   = "graphql_error"
)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// UpstreamMetrics instruments calls to the LeetCode GraphQL endpoint.
// A nil *UpstreamMetrics is valid and records nothing.
type UpstreamMetrics struct {
	Requests *prometheus.CounterVec
	Duration prometheus.Histogram
}

func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	m := &UpstreamMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leetcode_upstream_requests_total",
				Help: "Outbound LeetCode GraphQL requests by outcome.",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "leetcode_upstream_request_duration_seconds",
			Help:    "Latency of outbound LeetCode GraphQL requests.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 12},
		}),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}

func (m *UpstreamMetrics) Observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}
