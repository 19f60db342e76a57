package metrics

import (
    "strconv"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Gateway holds the façade's Prometheus collectors.
type Gateway struct {
    RequestsTotal   *prometheus.CounterVec
    RequestDuration *prometheus.HistogramVec

    UpstreamCallsTotal  *prometheus.CounterVec
    UpstreamErrorsTotal *prometheus.CounterVec
}

// New registers the collectors on the default registry. Call once per process.
func New() *Gateway {
    return &Gateway{
        RequestsTotal: promauto.NewCounterVec(
            prometheus.CounterOpts{
                Name: "quotegateway_requests_total",
                Help: "HTTP requests handled, by path and status code",
            },
            []string{"path", "status"},
        ),
        RequestDuration: promauto.NewHistogramVec(
            prometheus.HistogramOpts{
                Name:    "quotegateway_request_duration_seconds",
                Help:    "HTTP request handling time in seconds",
                Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
            },
            []string{"path"},
        ),
        UpstreamCallsTotal: promauto.NewCounterVec(
            prometheus.CounterOpts{
                Name: "quotegateway_upstream_calls_total",
                Help: "Outbound provider calls, by provider",
            },
            []string{"provider"},
        ),
        UpstreamErrorsTotal: promauto.NewCounterVec(
            prometheus.CounterOpts{
                Name: "quotegateway_upstream_errors_total",
                Help: "Failed outbound provider calls, by provider",
            },
            []string{"provider"},
        ),
    }
}

// RecordRequest records one handled HTTP request.
func (g *Gateway) RecordRequest(path string, status int, seconds float64) {
    g.RequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
    g.RequestDuration.WithLabelValues(path).Observe(seconds)
}

// RecordUpstream records one outbound provider call.
func (g *Gateway) RecordUpstream(provider string, err error) {
    g.UpstreamCallsTotal.WithLabelValues(provider).Inc()
    if err != nil {
        g.UpstreamErrorsTotal.WithLabelValues(provider).Inc()
    }
}
