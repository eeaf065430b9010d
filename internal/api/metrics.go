package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moneytogether_api_requests_total",
			Help: "Outbound API requests by method and response code.",
		},
		[]string{"code", "method"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moneytogether_api_request_duration_seconds",
			Help:    "Outbound API request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// instrument wraps a transport with request count and latency metrics.
func instrument(rt http.RoundTripper) http.RoundTripper {
	return promhttp.InstrumentRoundTripperCounter(requestsTotal,
		promhttp.InstrumentRoundTripperDuration(requestDuration, rt))
}
