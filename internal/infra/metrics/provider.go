package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		providerCalls,
		providerLatencyMs,
	)
}

var (
	providerCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_calls_total",
			Help: "Weather provider calls by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	providerLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_latency_ms",
			Help:    "Weather provider call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"endpoint"},
	)
)

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// ObserveProviderCall records one call to the weather API.
// outcome is one of ok | not_found | unavailable | bad_response.
func ObserveProviderCall(endpoint, outcome string, latencyMs int) {
	providerCalls.WithLabelValues(norm(endpoint), norm(outcome)).Inc()
	providerLatencyMs.WithLabelValues(norm(endpoint)).Observe(float64(latencyMs))
}
