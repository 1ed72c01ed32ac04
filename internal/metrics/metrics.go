package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// UpstreamRequestsTotal counts DEX Screener requests by operation and
	// outcome ("success" or "error").
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pairwatch_upstream_requests_total",
			Help: "Number of DEX Screener requests by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamRequestDuration observes DEX Screener request latency.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pairwatch_upstream_request_duration_seconds",
			Help:    "DEX Screener request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// CacheEvents counts pair cache hits and misses.
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pairwatch_cache_events_total",
			Help: "Pair cache hits and misses.",
		},
		[]string{"event"},
	)
)

// MustRegisterMetrics registers all collectors with the default registry.
func MustRegisterMetrics() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		CacheEvents,
	)
}
