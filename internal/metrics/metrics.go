package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for CatalogRequestsTotal.
const (
	OutcomeSuccess       = "success"
	OutcomeNetworkError  = "network_error"
	OutcomeUpstreamError = "upstream_error"
	OutcomeShapeMismatch = "shape_mismatch"
)

// Catalog API metrics
var (
	CatalogRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests sent to the show catalog API.",
		},
		[]string{"endpoint", "outcome"},
	)

	CatalogRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Latency of show catalog API requests, including body decoding.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Web UI metrics
var (
	WebRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "web_renders_total",
			Help: "Total number of views rendered by the web UI.",
		},
		[]string{"view", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		CatalogRequestsTotal,
		CatalogRequestDuration,
		WebRendersTotal,
	)
}
