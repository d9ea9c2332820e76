package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter metrics (monotonically increasing)
var (
	// HTTPRequestsTotal counts HTTP requests by method, normalized path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifi_dashboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// AuthFailuresTotal counts rejected Basic authentication attempts
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wifi_dashboard_auth_failures_total",
			Help: "Total number of requests rejected for missing or invalid credentials",
		},
	)

	// StoreErrorsTotal counts failed store queries by operation (list, stats, hourly)
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifi_dashboard_store_errors_total",
			Help: "Total number of failed login_attempts queries",
		},
		[]string{"operation"},
	)
)

// Histogram metrics (distributions)
var (
	// HTTPRequestDuration tracks HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wifi_dashboard_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// StoreQueryDuration tracks login_attempts query latency by operation
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wifi_dashboard_store_query_duration_seconds",
			Help:    "Store query latency in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)
)

// Store operation label values
const (
	OperationList   = "list"
	OperationStats  = "stats"
	OperationHourly = "hourly"
)
