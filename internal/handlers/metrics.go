package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fjmerc/wifi-dashboard/internal/metrics"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// MetricsHandler returns an HTTP handler for the Prometheus metrics endpoint.
// Login attempt gauges are computed from repo on each scrape, alongside the
// process-wide default registry.
func MetricsHandler(repo repository.AttemptRepository) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewAttemptsCollector(repo))

	return promhttp.HandlerFor(
		prometheus.Gatherers{prometheus.DefaultGatherer, reg},
		promhttp.HandlerOpts{},
	)
}
