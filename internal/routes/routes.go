// Package routes assembles the dashboard's HTTP handler tree.
package routes

import (
	"fmt"
	"net/http"

	"github.com/fjmerc/wifi-dashboard/internal/config"
	"github.com/fjmerc/wifi-dashboard/internal/handlers"
	"github.com/fjmerc/wifi-dashboard/internal/metrics"
	"github.com/fjmerc/wifi-dashboard/internal/middleware"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
	"github.com/fjmerc/wifi-dashboard/internal/static"
)

// New builds the full handler: every dashboard and API route behind Basic auth,
// health and static assets public, wrapped in the shared middleware chain.
func New(cfg *config.Config, repos *repository.Repositories) (http.Handler, error) {
	tmpl, err := static.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	attempts := metrics.InstrumentAttempts(repos.Attempts)

	auth := middleware.BasicAuth(cfg)
	rateLimit := middleware.RateLimitByIP(cfg.RateLimitPerMinute)
	api := func(h http.Handler) http.Handler {
		return rateLimit(auth(h))
	}

	mux := http.NewServeMux()

	// Dashboard
	mux.Handle("GET /{$}", auth(handlers.DashboardHandler(attempts, tmpl)))
	mux.Handle("GET /login", handlers.LoginPageHandler(tmpl))

	// JSON API
	mux.Handle("GET /api/attempts", api(handlers.AttemptsHandler(attempts)))
	mux.Handle("GET /api/stats", api(handlers.StatsHandler(attempts)))
	mux.Handle("GET /api/hourly-stats", api(handlers.HourlyStatsHandler(attempts)))

	// Operations
	mux.Handle("GET /health", handlers.HealthHandler())
	mux.Handle("GET /health/ready", handlers.ReadinessHandler(repos.Health))
	mux.Handle("GET /metrics", auth(handlers.MetricsHandler(repos.Attempts)))

	mux.Handle("GET /static/", http.StripPrefix("/static", static.Handler()))

	// Wrap with middleware (order: Recovery -> RequestID -> Logging -> Metrics -> Security -> handlers)
	handler := middleware.RecoveryMiddleware(
		middleware.RequestIDMiddleware(
			middleware.LoggingMiddleware(
				metrics.Middleware(
					middleware.SecurityHeadersMiddleware(mux),
				),
			),
		),
	)

	return handler, nil
}
