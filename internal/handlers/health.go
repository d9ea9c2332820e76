package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// Health check timeout for the store
const healthCheckTimeout = 5 * time.Second

// readinessResponse is the body of /health/ready
type readinessResponse struct {
	Status   string                      `json:"status"`
	Database *repository.ComponentHealth `json:"database,omitempty"`
}

// setHealthCacheHeaders sets appropriate cache-control headers for health endpoints.
func setHealthCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

// HealthHandler reports that the process is alive. It never touches the store.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setHealthCacheHeaders(w)
		sendJSON(w, models.HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}
}

// ReadinessHandler reports whether the login_attempts store can be queried
func ReadinessHandler(healthRepo repository.HealthRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := readinessResponse{Status: "ready"}
		httpCode := http.StatusOK

		health, err := healthRepo.CheckHealth(ctx)
		if err != nil {
			slog.Warn("readiness check failed", "error", err)
			resp.Status = "unavailable"
			httpCode = http.StatusServiceUnavailable
		}
		resp.Database = health

		setHealthCacheHeaders(w)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpCode)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			slog.Error("failed to encode readiness response", "error", err)
		}
	}
}
