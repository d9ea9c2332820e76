package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// DefaultHourlyDays is the /api/hourly-stats window when days is omitted
const DefaultHourlyDays = 7

type hourlyStatsRequest struct {
	Days int `json:"days" validate:"gte=0"`
}

// StatsHandler serves GET /api/stats
func StatsHandler(repo repository.AttemptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repo.ComputeStats(r.Context())
		if err != nil {
			sendStoreError(w, r, err)
			return
		}

		slog.Info("retrieved dashboard statistics")
		sendJSON(w, stats)
	}
}

// HourlyStatsHandler serves GET /api/hourly-stats?days=N
func HourlyStatsHandler(repo repository.AttemptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r.URL.Query(), "days", DefaultHourlyDays)
		if err != nil {
			sendError(w, err.Error(), CodeInvalidParameter, http.StatusBadRequest)
			return
		}

		req := hourlyStatsRequest{Days: days}
		if err := ValidateRequest(req); err != nil {
			sendError(w, err.Error(), CodeInvalidParameter, http.StatusBadRequest)
			return
		}

		buckets, err := repo.HourlyStats(r.Context(), req.Days)
		if err != nil {
			sendStoreError(w, r, err)
			return
		}

		slog.Info("retrieved hourly statistics", "days", req.Days)
		sendJSON(w, models.HourlyStatsResponse{HourlyStats: buckets})
	}
}
