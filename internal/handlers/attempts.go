package handlers

import (
	"log/slog"
	"net/http"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// AttemptsHandler serves GET /api/attempts.
// Query parameters: start_date, end_date, status_filter (success|failed), limit (default 50).
func AttemptsHandler(repo repository.AttemptRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit, err := queryInt(q, "limit", models.DefaultAttemptLimit)
		if err != nil {
			sendError(w, err.Error(), CodeInvalidParameter, http.StatusBadRequest)
			return
		}

		filters := models.FilterParams{
			StartDate:    q.Get("start_date"),
			EndDate:      q.Get("end_date"),
			StatusFilter: q.Get("status_filter"),
			Limit:        limit,
		}
		if err := ValidateRequest(filters); err != nil {
			sendError(w, err.Error(), CodeInvalidParameter, http.StatusBadRequest)
			return
		}

		attempts, err := repo.ListAttempts(r.Context(), filters)
		if err != nil {
			sendStoreError(w, r, err)
			return
		}

		slog.Info("retrieved login attempts", "count", len(attempts))
		sendJSON(w, models.AttemptsResponse{Attempts: attempts})
	}
}
