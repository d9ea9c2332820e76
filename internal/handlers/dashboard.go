package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/fjmerc/wifi-dashboard/internal/middleware"
	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
	"github.com/fjmerc/wifi-dashboard/internal/static"
)

// recentAttemptsLimit is the number of rows shown on the dashboard page
const recentAttemptsLimit = 10

// dashboardPage is the data passed to the dashboard template
type dashboardPage struct {
	Username       string
	Stats          *models.DashboardStats
	RecentAttempts []models.LoginAttempt
}

// DashboardHandler renders the HTML dashboard with recent attempts and statistics.
// The hourly chart is loaded client-side from /api/hourly-stats.
func DashboardHandler(repo repository.AttemptRepository, tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middleware.UsernameFromContext(r.Context())
		slog.Info("dashboard accessed", "username", username)

		recent, err := repo.ListAttempts(r.Context(), models.FilterParams{Limit: recentAttemptsLimit})
		if err != nil {
			sendStoreError(w, r, err)
			return
		}

		stats, err := repo.ComputeStats(r.Context())
		if err != nil {
			sendStoreError(w, r, err)
			return
		}

		page := dashboardPage{
			Username:       username,
			Stats:          stats,
			RecentAttempts: recent,
		}
		renderTemplate(w, tmpl, static.DashboardTemplate, page)
	}
}

// LoginPageHandler renders the informational login page. It needs no credentials.
func LoginPageHandler(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderTemplate(w, tmpl, static.LoginTemplate, nil)
	}
}

// renderTemplate buffers the page so a template error still yields a clean 500
func renderTemplate(w http.ResponseWriter, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		sendError(w, "Internal server error", CodeInternalError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
