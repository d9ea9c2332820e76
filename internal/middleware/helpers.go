package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/fjmerc/wifi-dashboard/internal/models"
)

// contextKey namespaces values this package stores on the request context
type contextKey string

// getClientIP returns the client IP the same way the rate limiter keys requests
func getClientIP(r *http.Request) string {
	ip, err := httprate.KeyByRealIP(r)
	if err == nil && ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeError sends a JSON ErrorResponse
func writeError(w http.ResponseWriter, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: message,
		Code:  code,
	})
}
