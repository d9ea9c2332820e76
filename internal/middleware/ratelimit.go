package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// RateLimitByIP limits each client IP to requestsPerMinute requests.
// A non-positive limit disables rate limiting.
func RateLimitByIP(requestsPerMinute int) func(next http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		requestsPerMinute,
		1*time.Minute,
		httprate.WithKeyByRealIP(),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			slog.Warn("rate limit exceeded",
				"ip", getClientIP(r),
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()),
			)
			writeError(w, "Rate limit exceeded. Please try again later.", "RATE_LIMITED", http.StatusTooManyRequests)
		}),
	)
}
