package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/fjmerc/wifi-dashboard/internal/config"
	"github.com/fjmerc/wifi-dashboard/internal/metrics"
)

// BasicAuthChallenge is sent with every 401 so browsers prompt for credentials
const BasicAuthChallenge = `Basic realm="WiFi Dashboard", charset="UTF-8"`

const usernameKey contextKey = "username"

// BasicAuth requires HTTP Basic credentials matching the configured dashboard account.
// Credentials are checked on every request; there is no session.
func BasicAuth(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !credentialsMatch(cfg, username, password) {
				metrics.AuthFailuresTotal.Inc()
				slog.Warn("authentication failed",
					"path", r.URL.Path,
					"ip", getClientIP(r),
					"request_id", RequestIDFromContext(r.Context()),
					"credentials_present", ok,
				)

				w.Header().Set("WWW-Authenticate", BasicAuthChallenge)
				writeError(w, "Invalid credentials", "UNAUTHORIZED", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the authenticated username, or "" outside BasicAuth
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}

// credentialsMatch evaluates both the username and the password check before combining them
func credentialsMatch(cfg *config.Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Username)) == 1

	var passOK bool
	if cfg.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(cfg.Password)) == 1
	}

	return userOK && passOK
}
