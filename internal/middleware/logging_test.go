package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLoggingMiddleware_CapturesStatusCode(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"200 OK", http.StatusOK},
		{"400 Bad Request", http.StatusBadRequest},
		{"401 Unauthorized", http.StatusUnauthorized},
		{"500 Internal Server Error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

			if rr.Code != tt.statusCode {
				t.Errorf("status = %d, want %d", rr.Code, tt.statusCode)
			}
			if !strings.Contains(logs.String(), `"status":`+strconv.Itoa(tt.statusCode)) {
				t.Errorf("log line missing status %d: %s", tt.statusCode, logs.String())
			}
		})
	}
}

func TestLoggingMiddleware_OmitsQueryAndCredentials(t *testing.T) {
	logs := captureLogs(t)
	handler := RequestIDMiddleware(LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/attempts?status_filter=failed", nil)
	req.SetBasicAuth("operator", "top-secret")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := logs.String()
	if strings.Contains(out, "top-secret") {
		t.Errorf("log output contains password: %s", out)
	}
	if strings.Contains(out, "status_filter") {
		t.Errorf("log output contains query string: %s", out)
	}
	if !strings.Contains(out, `"request_id":"`) {
		t.Errorf("log output missing request_id: %s", out)
	}
}
