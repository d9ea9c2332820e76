package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid HTTP URL", cfg: Config{BaseURL: "http://127.0.0.1:8000", Username: "admin"}},
		{name: "valid URL with trailing slash", cfg: Config{BaseURL: "https://dash.example.com/", Username: "admin"}},
		{name: "empty URL", cfg: Config{Username: "admin"}, wantErr: "BaseURL"},
		{name: "invalid protocol", cfg: Config{BaseURL: "ftp://dash.example.com", Username: "admin"}, wantErr: "http or https"},
		{name: "missing host", cfg: Config{BaseURL: "http://", Username: "admin"}, wantErr: "host"},
		{name: "missing username", cfg: Config{BaseURL: "http://127.0.0.1:8000"}, wantErr: "Username"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.cfg)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.HasSuffix(c.BaseURL(), "/") {
				t.Errorf("BaseURL %q should have trailing slash removed", c.BaseURL())
			}
		})
	}
}

func TestClientString_RedactsPassword(t *testing.T) {
	c, err := New(Config{BaseURL: "http://127.0.0.1:8000", Username: "admin", Password: "hunter2"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(c.String(), "hunter2") {
		t.Errorf("String() leaked password: %s", c.String())
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Config{BaseURL: server.URL, Username: "admin", Password: "secret"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestAttempts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "secret" {
			t.Errorf("missing or wrong basic auth: %q %q %v", user, pass, ok)
		}
		if r.URL.Path != "/api/attempts" {
			t.Errorf("path = %q", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("status_filter") != "failed" || q.Get("limit") != "5" || q.Get("start_date") != "2024-01-01" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Has("end_date") {
			t.Error("empty end_date should be omitted")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"attempts": []map[string]any{
				{"id": 7, "timestamp": "2024-01-02 10:00:00", "username": "bob", "a": "", "response_status": "403", "response_message": "denied"},
			},
		})
	})

	attempts, err := c.Attempts(context.Background(), AttemptQuery{StartDate: "2024-01-01", StatusFilter: "failed", Limit: 5})
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(attempts) != 1 || attempts[0].ID != 7 || attempts[0].ResponseStatus != "403" {
		t.Errorf("unexpected attempts %+v", attempts)
	}
}

func TestAttempts_ClientSideValidation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called")
	})

	if _, err := c.Attempts(context.Background(), AttemptQuery{StatusFilter: "pending"}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if _, err := c.Attempts(context.Background(), AttemptQuery{Limit: -1}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if _, err := c.HourlyStats(context.Background(), -3); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_attempts":3,"successful_attempts":2,"failed_attempts":1,"success_rate":66.67,"last_attempt":null}`))
	})

	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalAttempts != 3 || stats.SuccessRate != 66.67 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastAttempt != nil {
		t.Errorf("LastAttempt = %v, want nil", *stats.LastAttempt)
	}
}

func TestHourlyStats(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("days"); got != "1" {
			t.Errorf("days = %q, want 1", got)
		}
		w.Write([]byte(`{"hourly_stats":[{"hour":"2024-01-01 10","total_attempts":2,"successful_attempts":1,"failed_attempts":1}]}`))
	})

	buckets, err := c.HourlyStats(context.Background(), 1)
	if err != nil {
		t.Fatalf("HourlyStats() error = %v", err)
	}
	if len(buckets) != 1 || buckets[0].Hour != "2024-01-01 10" || buckets[0].FailedAttempts != 1 {
		t.Errorf("unexpected buckets %+v", buckets)
	}
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","timestamp":"2024-01-01T12:00:00Z"}`))
	})

	health, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("Status = %q", health.Status)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{http.StatusBadRequest, `{"error":"limit must be greater than 0","code":"INVALID_PARAMETER"}`, ErrValidation, "limit must be greater than 0"},
		{http.StatusUnauthorized, `{"error":"Invalid credentials","code":"UNAUTHORIZED"}`, ErrAuthentication, "request failed"},
		{http.StatusTooManyRequests, `{"error":"Rate limit exceeded. Please try again later.","code":"RATE_LIMITED"}`, ErrRateLimit, "Rate limit exceeded. Please try again later."},
		{http.StatusInternalServerError, `{"error":"Internal server error","code":"STORE_ERROR"}`, ErrServer, "Internal server error"},
		{http.StatusNotFound, `404 page not found`, ErrNotFound, "404 Not Found"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Stats(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestAPIErrorRetryable(t *testing.T) {
	tests := []struct {
		status int
		want   bool
	}{
		{http.StatusBadRequest, false},
		{http.StatusUnauthorized, false},
		{http.StatusTooManyRequests, true},
		{http.StatusInternalServerError, true},
		{http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		err := newAPIError(tt.status, "", "failed")
		if got := err.Retryable(); got != tt.want {
			t.Errorf("Retryable() for %d = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAPIErrorIncludesCode(t *testing.T) {
	err := newAPIError(http.StatusBadRequest, "INVALID_PARAMETER", "days must be greater than or equal to 0")
	if !strings.Contains(err.Error(), "INVALID_PARAMETER") {
		t.Errorf("Error() = %q, want code included", err.Error())
	}
}
