package client

import "time"

// Config configures a Client.
type Config struct {
	// BaseURL is the dashboard root, e.g. "http://127.0.0.1:8000".
	BaseURL string
	// Username and Password are sent as HTTP Basic credentials.
	Username string
	Password string
	// Timeout is the per-request timeout. Defaults to 30 seconds.
	Timeout time.Duration
}

// Attempt is one recorded WiFi login attempt.
type Attempt struct {
	ID              int64  `json:"id"`
	Timestamp       string `json:"timestamp"`
	Username        string `json:"username"`
	A               string `json:"a"`
	ResponseStatus  string `json:"response_status"`
	ResponseMessage string `json:"response_message"`
}

// AttemptQuery filters Attempts. Zero values are omitted from the request.
type AttemptQuery struct {
	StartDate string
	EndDate   string
	// StatusFilter is "success", "failed" or empty.
	StatusFilter string
	// Limit caps the result; the server defaults to 50.
	Limit int
}

// Stats are the aggregate counters over all recorded attempts.
type Stats struct {
	TotalAttempts      int64   `json:"total_attempts"`
	SuccessfulAttempts int64   `json:"successful_attempts"`
	FailedAttempts     int64   `json:"failed_attempts"`
	SuccessRate        float64 `json:"success_rate"`
	LastAttempt        *string `json:"last_attempt"`
}

// HourlyBucket holds the attempt counts of one hour, keyed "YYYY-MM-DD HH".
type HourlyBucket struct {
	Hour               string `json:"hour"`
	TotalAttempts      int64  `json:"total_attempts"`
	SuccessfulAttempts int64  `json:"successful_attempts"`
	FailedAttempts     int64  `json:"failed_attempts"`
}

// Health is the /health response.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type attemptsResponse struct {
	Attempts []Attempt `json:"attempts"`
}

type hourlyStatsResponse struct {
	HourlyStats []HourlyBucket `json:"hourly_stats"`
}
