package models

// ErrorResponse is the JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// AttemptsResponse wraps /api/attempts results
type AttemptsResponse struct {
	Attempts []LoginAttempt `json:"attempts"`
}

// HourlyStatsResponse wraps /api/hourly-stats results
type HourlyStatsResponse struct {
	HourlyStats []HourlyBucket `json:"hourly_stats"`
}

// HealthResponse is the JSON response for the health check endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
