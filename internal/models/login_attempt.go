package models

// Status values accepted by FilterParams.StatusFilter
const (
	StatusFilterSuccess = "success"
	StatusFilterFailed  = "failed"
)

// SuccessStatus is the response_status value the external writer records for a successful login.
const SuccessStatus = "200"

// DefaultAttemptLimit caps /api/attempts results when no limit is given
const DefaultAttemptLimit = 50

// LoginAttempt represents one row of the login_attempts table.
// The password column is never selected, so it has no field here.
type LoginAttempt struct {
	ID              int64  `db:"id" json:"id"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
	Username        string `db:"username" json:"username"`
	A               string `db:"a" json:"a"`
	ResponseStatus  string `db:"response_status" json:"response_status"`
	ResponseMessage string `db:"response_message" json:"response_message"`
}

// Successful reports whether the attempt was accepted by the captive portal
func (a LoginAttempt) Successful() bool {
	return a.ResponseStatus == SuccessStatus
}

// FilterParams narrows a login attempt listing. Empty strings mean "no bound".
// StartDate and EndDate are inclusive and compared lexicographically against the timestamp.
type FilterParams struct {
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	StatusFilter string `json:"status_filter,omitempty" validate:"omitempty,oneof=success failed"`
	Limit        int    `json:"limit" validate:"gt=0"`
}

// DefaultFilterParams returns an unfiltered listing capped at DefaultAttemptLimit
func DefaultFilterParams() FilterParams {
	return FilterParams{Limit: DefaultAttemptLimit}
}

// DashboardStats is recomputed from the table on every read
type DashboardStats struct {
	TotalAttempts      int64   `db:"total_attempts" json:"total_attempts"`
	SuccessfulAttempts int64   `db:"successful_attempts" json:"successful_attempts"`
	FailedAttempts     int64   `json:"failed_attempts"`
	SuccessRate        float64 `json:"success_rate"`
	LastAttempt        *string `db:"last_attempt" json:"last_attempt"`
}

// HourlyBucket aggregates the attempts of one hour, keyed "YYYY-MM-DD HH"
type HourlyBucket struct {
	Hour               string `db:"hour" json:"hour"`
	TotalAttempts      int64  `db:"total_attempts" json:"total_attempts"`
	SuccessfulAttempts int64  `db:"successful_attempts" json:"successful_attempts"`
	FailedAttempts     int64  `json:"failed_attempts"`
}
