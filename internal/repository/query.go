package repository

import (
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fjmerc/wifi-dashboard/internal/models"
)

// AttemptsTable is the table written by the WiFi login process
const AttemptsTable = "login_attempts"

// TimestampLayout is the layout the writer uses for login_attempts.timestamp
const TimestampLayout = "2006-01-02 15:04:05"

// hourExpr truncates a timestamp to "YYYY-MM-DD HH" for either date/time separator
const hourExpr = "replace(substr(timestamp, 1, 13), 'T', ' ')"

// successSumExpr counts successful rows; NULL-safe on an empty table
const successSumExpr = "COALESCE(SUM(CASE WHEN response_status = ? THEN 1 ELSE 0 END), 0)"

// attemptColumns deliberately omits the password column
var attemptColumns = []string{
	"id",
	"COALESCE(timestamp, '') AS timestamp",
	"COALESCE(username, '') AS username",
	"COALESCE(a, '') AS a",
	"COALESCE(response_status, '') AS response_status",
	"COALESCE(response_message, '') AS response_message",
}

// ListAttemptsQuery builds the filtered listing. All predicates are AND-combined
// and every value is bound as a parameter.
func ListAttemptsQuery(filters models.FilterParams, format sq.PlaceholderFormat) (string, []any, error) {
	if filters.Limit <= 0 {
		return "", nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, filters.Limit)
	}

	q := sq.Select(attemptColumns...).From(AttemptsTable)

	if filters.StartDate != "" {
		q = q.Where(sq.GtOrEq{"timestamp": filters.StartDate})
	}
	if filters.EndDate != "" {
		q = q.Where(sq.LtOrEq{"timestamp": filters.EndDate})
	}

	switch filters.StatusFilter {
	case "":
	case models.StatusFilterSuccess:
		q = q.Where(sq.Eq{"response_status": models.SuccessStatus})
	case models.StatusFilterFailed:
		// NULL statuses count as failures, matching ComputeStats
		q = q.Where(sq.Expr("COALESCE(response_status, '') <> ?", models.SuccessStatus))
	default:
		return "", nil, fmt.Errorf("%w: unknown status filter %q", ErrInvalidInput, filters.StatusFilter)
	}

	return q.OrderBy("timestamp DESC").
		Suffix("LIMIT ?", filters.Limit).
		PlaceholderFormat(format).
		ToSql()
}

// StatsQuery aggregates total, successful and latest timestamp in one statement so
// the three values come from the same snapshot.
func StatsQuery(format sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select("COUNT(*) AS total_attempts").
		Column(sq.Expr(successSumExpr+" AS successful_attempts", models.SuccessStatus)).
		Column("MAX(timestamp) AS last_attempt").
		From(AttemptsTable).
		PlaceholderFormat(format).
		ToSql()
}

// HourlyStatsQuery groups rows at or after cutoff by hour, oldest hour first
func HourlyStatsQuery(cutoff string, format sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(hourExpr+" AS hour", "COUNT(*) AS total_attempts").
		Column(sq.Expr(successSumExpr+" AS successful_attempts", models.SuccessStatus)).
		From(AttemptsTable).
		Where(sq.Expr("replace(timestamp, 'T', ' ') >= ?", cutoff)).
		GroupBy("hour").
		OrderBy("hour ASC").
		PlaceholderFormat(format).
		ToSql()
}

// maxCutoffDays is the widest window expressible as a time.Duration
const maxCutoffDays = int(math.MaxInt64 / int64(24*time.Hour))

// earliestCutoff sorts before every stored timestamp
const earliestCutoff = "0000-01-01 00:00:00"

// HourlyCutoff returns now minus days days in TimestampLayout.
// Windows wider than maxCutoffDays include every row.
func HourlyCutoff(now time.Time, days int) (string, error) {
	if days < 0 {
		return "", fmt.Errorf("%w: days must not be negative, got %d", ErrInvalidInput, days)
	}
	if days > maxCutoffDays {
		return earliestCutoff, nil
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour).Format(TimestampLayout), nil
}

// NewDashboardStats derives failed count and success rate from the raw aggregates
func NewDashboardStats(total, successful int64, lastAttempt *string) *models.DashboardStats {
	stats := &models.DashboardStats{
		TotalAttempts:      total,
		SuccessfulAttempts: successful,
		FailedAttempts:     total - successful,
	}
	if total > 0 {
		stats.SuccessRate = math.Round(float64(successful)/float64(total)*100*100) / 100
		stats.LastAttempt = lastAttempt
	}
	return stats
}

// FinalizeBuckets fills in the derived failed count of each bucket
func FinalizeBuckets(buckets []models.HourlyBucket) []models.HourlyBucket {
	for i := range buckets {
		buckets[i].FailedAttempts = buckets[i].TotalAttempts - buckets[i].SuccessfulAttempts
	}
	return buckets
}

// StoreError wraps a driver error so callers can match ErrStoreAccess
func StoreError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreAccess, op, err)
}
