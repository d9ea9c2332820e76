// Package sqlite provides SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// AttemptRepository implements repository.AttemptRepository for SQLite.
type AttemptRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewAttemptRepository creates a new SQLite attempt repository.
func NewAttemptRepository(db *sqlx.DB) *AttemptRepository {
	return &AttemptRepository{db: db, now: time.Now}
}

// ListAttempts returns the newest attempts matching filters.
func (r *AttemptRepository) ListAttempts(ctx context.Context, filters models.FilterParams) ([]models.LoginAttempt, error) {
	query, args, err := repository.ListAttemptsQuery(filters, sq.Question)
	if err != nil {
		return nil, err
	}

	attempts := []models.LoginAttempt{}
	if err := r.db.SelectContext(ctx, &attempts, query, args...); err != nil {
		return nil, repository.StoreError("list attempts", err)
	}
	return attempts, nil
}

// ComputeStats aggregates the whole table.
func (r *AttemptRepository) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	query, args, err := repository.StatsQuery(sq.Question)
	if err != nil {
		return nil, err
	}

	var row struct {
		Total       int64          `db:"total_attempts"`
		Successful  int64          `db:"successful_attempts"`
		LastAttempt sql.NullString `db:"last_attempt"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, repository.StoreError("compute stats", err)
	}

	var last *string
	if row.LastAttempt.Valid {
		last = &row.LastAttempt.String
	}
	return repository.NewDashboardStats(row.Total, row.Successful, last), nil
}

// HourlyStats buckets the last days days of attempts by hour.
func (r *AttemptRepository) HourlyStats(ctx context.Context, days int) ([]models.HourlyBucket, error) {
	cutoff, err := repository.HourlyCutoff(r.now(), days)
	if err != nil {
		return nil, err
	}

	query, args, err := repository.HourlyStatsQuery(cutoff, sq.Question)
	if err != nil {
		return nil, err
	}

	buckets := make([]models.HourlyBucket, 0)
	if err := r.db.SelectContext(ctx, &buckets, query, args...); err != nil {
		return nil, repository.StoreError("hourly stats", err)
	}
	return repository.FinalizeBuckets(buckets), nil
}
