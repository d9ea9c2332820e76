// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// AttemptRepository implements repository.AttemptRepository for PostgreSQL.
type AttemptRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewAttemptRepository creates a new PostgreSQL attempt repository.
func NewAttemptRepository(db *sqlx.DB) *AttemptRepository {
	return &AttemptRepository{db: db, now: time.Now}
}

// ListAttempts returns the newest attempts matching filters.
func (r *AttemptRepository) ListAttempts(ctx context.Context, filters models.FilterParams) ([]models.LoginAttempt, error) {
	query, args, err := repository.ListAttemptsQuery(filters, sq.Dollar)
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
	query, args, err := repository.StatsQuery(sq.Dollar)
	if err != nil {
		return nil, err
	}

	var total, successful int64
	var last sql.NullString
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&total, &successful, &last); err != nil {
		return nil, repository.StoreError("compute stats", err)
	}

	if !last.Valid {
		return repository.NewDashboardStats(total, successful, nil), nil
	}
	return repository.NewDashboardStats(total, successful, &last.String), nil
}

// HourlyStats buckets the last days days of attempts by hour.
func (r *AttemptRepository) HourlyStats(ctx context.Context, days int) ([]models.HourlyBucket, error) {
	cutoff, err := repository.HourlyCutoff(r.now(), days)
	if err != nil {
		return nil, err
	}

	query, args, err := repository.HourlyStatsQuery(cutoff, sq.Dollar)
	if err != nil {
		return nil, err
	}

	buckets := []models.HourlyBucket{}
	if err := r.db.SelectContext(ctx, &buckets, query, args...); err != nil {
		return nil, repository.StoreError("hourly stats", err)
	}
	return repository.FinalizeBuckets(buckets), nil
}
