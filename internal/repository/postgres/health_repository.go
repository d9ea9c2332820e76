package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// HealthRepository implements health checks for PostgreSQL databases.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository creates a new PostgreSQL health repository.
func NewHealthRepository(db *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: db}
}

// Ping performs a basic connectivity check to the database.
func (r *HealthRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CheckHealth confirms the login_attempts table is readable.
func (r *HealthRepository) CheckHealth(ctx context.Context) (*repository.ComponentHealth, error) {
	start := time.Now()
	health := &repository.ComponentHealth{
		Name:   "postgresql",
		Status: repository.HealthStatusHealthy,
	}

	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM "+repository.AttemptsTable+" LIMIT 1").Scan(&one)
	health.Latency = time.Since(start)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		health.Status = repository.HealthStatusUnhealthy
		health.Message = "database query failed"
		return health, repository.StoreError("health check", err)
	}

	health.Status, health.Message = repository.ClassifyLatency(health.Latency)
	return health, nil
}
