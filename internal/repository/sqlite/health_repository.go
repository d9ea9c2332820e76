package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// HealthRepository implements health checks for SQLite databases.
type HealthRepository struct {
	db     *sqlx.DB
	dbPath string
}

// NewHealthRepository creates a new SQLite health repository.
func NewHealthRepository(db *sqlx.DB, dbPath string) *HealthRepository {
	return &HealthRepository{
		db:     db,
		dbPath: dbPath,
	}
}

// Ping performs a basic connectivity check to the database.
// For SQLite, this pings the database connection pool.
func (r *HealthRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CheckHealth confirms the login_attempts table is readable.
func (r *HealthRepository) CheckHealth(ctx context.Context) (*repository.ComponentHealth, error) {
	start := time.Now()
	health := &repository.ComponentHealth{
		Name:   "sqlite",
		Status: repository.HealthStatusHealthy,
	}

	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM "+repository.AttemptsTable+" LIMIT 1").Scan(&one)
	health.Latency = time.Since(start)

	// An empty table is healthy
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		health.Status = repository.HealthStatusUnhealthy
		health.Message = "database query failed"
		return health, repository.StoreError("health check "+r.dbPath, err)
	}

	health.Status, health.Message = repository.ClassifyLatency(health.Latency)
	return health, nil
}
