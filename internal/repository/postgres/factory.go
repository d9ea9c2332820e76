package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// NewRepositories creates all PostgreSQL repository implementations over an
// already opened pgx-backed pool.
func NewRepositories(db *sqlx.DB) (*repository.Repositories, error) {
	if db == nil {
		return nil, repository.ErrNilDatabase
	}

	return &repository.Repositories{
		Attempts:     NewAttemptRepository(db),
		Health:       NewHealthRepository(db),
		DatabaseType: repository.DatabaseTypePostgres,
		Cleanup: func() {
			db.Close()
		},
	}, nil
}
