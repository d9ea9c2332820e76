package sqlite

import (
	"github.com/jmoiron/sqlx"

	"github.com/fjmerc/wifi-dashboard/internal/config"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// NewRepositories creates all SQLite repository implementations.
// The db parameter must be a valid, open database connection.
//
// Returns the repositories struct with DatabaseType set to "sqlite" and
// a Cleanup function that closes the database connection.
func NewRepositories(cfg *config.Config, db *sqlx.DB) (*repository.Repositories, error) {
	if db == nil {
		return nil, repository.ErrNilDatabase
	}

	// Handle nil config gracefully for testing scenarios
	dbPath := ""
	if cfg != nil {
		dbPath = cfg.DBPath
	}

	return &repository.Repositories{
		Attempts:     NewAttemptRepository(db),
		Health:       NewHealthRepository(db, dbPath),
		DatabaseType: repository.DatabaseTypeSQLite,
		Cleanup: func() {
			db.Close()
		},
	}, nil
}
