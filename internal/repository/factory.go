package repository

// DatabaseType identifies the backend behind a Repositories value.
type DatabaseType string

const (
	DatabaseTypeSQLite   DatabaseType = "sqlite"
	DatabaseTypePostgres DatabaseType = "postgres"
)

// Repositories holds all repository implementations.
// This struct provides a single point of access to all data access layers.
type Repositories struct {
	Attempts     AttemptRepository
	Health       HealthRepository
	DatabaseType DatabaseType

	// Cleanup releases the underlying database connection.
	Cleanup func()
}
