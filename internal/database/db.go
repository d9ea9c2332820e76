package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/fjmerc/wifi-dashboard/internal/config"
)

// SchemaSQLite matches the table written by the WiFi login process.
// The password column is kept for compatibility but never read.
const SchemaSQLite = `
CREATE TABLE IF NOT EXISTS login_attempts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT,
    username TEXT,
    password TEXT,
    a TEXT,
    response_status TEXT,
    response_message TEXT
);
`

// SchemaPostgres is the PostgreSQL equivalent of SchemaSQLite
const SchemaPostgres = `
CREATE TABLE IF NOT EXISTS login_attempts (
    id SERIAL PRIMARY KEY,
    timestamp TEXT,
    username TEXT,
    password TEXT,
    a TEXT,
    response_status TEXT,
    response_message TEXT
);
`

// Initialize opens the configured store and makes sure the login_attempts table exists
func Initialize(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return InitializePostgres(cfg.DBDSN)
	default:
		return InitializeSQLite(cfg.DBPath)
	}
}

// InitializeSQLite creates the database file and schema when missing, then opens a
// read-only connection pool over it.
func InitializeSQLite(dbPath string) (*sqlx.DB, error) {
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		slog.Warn("database not found, creating empty database", "path", dbPath)
	}

	// Schema creation needs a writable handle; the serving pool below is query-only
	boot, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := boot.Exec(SchemaSQLite); err != nil {
		boot.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := boot.Close(); err != nil {
		return nil, fmt.Errorf("failed to close bootstrap connection: %w", err)
	}

	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=query_only(1)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializePostgres connects through pgx and creates the table if absent
func InitializePostgres(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(SchemaPostgres); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}
