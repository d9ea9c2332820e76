// Package repository defines interfaces for data access operations.
// This package provides abstractions for database operations, allowing
// different backend implementations (SQLite, PostgreSQL) to be swapped
// without changing application code.
//
// The dashboard never writes: every repository here is read-only over the
// login_attempts table maintained by the external WiFi login process.
package repository

import (
	"context"
	"errors"

	"github.com/fjmerc/wifi-dashboard/internal/models"
)

// Common errors returned by repository operations.
var (
	// ErrStoreAccess wraps any failure reading the underlying store.
	ErrStoreAccess = errors.New("store access failed")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNilDatabase is returned when a nil database connection is provided.
	ErrNilDatabase = errors.New("nil database connection")
)

// AttemptRepository is the read-only query layer over login_attempts.
// Every method returns a fully materialised result.
type AttemptRepository interface {
	// ListAttempts returns attempts matching all given filters, newest first,
	// capped at filters.Limit.
	ListAttempts(ctx context.Context, filters models.FilterParams) ([]models.LoginAttempt, error)

	// ComputeStats aggregates the whole table.
	ComputeStats(ctx context.Context) (*models.DashboardStats, error)

	// HourlyStats buckets attempts from the last days days by hour, oldest first.
	// Hours without attempts are omitted.
	HourlyStats(ctx context.Context, days int) ([]models.HourlyBucket, error)
}
