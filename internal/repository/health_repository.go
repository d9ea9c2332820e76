package repository

import (
	"context"
	"time"
)

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Name    string        `json:"name"`
	Status  HealthStatus  `json:"status"`
	Latency time.Duration `json:"latency_ns,omitempty"`
	Message string        `json:"message,omitempty"`
}

// HealthRepository provides health check operations for the database.
type HealthRepository interface {
	// Ping performs a basic connectivity check to the database.
	Ping(ctx context.Context) error

	// CheckHealth runs a trivial query against the login_attempts table and
	// reports latency.
	CheckHealth(ctx context.Context) (*ComponentHealth, error)
}

// slowQueryThreshold marks a store as degraded
const slowQueryThreshold = 100 * time.Millisecond

// ClassifyLatency returns the status for a successful health query of the given latency
func ClassifyLatency(latency time.Duration) (HealthStatus, string) {
	if latency > slowQueryThreshold {
		return HealthStatusDegraded, "high query latency"
	}
	return HealthStatusHealthy, ""
}
