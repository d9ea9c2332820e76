package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// ErrStubStore is returned by StubAttempts when Fail is set
var ErrStubStore = repository.StoreError("stub", errors.New("database is locked"))

// StubAttempts is an in-memory repository.AttemptRepository with canned results.
// It records the last filters and days it was called with.
type StubAttempts struct {
	mu sync.Mutex

	Attempts []models.LoginAttempt
	Stats    models.DashboardStats
	Buckets  []models.HourlyBucket
	Fail     bool

	LastFilters models.FilterParams
	LastDays    int
	Calls       int
}

func (s *StubAttempts) ListAttempts(_ context.Context, filters models.FilterParams) ([]models.LoginAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	s.LastFilters = filters
	if s.Fail {
		return nil, ErrStubStore
	}

	attempts := s.Attempts
	if attempts == nil {
		attempts = []models.LoginAttempt{}
	}
	if filters.Limit > 0 && len(attempts) > filters.Limit {
		attempts = attempts[:filters.Limit]
	}
	return attempts, nil
}

func (s *StubAttempts) ComputeStats(_ context.Context) (*models.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	if s.Fail {
		return nil, ErrStubStore
	}
	stats := s.Stats
	return &stats, nil
}

func (s *StubAttempts) HourlyStats(_ context.Context, days int) ([]models.HourlyBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	s.LastDays = days
	if s.Fail {
		return nil, ErrStubStore
	}
	if s.Buckets == nil {
		return []models.HourlyBucket{}, nil
	}
	return s.Buckets, nil
}

// StubHealth is a repository.HealthRepository reporting a fixed status
type StubHealth struct {
	Err error
}

func (s *StubHealth) Ping(_ context.Context) error {
	return s.Err
}

func (s *StubHealth) CheckHealth(_ context.Context) (*repository.ComponentHealth, error) {
	if s.Err != nil {
		return &repository.ComponentHealth{Name: "stub", Status: repository.HealthStatusUnhealthy, Message: "database query failed"}, s.Err
	}
	return &repository.ComponentHealth{Name: "stub", Status: repository.HealthStatusHealthy}, nil
}
