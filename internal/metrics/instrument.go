package metrics

import (
	"context"
	"time"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// instrumentedAttempts records query latency and failures around another repository
type instrumentedAttempts struct {
	next repository.AttemptRepository
}

// InstrumentAttempts wraps repo so every query is observed in StoreQueryDuration
// and every failure counted in StoreErrorsTotal.
func InstrumentAttempts(repo repository.AttemptRepository) repository.AttemptRepository {
	return &instrumentedAttempts{next: repo}
}

func (i *instrumentedAttempts) ListAttempts(ctx context.Context, filters models.FilterParams) ([]models.LoginAttempt, error) {
	defer observe(OperationList, time.Now())
	attempts, err := i.next.ListAttempts(ctx, filters)
	countError(OperationList, err)
	return attempts, err
}

func (i *instrumentedAttempts) ComputeStats(ctx context.Context) (*models.DashboardStats, error) {
	defer observe(OperationStats, time.Now())
	stats, err := i.next.ComputeStats(ctx)
	countError(OperationStats, err)
	return stats, err
}

func (i *instrumentedAttempts) HourlyStats(ctx context.Context, days int) ([]models.HourlyBucket, error) {
	defer observe(OperationHourly, time.Now())
	buckets, err := i.next.HourlyStats(ctx, days)
	countError(OperationHourly, err)
	return buckets, err
}

func observe(operation string, start time.Time) {
	StoreQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func countError(operation string, err error) {
	if err != nil {
		StoreErrorsTotal.WithLabelValues(operation).Inc()
	}
}
