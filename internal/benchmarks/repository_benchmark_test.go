package benchmarks

import (
	"context"
	"testing"
	"time"

	"github.com/fjmerc/wifi-dashboard/internal/metrics"
	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
	"github.com/fjmerc/wifi-dashboard/internal/repository/sqlite"
	"github.com/fjmerc/wifi-dashboard/internal/testutil"
)

// seededRepository returns a SQLite repository over rows attempts spread across the last week
func seededRepository(b *testing.B, rows int) repository.AttemptRepository {
	b.Helper()

	db := testutil.SetupTestDB(b)

	now := time.Now()
	tx := db.MustBegin()
	for i := 0; i < rows; i++ {
		row := testutil.SampleAttempt(now.Add(-time.Duration(i)*time.Minute*10).Format(repository.TimestampLayout), "200")
		if i%3 == 0 {
			row.ResponseStatus = "403"
		}
		if _, err := tx.NamedExec(`
			INSERT INTO login_attempts (timestamp, username, password, a, response_status, response_message)
			VALUES (:timestamp, :username, :password, :a, :response_status, :response_message)`, row); err != nil {
			b.Fatalf("failed to seed attempts: %v", err)
		}
	}
	if err := tx.Commit(); err != nil {
		b.Fatalf("failed to commit seed: %v", err)
	}

	return sqlite.NewAttemptRepository(db)
}

// BenchmarkListAttempts benchmarks the default /api/attempts query
func BenchmarkListAttempts(b *testing.B) {
	repo := seededRepository(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := repo.ListAttempts(ctx, models.DefaultFilterParams()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkListAttemptsFiltered benchmarks a date-bounded failed-only listing
func BenchmarkListAttemptsFiltered(b *testing.B) {
	repo := seededRepository(b, 1000)
	ctx := context.Background()
	filters := models.FilterParams{
		StartDate:    time.Now().Add(-48 * time.Hour).Format(repository.TimestampLayout),
		StatusFilter: models.StatusFilterFailed,
		Limit:        100,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := repo.ListAttempts(ctx, filters); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComputeStats benchmarks the single-statement aggregate
func BenchmarkComputeStats(b *testing.B) {
	repo := seededRepository(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := repo.ComputeStats(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkHourlyStats benchmarks a week of hourly buckets
func BenchmarkHourlyStats(b *testing.B) {
	repo := seededRepository(b, 1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := repo.HourlyStats(ctx, 7); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInstrumentedStats measures the overhead of the metrics decorator
func BenchmarkInstrumentedStats(b *testing.B) {
	repo := metrics.InstrumentAttempts(seededRepository(b, 1000))
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := repo.ComputeStats(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
