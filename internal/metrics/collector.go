package metrics

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// collectTimeout bounds the stats query run on each scrape
const collectTimeout = 5 * time.Second

// AttemptsCollector collects login attempt totals from the store on each scrape
type AttemptsCollector struct {
	repo repository.AttemptRepository

	// Metric descriptors
	loginAttempts *prometheus.Desc
	successRate   *prometheus.Desc
	statsUp       *prometheus.Desc
}

// NewAttemptsCollector creates a new collector
func NewAttemptsCollector(repo repository.AttemptRepository) *AttemptsCollector {
	return &AttemptsCollector{
		repo: repo,
		loginAttempts: prometheus.NewDesc(
			"wifi_dashboard_login_attempts",
			"Number of recorded login attempts by outcome",
			[]string{"status"}, nil,
		),
		successRate: prometheus.NewDesc(
			"wifi_dashboard_login_success_rate",
			"Percentage of recorded login attempts that succeeded (0-100)",
			nil, nil,
		),
		statsUp: prometheus.NewDesc(
			"wifi_dashboard_login_stats_up",
			"Whether the last scrape could read login attempt stats (1) or not (0)",
			nil, nil,
		),
	}
}

// Describe sends metric descriptors to Prometheus
func (c *AttemptsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.loginAttempts
	ch <- c.successRate
	ch <- c.statsUp
}

// Collect fetches current stats from the store and sends them to Prometheus
func (c *AttemptsCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	stats, err := c.repo.ComputeStats(ctx)
	if err != nil {
		// Only the up gauge is exported so a failed read is not mistaken for zero attempts
		slog.Error("failed to query login attempt metrics", "error", err)
		ch <- prometheus.MustNewConstMetric(c.statsUp, prometheus.GaugeValue, 0)
		return
	}

	ch <- prometheus.MustNewConstMetric(c.statsUp, prometheus.GaugeValue, 1)
	ch <- prometheus.MustNewConstMetric(c.loginAttempts, prometheus.GaugeValue, float64(stats.SuccessfulAttempts), "success")
	ch <- prometheus.MustNewConstMetric(c.loginAttempts, prometheus.GaugeValue, float64(stats.FailedAttempts), "failed")
	ch <- prometheus.MustNewConstMetric(c.successRate, prometheus.GaugeValue, stats.SuccessRate)
}
