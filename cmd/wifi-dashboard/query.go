package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fjmerc/wifi-dashboard/pkg/client"
)

// Environment variables read by the query subcommands
const (
	envURL      = "WIFI_DASHBOARD_URL"
	envUsername = "WIFI_DASHBOARD_USERNAME"
	envPassword = "WIFI_DASHBOARD_PASSWORD"
)

// queryOptions holds flags shared by every query subcommand
type queryOptions struct {
	baseURL  string
	username string
	timeout  time.Duration
}

func newQueryCmd() *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query a running dashboard and print JSON",
		Long: `Query a running dashboard through its JSON API.

The password is read from the WIFI_DASHBOARD_PASSWORD environment variable so
it never appears in the process list.

Examples:
  WIFI_DASHBOARD_PASSWORD=secret wifi-dashboard query stats
  wifi-dashboard query attempts --status failed --limit 20
  wifi-dashboard query hourly --days 1`,
	}

	defaultURL := os.Getenv(envURL)
	if defaultURL == "" {
		defaultURL = "http://127.0.0.1:8000"
	}
	defaultUser := os.Getenv(envUsername)
	if defaultUser == "" {
		defaultUser = "admin"
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", defaultURL, "Dashboard URL (or "+envURL+" env)")
	cmd.PersistentFlags().StringVar(&opts.username, "user", defaultUser, "Dashboard username (or "+envUsername+" env)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Request timeout")

	cmd.AddCommand(queryStatsCmd(opts))
	cmd.AddCommand(queryAttemptsCmd(opts))
	cmd.AddCommand(queryHourlyCmd(opts))

	return cmd
}

func (o *queryOptions) client() (*client.Client, error) {
	return client.New(client.Config{
		BaseURL:  o.baseURL,
		Username: o.username,
		Password: os.Getenv(envPassword),
		Timeout:  o.timeout,
	})
}

func queryStatsCmd(opts *queryOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate login statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			stats, err := c.Stats(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}

func queryAttemptsCmd(opts *queryOptions) *cobra.Command {
	var q client.AttemptQuery

	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "Print recent login attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			attempts, err := c.Attempts(cmdContext(cmd), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), attempts)
		},
	}

	cmd.Flags().StringVar(&q.StartDate, "start", "", "Only attempts at or after this timestamp")
	cmd.Flags().StringVar(&q.EndDate, "end", "", "Only attempts at or before this timestamp")
	cmd.Flags().StringVar(&q.StatusFilter, "status", "", `Filter by outcome: "success" or "failed"`)
	cmd.Flags().IntVar(&q.Limit, "limit", 0, "Maximum number of attempts (server default 50)")

	return cmd
}

func queryHourlyCmd(opts *queryOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "hourly",
		Short: "Print per-hour attempt counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}

			buckets, err := c.HourlyStats(cmdContext(cmd), days)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), buckets)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to include")

	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
