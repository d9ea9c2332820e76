// wifi-dashboard serves a read-only web dashboard over the login_attempts table
// written by the WiFi auto-login process.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fjmerc/wifi-dashboard/internal/config"
	"github.com/fjmerc/wifi-dashboard/internal/database"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
	"github.com/fjmerc/wifi-dashboard/internal/repository/postgres"
	"github.com/fjmerc/wifi-dashboard/internal/repository/sqlite"
	"github.com/fjmerc/wifi-dashboard/internal/routes"
)

// shutdownTimeout is how long outstanding requests get after SIGINT/SIGTERM
const shutdownTimeout = 10 * time.Second

// serveOptions holds the root command's flags
type serveOptions struct {
	host       string
	port       int
	debug      bool
	configPath string
	dbPath     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "wifi-dashboard",
		Short: "WiFi Auto Auth Dashboard - monitor captive portal login attempts",
		Long: `Serves a password-protected dashboard and JSON API over the login_attempts
table recorded by the WiFi auto-login process.

Configuration is read from the "dashboard" object of config.json and may be
overridden with WIFI_DASHBOARD_* environment variables. Flags override both
when given explicitly.

Examples:
  wifi-dashboard
  wifi-dashboard --host 0.0.0.0 --port 9000
  wifi-dashboard --debug --db /var/lib/wifi/wifi_log.db
  wifi-dashboard query stats`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.debug))

			cfg := config.Load(opts.configPath)
			applyFlags(cmd.Flags(), opts, cfg)

			return serve(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.host, "host", config.DefaultHost, "Host to bind the server")
	flags.IntVar(&opts.port, "port", config.DefaultPort, "Port to bind the server")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.configPath, "config", "config.json", "Path to the JSON config file")
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides config)")

	cmd.AddCommand(newQueryCmd())

	return cmd
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(flags *pflag.FlagSet, opts *serveOptions, cfg *config.Config) {
	if flags.Changed("host") {
		cfg.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Port = opts.port
	}
	if flags.Changed("db") && opts.dbPath != "" {
		cfg.DBDriver = config.DefaultDBDriver
		cfg.DBPath = opts.dbPath
	}
	cfg.Debug = opts.debug
}

// newLogger returns a JSON logger, or a human-readable debug logger when debug is set
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if debug {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// newRepositories picks the repository backend matching the configured driver
func newRepositories(cfg *config.Config, db *sqlx.DB) (*repository.Repositories, error) {
	switch cfg.DBDriver {
	case string(repository.DatabaseTypePostgres):
		return postgres.NewRepositories(db)
	default:
		return sqlite.NewRepositories(cfg, db)
	}
}

func serve(cfg *config.Config) error {
	slog.Info("starting wifi dashboard",
		"url", "http://"+cfg.Addr(),
		"username", cfg.Username,
		"db_driver", cfg.DBDriver,
		"debug", cfg.Debug,
	)
	if cfg.UsesDefaultCredentials() {
		slog.Warn("dashboard is using the default credentials; set username and password in config.json")
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	repos, err := newRepositories(cfg, db)
	if err != nil {
		db.Close()
		return err
	}
	defer repos.Cleanup()

	slog.Info("database initialized", "type", repos.DatabaseType)

	handler, err := routes.New(cfg, repos)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			if err := server.Close(); err != nil {
				slog.Error("server close failed", "error", err)
			}
			return err
		}

		slog.Info("server shutdown complete")
		return nil
	}
}
