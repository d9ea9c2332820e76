package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Built-in defaults used when config.json is absent, malformed, or missing a field
const (
	DefaultHost               = "127.0.0.1"
	DefaultPort               = 8000
	DefaultUsername           = "admin"
	DefaultPassword           = "admin123"
	DefaultDBDriver           = "sqlite"
	DefaultDBPath             = "wifi_log.db"
	DefaultRateLimitPerMinute = 120

	envPrefix = "WIFI_DASHBOARD_"
)

// Config holds the dashboard configuration. It is built once at startup and
// passed by pointer into middleware and handlers.
type Config struct {
	Host               string
	Port               int
	Username           string
	Password           string
	PasswordHash       string // Optional: bcrypt hash, takes precedence over Password
	SecretKey          string
	DBDriver           string // sqlite or postgres
	DBPath             string // SQLite file path
	DBDSN              string // PostgreSQL connection string
	RateLimitPerMinute int    // API requests per minute per IP (0 = unlimited)
	Debug              bool   // Set from the --debug flag only
}

// keys maps the fields of the nested "dashboard" object to their env overrides
var keys = map[string]string{
	"dashboard.host":                  envPrefix + "HOST",
	"dashboard.port":                  envPrefix + "PORT",
	"dashboard.username":              envPrefix + "USERNAME",
	"dashboard.password":              envPrefix + "PASSWORD",
	"dashboard.password_hash":         envPrefix + "PASSWORD_HASH",
	"dashboard.secret_key":            envPrefix + "SECRET_KEY",
	"dashboard.db_driver":             envPrefix + "DB_DRIVER",
	"dashboard.db_path":               envPrefix + "DB_PATH",
	"dashboard.db_dsn":                envPrefix + "DB_DSN",
	"dashboard.rate_limit_per_minute": envPrefix + "RATE_LIMIT_PER_MINUTE",
}

var validate = validator.New()

// defaultSecretKey is generated once per process so repeated loads agree
var defaultSecretKey = sync.OnceValue(func() string {
	key, err := GenerateSecretKey()
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return key
})

// GenerateSecretKey returns a URL-safe token carrying 32 bytes of entropy
func GenerateSecretKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Username:           DefaultUsername,
		Password:           DefaultPassword,
		SecretKey:          defaultSecretKey(),
		DBDriver:           DefaultDBDriver,
		DBPath:             DefaultDBPath,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
	}
}

// Load reads the JSON config file at path. It never fails: a missing file, invalid
// JSON, or a "dashboard" value that is not an object all yield the defaults, and each
// field missing from the "dashboard" object falls back to its own default.
// Environment variables (optionally from .env) override file values.
func Load(path string) *Config {
	_ = godotenv.Load()

	if path == "" {
		return fromViper(newViper())
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("config file not found, using default dashboard configuration", "path", path)
		} else {
			slog.Warn("config file unreadable, using default dashboard configuration", "path", path, "error", err)
		}
		return fromViper(newViper())
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		slog.Warn("invalid config file, using default dashboard configuration", "path", path, "error", err)
		return fromViper(newViper())
	}

	if raw := v.Get("dashboard"); raw != nil {
		if _, ok := raw.(map[string]any); !ok {
			slog.Warn("config file has no dashboard object, using default dashboard configuration", "path", path)
			return fromViper(newViper())
		}
	}

	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Defaults()

	v.SetDefault("dashboard.host", d.Host)
	v.SetDefault("dashboard.port", d.Port)
	v.SetDefault("dashboard.username", d.Username)
	v.SetDefault("dashboard.password", d.Password)
	v.SetDefault("dashboard.password_hash", "")
	v.SetDefault("dashboard.secret_key", d.SecretKey)
	v.SetDefault("dashboard.db_driver", d.DBDriver)
	v.SetDefault("dashboard.db_path", d.DBPath)
	v.SetDefault("dashboard.db_dsn", "")
	v.SetDefault("dashboard.rate_limit_per_minute", d.RateLimitPerMinute)

	for key, env := range keys {
		_ = v.BindEnv(key, env)
	}

	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Host:               v.GetString("dashboard.host"),
		Port:               v.GetInt("dashboard.port"),
		Username:           v.GetString("dashboard.username"),
		Password:           v.GetString("dashboard.password"),
		PasswordHash:       v.GetString("dashboard.password_hash"),
		SecretKey:          v.GetString("dashboard.secret_key"),
		DBDriver:           v.GetString("dashboard.db_driver"),
		DBPath:             v.GetString("dashboard.db_path"),
		DBDSN:              v.GetString("dashboard.db_dsn"),
		RateLimitPerMinute: v.GetInt("dashboard.rate_limit_per_minute"),
	}
	cfg.sanitize()
	return cfg
}

// sanitize reverts each invalid field to its default and logs a warning for it
func (c *Config) sanitize() {
	d := Defaults()

	checks := []struct {
		field string
		value any
		tag   string
		reset func()
	}{
		{"host", c.Host, "required", func() { c.Host = d.Host }},
		{"port", c.Port, "min=1,max=65535", func() { c.Port = d.Port }},
		{"username", c.Username, "required", func() { c.Username = d.Username }},
		{"password", c.Password, "required", func() { c.Password = d.Password }},
		{"secret_key", c.SecretKey, "required", func() { c.SecretKey = d.SecretKey }},
		{"db_driver", c.DBDriver, "oneof=sqlite postgres", func() { c.DBDriver = d.DBDriver }},
		{"rate_limit_per_minute", c.RateLimitPerMinute, "gte=0", func() { c.RateLimitPerMinute = d.RateLimitPerMinute }},
	}

	for _, check := range checks {
		if err := validate.Var(check.value, check.tag); err != nil {
			slog.Warn("invalid dashboard config value, using default", "field", check.field)
			check.reset()
		}
	}

	if c.DBDriver == "sqlite" && c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.DBDriver == "postgres" && c.DBDSN == "" {
		slog.Warn("db_driver is postgres but db_dsn is empty, falling back to sqlite")
		c.DBDriver = d.DBDriver
	}
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// UsesDefaultCredentials reports whether the operator left admin/admin123 in place
func (c *Config) UsesDefaultCredentials() bool {
	return c.Username == DefaultUsername && c.Password == DefaultPassword && c.PasswordHash == ""
}
