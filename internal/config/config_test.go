package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars blanks every override so the host environment cannot leak into tests
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, env := range keys {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertDefaults(t *testing.T, cfg *Config) {
	t.Helper()
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultUsername, cfg.Username)
	assert.Equal(t, DefaultPassword, cfg.Password)
	assert.Equal(t, DefaultDBDriver, cfg.DBDriver)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnvVars(t)

	cfg := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assertDefaults(t, cfg)
	assert.True(t, cfg.UsesDefaultCredentials())
	assert.Equal(t, "127.0.0.1:8000", cfg.Addr())
}

func TestLoad_EmptyPath(t *testing.T) {
	clearEnvVars(t)
	assertDefaults(t, Load(""))
}

func TestLoad_InvalidJSON(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{"dashboard": {"port": 9000,`)
	assertDefaults(t, Load(path))
}

func TestLoad_DashboardNotAnObject(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{"dashboard": "nope"}`)
	assertDefaults(t, Load(path))
}

func TestLoad_NoDashboardKey(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{"wifi": {"ssid": "campus"}}`)
	assertDefaults(t, Load(path))
}

func TestLoad_FullConfiguration(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{
		"dashboard": {
			"host": "0.0.0.0",
			"port": 9090,
			"username": "operator",
			"password": "s3cret",
			"secret_key": "fixed-secret",
			"db_path": "/var/lib/wifi/wifi_log.db",
			"rate_limit_per_minute": 30
		}
	}`)

	cfg := Load(path)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "operator", cfg.Username)
	assert.Equal(t, "s3cret", cfg.Password)
	assert.Equal(t, "fixed-secret", cfg.SecretKey)
	assert.Equal(t, "/var/lib/wifi/wifi_log.db", cfg.DBPath)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.False(t, cfg.UsesDefaultCredentials())
}

func TestLoad_PartialConfigurationFallsBackPerField(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{"dashboard": {"port": 9000, "password": "changed"}}`)
	cfg := Load(path)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "changed", cfg.Password)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultUsername, cfg.Username)
	assert.NotEmpty(t, cfg.SecretKey)
}

func TestLoad_InvalidValuesRevertToDefaults(t *testing.T) {
	clearEnvVars(t)

	tests := []struct {
		name  string
		json  string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name:  "port out of range",
			json:  `{"dashboard": {"port": 70000}}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultPort, cfg.Port) },
		},
		{
			name:  "empty username",
			json:  `{"dashboard": {"username": ""}}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultUsername, cfg.Username) },
		},
		{
			name:  "unknown driver",
			json:  `{"dashboard": {"db_driver": "oracle"}}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultDBDriver, cfg.DBDriver) },
		},
		{
			name:  "postgres without dsn",
			json:  `{"dashboard": {"db_driver": "postgres"}}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultDBDriver, cfg.DBDriver) },
		},
		{
			name:  "negative rate limit",
			json:  `{"dashboard": {"rate_limit_per_minute": -1}}`,
			check: func(t *testing.T, cfg *Config) { assert.Equal(t, DefaultRateLimitPerMinute, cfg.RateLimitPerMinute) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Load(writeConfig(t, tt.json)))
		})
	}
}

func TestLoad_PostgresDriver(t *testing.T) {
	clearEnvVars(t)

	path := writeConfig(t, `{"dashboard": {"db_driver": "postgres", "db_dsn": "postgres://wifi@localhost/wifi"}}`)
	cfg := Load(path)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://wifi@localhost/wifi", cfg.DBDSN)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("WIFI_DASHBOARD_PORT", "8443")
	t.Setenv("WIFI_DASHBOARD_USERNAME", "envuser")

	path := writeConfig(t, `{"dashboard": {"port": 9000, "username": "fileuser"}}`)
	cfg := Load(path)

	assert.Equal(t, 8443, cfg.Port)
	assert.Equal(t, "envuser", cfg.Username)
}

func TestLoad_SecretKeyStableWithinProcess(t *testing.T) {
	clearEnvVars(t)

	first := Load("")
	second := Load("")

	assert.Equal(t, first.SecretKey, second.SecretKey)
}

func TestGenerateSecretKey(t *testing.T) {
	key, err := GenerateSecretKey()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	other, err := GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
