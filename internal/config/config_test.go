package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postgresYAML = `
env: "test"
http_server:
  address: ":8081"
store:
  driver: "postgres"
database:
  PG_HOST: "dbhost"
  PG_PORT: "5433"
  PG_USER: "bartender"
  PG_PASSWORD: "secret"
  PG_DBNAME: "bar"
  PG_SSLMODE: "disable"
  QUERY_TIMEOUT: "2s"
redis:
  REDIS_HOST: "redishost"
  REDIS_USER: "redisuser"
  REDIS_PASSWORD: "redispassword"
  REDIS_PORT: "6380"
  REDIS_DB: 1
rateConfig:
  MAX_ATTEMPTS: 10
  WINDOW_SIZE: "30s"
security:
  JWT_KEY: "testjwtkey"
  JWT_EXPIRY_HOURS: 48
scraper:
  timeout: "5s"
  workers: 8
  cache_ttl: "1h"
scheduler:
  enabled: true
  interval: "30m"
otel:
  SERVICE_NAME: "tracker-test"
  EXPORTER_ENDPOINT: "http://otel:4318/v1/traces"
  SAMPLER_RATIO: 0.5
cache:
  default_ttl: "10m"
`

const memoryYAML = `
store:
  driver: "memory"
security:
  JWT_KEY: "k"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigFromPath(t *testing.T) {
	t.Run("Success - every section read from file", func(t *testing.T) {
		// Arrange
		unsetEnv(t, "PG_HOST", "STORE_DRIVER", "SCRAPER_WORKERS", "JWT_KEY")
		path := writeConfig(t, postgresYAML)

		// Act
		cfg, err := LoadConfigFromPath(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "test", cfg.Env)
		assert.Equal(t, ":8081", cfg.HTTPServer.Addr)
		assert.Equal(t, "postgres", cfg.Store.Driver)
		assert.Equal(t, "dbhost", cfg.Database.Host)
		assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, "redisuser", cfg.RedisConnect.Username)
		assert.Equal(t, int64(10), cfg.RateConfig.MaxAttempts)
		assert.Equal(t, 30*time.Second, cfg.RateConfig.WindowSize)
		assert.Equal(t, 48, cfg.Security.JWTExpiryHours)
		assert.Equal(t, 5*time.Second, cfg.Scraper.Timeout)
		assert.Equal(t, 8, cfg.Scraper.Workers)
		assert.Equal(t, time.Hour, cfg.Scraper.CacheTTL)
		assert.True(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 30*time.Minute, cfg.Scheduler.Interval)
		assert.Equal(t, "tracker-test", cfg.Otel.ServiceName)
		assert.InDelta(t, 0.5, cfg.Otel.SamplerRatio, 1e-9)
		assert.Equal(t, 10*time.Minute, cfg.Cache.DefaultTTL)
	})

	t.Run("Success - defaults for omitted fields", func(t *testing.T) {
		// Arrange
		unsetEnv(t, "SCRAPER_WORKERS", "SCRAPER_TIMEOUT", "SCHEDULER_INTERVAL", "SCRAPER_CACHE_TTL", "HTTP_ADDRESS")
		path := writeConfig(t, memoryYAML)

		// Act
		cfg, err := LoadConfigFromPath(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.HTTPServer.Addr)
		assert.Equal(t, 4, cfg.Scraper.Workers)
		assert.Equal(t, 10*time.Second, cfg.Scraper.Timeout)
		assert.Equal(t, 15*time.Minute, cfg.Scraper.CacheTTL)
		assert.Equal(t, int64(5242880), cfg.Scraper.MaxBodyBytes)
		assert.False(t, cfg.Scheduler.Enabled)
		assert.Equal(t, 6*time.Hour, cfg.Scheduler.Interval)
		assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 24, cfg.Security.JWTExpiryHours)
	})

	t.Run("Success - environment overrides file", func(t *testing.T) {
		// Arrange
		path := writeConfig(t, postgresYAML)
		t.Setenv("PG_HOST", "envhost")
		t.Setenv("SCRAPER_WORKERS", "2")
		t.Setenv("SCHEDULER_ENABLED", "false")

		// Act
		cfg, err := LoadConfigFromPath(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "envhost", cfg.Database.Host)
		assert.Equal(t, 2, cfg.Scraper.Workers)
		assert.False(t, cfg.Scheduler.Enabled)
	})

	t.Run("Failure - missing file", func(t *testing.T) {
		// Act
		cfg, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))

		// Assert
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("Failure - jwt key required", func(t *testing.T) {
		// Arrange
		unsetEnv(t, "JWT_KEY")
		path := writeConfig(t, "store:\n  driver: \"memory\"\n")

		// Act
		_, err := LoadConfigFromPath(path)

		// Assert
		require.Error(t, err)
	})
}

func TestLoadConfigFromPath_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "Failure - unknown store driver",
			yaml:    "store:\n  driver: \"mongo\"\nsecurity:\n  JWT_KEY: \"k\"\n",
			wantErr: "unknown store driver",
		},
		{
			name:    "Failure - postgres without credentials",
			yaml:    "store:\n  driver: \"postgres\"\nsecurity:\n  JWT_KEY: \"k\"\n",
			wantErr: "database credentials are required",
		},
		{
			name:    "Failure - firestore without project",
			yaml:    "store:\n  driver: \"firestore\"\nsecurity:\n  JWT_KEY: \"k\"\n",
			wantErr: "firestore project id is required",
		},
		{
			name:    "Failure - negative scraper workers",
			yaml:    memoryYAML + "scraper:\n  workers: -1\n",
			wantErr: "scraper workers must be at least 1",
		},
		{
			name:    "Failure - negative scraper timeout",
			yaml:    memoryYAML + "scraper:\n  timeout: \"-1s\"\n",
			wantErr: "scraper timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			unsetEnv(t, "STORE_DRIVER", "PG_USER", "PG_PASSWORD", "FIREBASE_PROJECT_ID", "SCRAPER_WORKERS", "SCRAPER_TIMEOUT")
			path := writeConfig(t, tt.yaml)

			// Act
			cfg, err := LoadConfigFromPath(path)

			// Assert
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad(t *testing.T) {
	t.Run("Success - reads CONFIG_PATH", func(t *testing.T) {
		// Arrange
		path := writeConfig(t, memoryYAML)
		t.Setenv("CONFIG_PATH", path)

		// Act
		cfg := MustLoad()

		// Assert
		require.NotNil(t, cfg)
		assert.Equal(t, "memory", cfg.Store.Driver)
	})
}

func TestGetDSN(t *testing.T) {
	t.Run("Success - postgres url", func(t *testing.T) {
		// Arrange
		db := Database{Host: "h", Port: "5432", User: "u", Password: "p", Name: "bar", SSLMode: "disable"}

		// Act
		dsn := db.GetDSN()

		// Assert
		assert.Equal(t, "postgresql://u:p@h:5432/bar?sslmode=disable", dsn)
	})

	t.Run("Success - redis url without credentials", func(t *testing.T) {
		// Arrange
		r := RedisConnect{Host: "cache", Port: "6379"}

		// Act
		dsn := r.GetDSN()

		// Assert
		assert.Equal(t, "redis://:@cache:6379", dsn)
	})
}
