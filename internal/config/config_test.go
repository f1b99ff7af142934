package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Equal(t, 30, cfg.Analytics.VolumeDays)
	assert.Equal(t, "admin", cfg.App.CurrentUsername)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
  timezone: UTC
storage:
  driver: postgres
database:
  host: ${DB_HOST:db.internal}
  user: classapp
cache:
  analytics_ttl: 45s
analytics:
  volume_days: 7
metrics:
  enabled: false
`)
	t.Setenv("DB_USER", "override")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "override", cfg.Database.User)
	assert.Equal(t, 45*time.Second, cfg.Cache.AnalyticsTTL)
	assert.Equal(t, 7, cfg.Analytics.VolumeDays)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"driver":   "storage:\n  driver: mongo\n",
		"timezone": "app:\n  timezone: Mars/Olympus\n",
		"days":     "analytics:\n  volume_days: -3\n",
		"limits":   "pagination:\n  default_limit: 50\n  max_limit: 20\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}
