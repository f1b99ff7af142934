package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewLoggerWithFile("info", "console", FileOptions{Path: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Info("announcement created")
	log.Debug("hidden below info")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"announcement created"`)
	assert.NotContains(t, string(data), "hidden below info")
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	log, err := NewLogger("loud", "json")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(0)) // info
	assert.False(t, log.Core().Enabled(-1))
}
