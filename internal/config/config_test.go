package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 1_000_000, cfg.DefaultMaxSearchNodes)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 5*time.Minute, cfg.QueryCacheTTL)
	assert.Equal(t, "0 */6 * * *", cfg.CronSchedule)
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "service_config.json")

	configJSON := `{
		"default_max_search_nodes": 500000,
		"listen_addr": ":9090",
		"postgres_url": "postgres://custom/db",
		"cron_schedule": "0 0 * * *"
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, 500000, cfg.DefaultMaxSearchNodes)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "postgres://custom/db", cfg.PostgresURL)
	assert.Equal(t, "0 0 * * *", cfg.CronSchedule)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path/config.json")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.json")
	require.NoError(t, os.WriteFile(configPath, []byte("not valid json"), 0644))

	_, err := LoadFromFile(configPath)
	assert.Error(t, err)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "service_config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"listen_addr": ":8080"}`), 0644))

	t.Setenv("PLANNER_LISTEN_ADDR", ":7000")
	t.Setenv("PLANNER_MAX_SEARCH_NODES", "42")

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ListenAddr, "environment override must win over the file value")
	assert.Equal(t, 42, cfg.DefaultMaxSearchNodes)
}

func TestReload(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "service_config.json")

	require.NoError(t, os.WriteFile(configPath, []byte(`{"listen_addr": ":8080"}`), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)

	require.NoError(t, os.WriteFile(configPath, []byte(`{"listen_addr": ":9999"}`), 0644))

	require.NoError(t, cfg.Reload(configPath))
	assert.Equal(t, ":9999", cfg.GetListenAddr())
}
