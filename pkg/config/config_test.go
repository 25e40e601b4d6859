package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	assert.Equal(t, 8081, cfg.MCP.Port)
	assert.Equal(t, "/mcp", cfg.MCP.Path)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	body := []byte("seed: false\nlog:\n  level: debug\nhttp:\n  addr: 0.0.0.0:9000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".actd.yaml"), body, 0o644))
	t.Setenv("ACTD_MCP_PORT", "9999")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.False(t, cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:9000", cfg.HTTP.Addr)
	assert.Equal(t, 9999, cfg.MCP.Port)
	assert.Equal(t, filepath.Join(dir, ".actd.yaml"), cfg.File)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".actd.yaml"), []byte("seed: [unterminated\n"), 0o644))

	_, err := load(viper.New(), dir)
	assert.Error(t, err)
}
