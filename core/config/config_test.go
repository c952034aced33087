package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/var/spool/uucp", cfg.Spool.Root)
	assert.Equal(t, "local", cfg.Spool.Backend)
	assert.Empty(t, cfg.Spool.Sites)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.ScanIntervalSeconds)
	assert.Equal(t, "uucp", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SPOOL_ROOT", "/srv/uucp")
	t.Setenv("SPOOL_SITES", "alpha, beta,,gamma")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/uucp", cfg.Spool.Root)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.Spool.Sites)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SPOOL_BACKEND=storage\nSTORAGE_PREFIX=mirror\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SPOOL_BACKEND")
		os.Unsetenv("STORAGE_PREFIX")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "storage", cfg.Spool.Backend)
	assert.Equal(t, "mirror", cfg.Storage.Prefix)
}

func TestLoadConfig_BadBackend(t *testing.T) {
	t.Setenv("SPOOL_BACKEND", "tape")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tape")
}
