package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"htmx-greeter/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets the variables the tests touch and restores them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(k) })
		}
		os.Unsetenv(k)
	}
}

var envKeys = []string{"PORT", "SERVER_PORT", "LOG_LEVEL", "LOG_FORMAT", "STORAGE_BUCKET", "STORAGE_PREFIX", "DATABASE_DRIVER"}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, envKeys...)

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Empty(t, cfg.Storage.Prefix)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "", cfg.Database.Driver)
	assert.False(t, cfg.Database.Enabled())
}

func TestLoadConfig_PortVariables(t *testing.T) {
	clearEnv(t, envKeys...)

	t.Setenv("PORT", "3000")
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)

	t.Setenv("SERVER_PORT", "4000")
	cfg, err = config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Server.Port)
}

func TestLoadConfig_InvalidPortIsKept(t *testing.T) {
	clearEnv(t, envKeys...)
	t.Setenv("PORT", "abc")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Server.Port)

	_, err = cfg.Server.ListenPort()
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t, envKeys...)

	dir := t.TempDir()
	content := "LOG_LEVEL=debug\nLOG_FORMAT=console\nSTORAGE_BUCKET=cdn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	// The real environment wins over the file.
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "cdn", cfg.Storage.Bucket)
}
