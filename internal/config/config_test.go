package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	for _, key := range []string{"SETUP_LOG_LEVEL", "SETUP_LOG_FILE", "SETUP_TEMP_DIR"} {
		t.Setenv(key, "") // restores the original value afterwards
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info"}, cfg)
}

func TestLoad_environment(t *testing.T) {
	t.Setenv("SETUP_LOG_LEVEL", "debug")
	t.Setenv("SETUP_LOG_FILE", "/var/log/setup.log")
	t.Setenv("SETUP_TEMP_DIR", "/tmp/setup")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		LogLevel: "debug",
		LogFile:  "/var/log/setup.log",
		TempDir:  "/tmp/setup",
	}, cfg)
}
