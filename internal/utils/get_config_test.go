package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfig_FileEnvAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nAPP_PORT: \"9000\"\n"), 0o600))
	LoadConfigFile(path)
	t.Cleanup(func() { config = Config{} })

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))

	t.Setenv("APP_PORT", "7000")
	assert.Equal(t, "7000", GetConfig("APP_PORT"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfigFile_MissingFileKeepsDefaults(t *testing.T) {
	LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "./logs/app.log", GetConfig("LOG_FILE"))
}
