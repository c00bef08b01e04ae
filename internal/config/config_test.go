package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	// create temp directory
	tmpDir, err := os.MkdirTemp("", "gamevault_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.NotEmpty(t, cfg.DBPath)
	assert.NotEmpty(t, cfg.LogPath)
	assert.Equal(t, "", cfg.ThemeName) // empty until set
	assert.Equal(t, 50, cfg.PageSize)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	// should return default values when no config file exists
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 50, cfg.PageSize)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// create config
	cfg := &Config{
		ServerURL:      "https://library.example.com",
		AuthToken:      "secret",
		TwitchClientID: "twitch-123",
		DBPath:         filepath.Join(configDir, "test.db"),
		ThemeName:      "dracula",
		PageSize:       25,
	}

	err := SaveConfig(cfg)
	require.NoError(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.ServerURL, loaded.ServerURL)
	assert.Equal(t, cfg.AuthToken, loaded.AuthToken)
	assert.Equal(t, cfg.TwitchClientID, loaded.TwitchClientID)
	assert.Equal(t, cfg.DBPath, loaded.DBPath)
	assert.Equal(t, cfg.ThemeName, loaded.ThemeName)
	assert.Equal(t, cfg.PageSize, loaded.PageSize)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// remove the config directory
	os.RemoveAll(configDir)

	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// verify directory was created
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	// save initial config
	cfg := GetDefaultConfig()
	err := SaveConfig(cfg)
	require.NoError(t, err)

	// update theme
	err = UpdateTheme("monokai")
	require.NoError(t, err)

	// verify update
	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "monokai", loaded.ThemeName)
}
