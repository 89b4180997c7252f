package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T) (globalDir, projectDir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("global config path is taken from APPDATA on windows")
	}
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	return filepath.Join(home, "filesize"), t.TempDir()
}

func TestConfig(t *testing.T) {
	globalDir, projectDir := setupDirs(t)

	t.Run("defaults when no files exist", func(t *testing.T) {
		cfg, err := New(projectDir)
		require.NoError(t, err)

		assert.False(t, cfg.Has(KeyOutputJSON))
		assert.Equal(t, "", cfg.Get(KeyOutputJSON))
		assert.True(t, cfg.Bool(KeyRespectIgnore, true))
		assert.Empty(t, cfg.Keys())
	})

	t.Run("keys are routed to their file", func(t *testing.T) {
		cfg, err := New(projectDir)
		require.NoError(t, err)

		require.NoError(t, cfg.Set(KeyOutputJSON, "true"))
		require.NoError(t, cfg.Set(KeyRespectIgnore, "false"))

		data, err := os.ReadFile(filepath.Join(globalDir, "config.json"))
		require.NoError(t, err)
		var global map[string]map[string]string
		require.NoError(t, json.Unmarshal(data, &global))
		assert.Equal(t, "true", global["output"]["json"])
		assert.NotContains(t, global, "stat")

		data, err = os.ReadFile(filepath.Join(projectDir, ProjectFile))
		require.NoError(t, err)
		var project map[string]map[string]string
		require.NoError(t, json.Unmarshal(data, &project))
		assert.Equal(t, "false", project["stat"]["respect_ignore"])
	})

	t.Run("load existing config", func(t *testing.T) {
		cfg, err := New(projectDir)
		require.NoError(t, err)

		assert.True(t, cfg.Bool(KeyOutputJSON, false))
		assert.False(t, cfg.Bool(KeyRespectIgnore, true))
		assert.ElementsMatch(t, []string{KeyOutputJSON, KeyRespectIgnore}, cfg.Keys())
	})

	t.Run("delete", func(t *testing.T) {
		cfg, err := New(projectDir)
		require.NoError(t, err)

		require.NoError(t, cfg.Delete(KeyRespectIgnore))
		assert.False(t, cfg.Has(KeyRespectIgnore))

		reloaded, err := New(projectDir)
		require.NoError(t, err)
		assert.False(t, reloaded.Has(KeyRespectIgnore))
		assert.True(t, reloaded.Has(KeyOutputJSON))
	})

	t.Run("malformed bool falls back to default", func(t *testing.T) {
		cfg, err := New(projectDir)
		require.NoError(t, err)

		require.NoError(t, cfg.Set(KeyRespectIgnore, "maybe"))
		assert.True(t, cfg.Bool(KeyRespectIgnore, true))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, ProjectFile), []byte("invalid json"), 0o644))

		_, err := New(projectDir)
		assert.Error(t, err)
	})
}

func TestConfigWithoutProject(t *testing.T) {
	setupDirs(t)

	cfg, err := New("")
	require.NoError(t, err)

	assert.Error(t, cfg.Set(KeyRespectIgnore, "true"))
	assert.NoError(t, cfg.Set(KeyOutputJSON, "false"))
	assert.True(t, IsGlobalKey(KeyOutputJSON))
	assert.False(t, IsGlobalKey(KeyRespectIgnore))
}
