package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/internal/config"
)

func TestLoadFile(t *testing.T) {
	t.Run("missing file yields defaults without error", func(t *testing.T) {
		cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.json"))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultOrphanThreshold, cfg.OrphanThreshold)
		assert.Empty(t, cfg.LogFilePath)
	})

	t.Run("loaded keys merge over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"log_file_path": "C:/Games/ConanSandbox.log",
			"orphaned_file_threshold": 4096
		}`), 0644))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "C:/Games/ConanSandbox.log", cfg.LogFilePath)
		assert.Equal(t, int64(4096), cfg.OrphanThreshold)
		// Unset keys keep their defaults.
		assert.Empty(t, cfg.SearchDirectory)
	})

	t.Run("malformed JSON yields defaults plus a reportable error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		cfg, err := config.LoadFile(path)
		assert.Error(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, config.DefaultOrphanThreshold, cfg.OrphanThreshold)
	})
}

func TestSave(t *testing.T) {
	t.Run("writes backup of the previous version", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		cfg := config.New()
		cfg.LogFilePath = "first.log"
		require.NoError(t, config.Save(cfg, path))
		first, err := os.ReadFile(path)
		require.NoError(t, err)

		cfg.LogFilePath = "second.log"
		require.NoError(t, config.Save(cfg, path))

		backup, err := os.ReadFile(path + ".backup")
		require.NoError(t, err)
		assert.Equal(t, first, backup)
	})

	t.Run("always overwrites last_modified", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := config.New()
		cfg.LastModified = "stale"
		require.NoError(t, config.Save(cfg, path))
		assert.NotEqual(t, "stale", cfg.LastModified)
		assert.NotEmpty(t, cfg.LastModified)
	})

	t.Run("unknown keys survive a load and save cycle", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"log_file_path": "a.log",
			"future_key": {"nested": true}
		}`), 0644))

		cfg, err := config.LoadFile(path)
		require.NoError(t, err)
		require.NoError(t, config.Save(cfg, path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "future_key")
		assert.JSONEq(t, `{"nested": true}`, string(raw["future_key"]))
		assert.Contains(t, raw, "log_file_path")
	})
}

func TestGetSet(t *testing.T) {
	cfg := config.New()

	require.NoError(t, cfg.Set("file_extensions_filter", "*.uasset, *.uexp"))
	assert.Equal(t, []string{"*.uasset", "*.uexp"}, cfg.ExtensionsFilter)
	assert.Equal(t, "*.uasset, *.uexp", cfg.Get("file_extensions_filter"))

	require.NoError(t, cfg.Set("orphaned_file_threshold", "2048"))
	assert.Equal(t, int64(2048), cfg.OrphanThreshold)

	assert.Error(t, cfg.Set("orphaned_file_threshold", "not-a-number"))
	assert.Error(t, cfg.Set("orphaned_file_threshold", "-5"))
	assert.Error(t, cfg.Set("no_such_key", "value"))

	require.NoError(t, cfg.Set("search_directory", "/mods"))
	assert.Equal(t, "/mods", cfg.Get("search_directory"))
}
