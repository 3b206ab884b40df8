package purge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/internal/config"
	"modclean/internal/purge"
	"modclean/pkg/types"
)

func makeMatch(t *testing.T, dir, name string) types.Match {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	return types.Match{Path: path, Size: 7}
}

func TestDelete(t *testing.T) {
	t.Run("removes files and counts successes", func(t *testing.T) {
		dir := t.TempDir()
		matches := []types.Match{makeMatch(t, dir, "a.uasset"), makeMatch(t, dir, "b.uasset")}

		success, failed := purge.New().Delete(matches)
		assert.Equal(t, 2, success)
		assert.Empty(t, failed)
		for _, m := range matches {
			_, err := os.Stat(m.Path)
			assert.ErrorIs(t, err, os.ErrNotExist)
		}
	})

	t.Run("missing file yields a failure entry not a crash", func(t *testing.T) {
		dir := t.TempDir()
		absent := types.Match{Path: filepath.Join(dir, "gone.uasset"), Size: 1}
		present := makeMatch(t, dir, "here.uasset")

		success, failed := purge.New().Delete([]types.Match{absent, present})
		assert.Equal(t, 1, success)
		assert.Equal(t, []string{absent.Path}, failed)
		_, err := os.Stat(present.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("dry run leaves files on disk", func(t *testing.T) {
		dir := t.TempDir()
		m := makeMatch(t, dir, "keep.uasset")

		engine := purge.New()
		engine.SetDryRun(true)
		success, failed := engine.Delete([]types.Match{m})
		assert.Equal(t, 1, success)
		assert.Empty(t, failed)
		_, err := os.Stat(m.Path)
		assert.NoError(t, err)
	})

	t.Run("backs files up before deleting when configured", func(t *testing.T) {
		dir := t.TempDir()
		backupDir := filepath.Join(dir, "backups")
		cfg := config.New()
		cfg.BackupDirectory = backupDir

		m := makeMatch(t, dir, "saved.uasset")
		success, failed := purge.NewWithConfig(cfg).Delete([]types.Match{m})
		assert.Equal(t, 1, success)
		assert.Empty(t, failed)

		_, err := os.Stat(m.Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
		data, err := os.ReadFile(filepath.Join(backupDir, "saved.uasset"))
		require.NoError(t, err)
		assert.Equal(t, []byte("content"), data)
	})
}

func TestPrune(t *testing.T) {
	dir := t.TempDir()
	kept := makeMatch(t, dir, "kept.uasset")
	gone := types.Match{Path: filepath.Join(dir, "gone.uasset"), Size: 1}

	remaining := purge.Prune([]types.Match{kept, gone})
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.Path, remaining[0].Path)
}
