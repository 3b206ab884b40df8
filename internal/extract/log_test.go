package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/internal/extract"
)

func TestTargets(t *testing.T) {
	t.Run("extracts anchored paths from missing cooked file lines", func(t *testing.T) {
		logFile := writeLog(t, ""+
			"LogInit: Display: Engine started\n"+
			"LogCook: Error: Missing cooked file: '../../../ConanSandbox/Content/Mods/MyMod/Foo.uasset'\n"+
			"LogCook: Error: Missing cooked file: \"../../../ConanSandbox/Content/Mods/MyMod/Sub/Bar.uexp\"\n"+
			"LogCook: Warning: something unrelated\n")

		targets, err := extract.Targets(logFile)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Content/Mods/MyMod/Foo.uasset",
			"Content/Mods/MyMod/Sub/Bar.uexp",
		}, targets)
	})

	t.Run("ignores marker lines without the anchor", func(t *testing.T) {
		logFile := writeLog(t, "LogCook: Error: Missing cooked file: '../../../Engine/Foo.uasset'\n")

		targets, err := extract.Targets(logFile)
		require.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("ignores anchor lines without the marker", func(t *testing.T) {
		logFile := writeLog(t, "LogStreaming: Loaded Content/Mods/MyMod/Foo.uasset\n")

		targets, err := extract.Targets(logFile)
		require.NoError(t, err)
		assert.Empty(t, targets)
	})

	t.Run("missing log file reports an error with empty result", func(t *testing.T) {
		targets, err := extract.Targets(filepath.Join(t.TempDir(), "no-such.log"))
		assert.Error(t, err)
		assert.Empty(t, targets)
	})
}

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ConanSandbox.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
