package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/internal/watch"
)

const logLine = "LogCook: Error: Missing cooked file: '../../../ConanSandbox/Content/Mods/MyMod/Foo.uasset'\n"

func TestWatcher(t *testing.T) {
	t.Run("emits targets appended after start", func(t *testing.T) {
		dir := t.TempDir()
		logFile := filepath.Join(dir, "ConanSandbox.log")
		require.NoError(t, os.WriteFile(logFile, []byte("LogInit: start\n"), 0644))

		w, err := watch.New(logFile)
		require.NoError(t, err)
		require.NoError(t, w.Start())
		defer w.Stop()

		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.WriteString(logLine)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		select {
		case target := <-w.Targets():
			assert.Equal(t, "Content/Mods/MyMod/Foo.uasset", target)
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for target")
		}
	})

	t.Run("targets present before start are not re-emitted", func(t *testing.T) {
		dir := t.TempDir()
		logFile := filepath.Join(dir, "ConanSandbox.log")
		require.NoError(t, os.WriteFile(logFile, []byte(logLine), 0644))

		w, err := watch.New(logFile)
		require.NoError(t, err)
		require.NoError(t, w.Start())
		defer w.Stop()

		// Touch the log without adding new targets.
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY, 0644)
		require.NoError(t, err)
		_, err = f.WriteString("LogInit: noise\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		select {
		case target, ok := <-w.Targets():
			if ok {
				t.Fatalf("unexpected target %q", target)
			}
		case <-time.After(500 * time.Millisecond):
		}
	})

	t.Run("missing log directory errors", func(t *testing.T) {
		_, err := watch.New(filepath.Join(t.TempDir(), "absent", "x.log"))
		assert.Error(t, err)
	})

	t.Run("double start errors", func(t *testing.T) {
		dir := t.TempDir()
		logFile := filepath.Join(dir, "x.log")
		require.NoError(t, os.WriteFile(logFile, nil, 0644))

		w, err := watch.New(logFile)
		require.NoError(t, err)
		require.NoError(t, w.Start())
		defer w.Stop()
		assert.Error(t, w.Start())
	})
}
