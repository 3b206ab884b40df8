package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modclean/internal/purge"
	"modclean/pkg/types"
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testMatches(t *testing.T) []types.Match {
	t.Helper()
	dir := t.TempDir()
	var matches []types.Match
	for _, name := range []string{"a.uasset", "b.uasset"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		matches = append(matches, types.Match{Path: path, Size: 1, Orphaned: true})
	}
	return matches
}

func TestModel(t *testing.T) {
	t.Run("lists all matches", func(t *testing.T) {
		m := New(testMatches(t), purge.New())
		assert.Len(t, m.list.Items(), 2)
	})

	t.Run("delete selected requires confirmation", func(t *testing.T) {
		matches := testMatches(t)
		m := New(matches, purge.New())

		updated, _ := m.Update(key('d'))
		m = updated.(*Model)
		// Declining leaves everything in place.
		updated, _ = m.Update(key('n'))
		m = updated.(*Model)
		assert.Len(t, m.list.Items(), 2)
		_, err := os.Stat(matches[0].Path)
		assert.NoError(t, err)

		// Confirming removes the file and the entry.
		updated, _ = m.Update(key('d'))
		m = updated.(*Model)
		updated, _ = m.Update(key('y'))
		m = updated.(*Model)
		assert.Len(t, m.list.Items(), 1)
		_, err = os.Stat(matches[0].Path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("delete all clears the list", func(t *testing.T) {
		matches := testMatches(t)
		m := New(matches, purge.New())

		updated, _ := m.Update(key('D'))
		m = updated.(*Model)
		updated, _ = m.Update(key('y'))
		m = updated.(*Model)
		assert.Empty(t, m.list.Items())
		for _, match := range matches {
			_, err := os.Stat(match.Path)
			assert.ErrorIs(t, err, os.ErrNotExist)
		}
	})

	t.Run("quit returns the quit command", func(t *testing.T) {
		m := New(nil, purge.New())
		_, cmd := m.Update(key('q'))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	})
}
