// Package tui provides an interactive terminal view for reviewing and
// deleting matched files.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"modclean/internal/purge"
	"modclean/pkg/types"
)

// confirm tracks what a pending y/n confirmation applies to.
type confirm int

const (
	confirmNone confirm = iota
	confirmOne
	confirmAll
)

// item adapts a Match to the bubbles list.
type item struct {
	match types.Match
}

func (i item) Title() string {
	if i.match.Orphaned {
		return OrphanStyle.Render("[orphan] ") + i.match.Name()
	}
	return i.match.Name()
}

func (i item) Description() string {
	return fmt.Sprintf("%s — %s", i.match.Path, types.FormatSize(i.match.Size))
}

func (i item) FilterValue() string {
	return i.match.Path
}

// Model is the bubbletea model for the match review view.
type Model struct {
	list      list.Model
	engine    *purge.Engine
	pending   confirm
	statusMsg string
}

// New builds a Model over the given matches.
func New(matches []types.Match, engine *purge.Engine) *Model {
	items := make([]list.Item, len(matches))
	for i, m := range matches {
		items[i] = item{match: m}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("Matched files (%d)", len(matches))
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)

	return &Model{list: l, engine: engine}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending confirmation swallows every key.
	if m.pending != confirmNone {
		switch msg.String() {
		case "y", "Y":
			m.execute()
		default:
			m.statusMsg = StatusStyle.Render("Cancelled")
		}
		m.pending = confirmNone
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "d":
		if len(m.list.Items()) > 0 {
			m.pending = confirmOne
		}
		return m, nil
	case "D":
		if len(m.list.Items()) > 0 {
			m.pending = confirmAll
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// execute runs the confirmed deletion and updates the list in place.
func (m *Model) execute() {
	switch m.pending {
	case confirmOne:
		sel, ok := m.list.SelectedItem().(item)
		if !ok {
			return
		}
		success, failed := m.engine.Delete([]types.Match{sel.match})
		if success > 0 {
			m.list.RemoveItem(m.list.Index())
			m.statusMsg = SuccessStyle.Render(fmt.Sprintf("Deleted %s", sel.match.Path))
		} else if len(failed) > 0 {
			m.statusMsg = ErrorStyle.Render(fmt.Sprintf("Failed to delete %s", failed[0]))
		}
	case confirmAll:
		matches := m.matches()
		success, failed := m.engine.Delete(matches)
		remaining := purge.Prune(matches)
		items := make([]list.Item, len(remaining))
		for i, match := range remaining {
			items[i] = item{match: match}
		}
		m.list.SetItems(items)
		if len(failed) > 0 {
			m.statusMsg = ErrorStyle.Render(
				fmt.Sprintf("Deleted %d of %d, %d failed", success, len(matches), len(failed)))
		} else {
			m.statusMsg = SuccessStyle.Render(fmt.Sprintf("Deleted %d files", success))
		}
	}
	m.list.Title = fmt.Sprintf("Matched files (%d)", len(m.list.Items()))
}

// matches returns the current list contents as Match values.
func (m *Model) matches() []types.Match {
	items := m.list.Items()
	out := make([]types.Match, 0, len(items))
	for _, it := range items {
		if entry, ok := it.(item); ok {
			out = append(out, entry.match)
		}
	}
	return out
}

// View implements tea.Model
func (m *Model) View() string {
	view := m.list.View()
	switch m.pending {
	case confirmOne:
		if sel, ok := m.list.SelectedItem().(item); ok {
			view += "\n" + PromptStyle.Render(fmt.Sprintf("Delete '%s'? (y/n)", sel.match.Path))
		}
	case confirmAll:
		view += "\n" + PromptStyle.Render(fmt.Sprintf("Delete ALL %d files? (y/n)", len(m.list.Items())))
	default:
		if m.statusMsg != "" {
			view += "\n" + m.statusMsg
		} else {
			view += "\n" + StatusStyle.Render("d: delete selected  D: delete all  q: quit")
		}
	}
	return view
}
