package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.Placeholder = "/books"
	ti.CharLimit = 256
	return ti
}

// openPrompt focuses the goto prompt, pre-filled with the current path.
func (m *Model) openPrompt() tea.Cmd {
	m.prompting = true
	m.gotoInput.SetValue(m.nav.Path())
	m.gotoInput.CursorEnd()
	return m.gotoInput.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.gotoInput.Blur()
	m.gotoInput.Reset()
}

// handlePromptKey runs while the goto prompt owns the keyboard. The typed
// path is used verbatim apart from surrounding whitespace.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.gotoInput.Value())
		m.closePrompt()
		if path == "" {
			return m, nil
		}
		cmd := m.navigate(path)
		return m, cmd
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}
