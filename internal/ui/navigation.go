package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// navigateMsg asks the shell to activate path. Pages emit it instead of
// touching navigation state themselves.
type navigateMsg struct {
	path string
}

func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{path: path}
	}
}

// navigate activates path and remounts when it changed. Activating the
// current path is a no-op.
func (m *Model) navigate(path string) tea.Cmd {
	if !m.nav.Activate(path) {
		return nil
	}
	m.syncMenuCursor()
	return m.mount()
}

// mount tears down the current page and mounts a fresh one for the current
// path. Results still in flight for the old page are dropped by its
// controller.
func (m *Model) mount() tea.Cmd {
	path := m.nav.Path()
	if m.page != nil {
		m.page.Teardown()
	}

	m.view = m.table.Resolve(path)
	m.page = m.newPage(m.view, path)
	m.log.Debug().Str("path", path).Stringer("view", m.view).Msg("view mounted")

	return m.page.Init()
}

// reload remounts the current path. This is the only way to retry a failed
// fetch.
func (m *Model) reload() tea.Cmd {
	m.log.Debug().Str("path", m.nav.Path()).Msg("view reload")
	return m.mount()
}
