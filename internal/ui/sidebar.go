package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// sidebarWidth is the inner width of the menu pane.
const sidebarWidth = 28

// renderSidebar draws both link groups, separated by a rule.
func (m Model) renderSidebar(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Logo.Render("Local Library"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", sidebarWidth)))
	b.WriteString("\n")

	for i, link := range m.menu {
		if i == m.primaryCount && i > 0 {
			b.WriteString(styles.FaintText.Render(strings.Repeat("─", sidebarWidth)))
			b.WriteString("\n")
		}

		marker := "  "
		if link.Path == m.nav.Path() {
			marker = styles.AccentText.Render("› ")
		}

		label := styles.MutedText.Render(link.Label)
		switch {
		case i == m.menuCursor && m.focus == focusMenu:
			label = styles.Selected.Render(link.Label)
		case link.Path == m.nav.Path():
			label = styles.AccentText.Render(link.Label)
		}

		b.WriteString(marker + label)
		if i < len(m.menu)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// handleMenuKey moves the menu cursor and activates links.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.menu) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.menuCursor < len(m.menu)-1 {
			m.menuCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.menuCursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.menuCursor = len(m.menu) - 1
	case key.Matches(msg, m.keys.Confirm):
		cmd := m.navigate(m.menu[m.menuCursor].Path)
		return m, cmd
	}
	return m, nil
}

// syncMenuCursor moves the cursor onto the link for the current path, if
// the menu has one.
func (m *Model) syncMenuCursor() {
	for i, link := range m.menu {
		if link.Path == m.nav.Path() {
			m.menuCursor = i
			return
		}
	}
}
