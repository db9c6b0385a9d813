package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/logger"
	"github.com/five82/folio/internal/nav"
	"github.com/five82/folio/internal/prefs"
	"github.com/five82/folio/internal/router"
)

var errNoCatalog = errors.New("no catalog configured")

// focusArea is the pane receiving navigation keys.
type focusArea int

const (
	focusMenu focusArea = iota
	focusContent
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Books     catalog.BookSource
	Logger    *logger.Logger
	Table     *router.Table // nil uses router.DefaultTable
	StartPath string        // empty uses "/"
	ThemeName string
	PrefsPath string // empty uses default ~/.config/folio/prefs.toml
}

// Model is the root application state for Bubble Tea. It is the single
// owner of the navigation path and the mounted page.
type Model struct {
	// Configuration
	ctx       context.Context
	books     catalog.BookSource
	log       *logger.Logger
	table     *router.Table
	prefsPath string

	// Navigation
	nav          nav.State
	menu         []nav.Link
	primaryCount int
	view         router.ViewID
	page         page

	// UI state
	theme      Theme
	keys       keyMap
	focus      focusArea
	menuCursor int
	width      int
	height     int
	ready      bool
	showHelp   bool
	prompting  bool
	gotoInput  textinput.Model
}

// New creates the shell and mounts the page for the start path.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	table := opts.Table
	if table == nil {
		table = router.DefaultTable()
	}

	start := opts.StartPath
	if start == "" {
		start = "/"
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:          ctx,
		books:        opts.Books,
		log:          log.Component("ui"),
		table:        table,
		prefsPath:    prefsPath,
		nav:          nav.NewState(start),
		menu:         nav.Menu(),
		primaryCount: len(nav.Primary()),
		theme:        GetTheme(themeName),
		keys:         DefaultKeyMap(),
		gotoInput:    newGotoInput(),
	}
	m.syncMenuCursor()
	m.view = table.Resolve(start)
	m.page = m.newPage(m.view, start)
	return m
}

// Path returns the current navigation path.
func (m Model) Path() string {
	return m.nav.Path()
}

// CurrentView returns the view mounted for the current path.
func (m Model) CurrentView() router.ViewID {
	return m.view
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.page.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case navigateMsg:
		cmd := m.navigate(msg.path)
		return m, cmd
	}

	// Everything else belongs to the mounted page: fetch results, spinner
	// ticks. Messages for a torn-down page are ignored by the new one.
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.prompting {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.log.Warn().Err(err).Msg("save prefs")
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focus == focusMenu {
			m.focus = focusContent
		} else {
			m.focus = focusMenu
		}
		return m, nil

	case key.Matches(msg, m.keys.Goto):
		cmd := m.openPrompt()
		return m, cmd

	case key.Matches(msg, m.keys.Reload):
		cmd := m.reload()
		return m, cmd
	}

	if m.focus == focusMenu {
		return m.handleMenuKey(msg)
	}

	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// renderMain renders header, sidebar + content, and footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	bodyHeight := max(m.height-2, 3)
	paneHeight := max(bodyHeight-2, 1)

	menuPane, contentPane := styles.Pane, styles.Pane
	if m.focus == focusMenu {
		menuPane = styles.PaneFocused
	} else {
		contentPane = styles.PaneFocused
	}

	sidebar := menuPane.
		Width(sidebarWidth + 2).
		Height(paneHeight).
		Render(m.renderSidebar(styles))

	contentWidth := max(m.width-lipgloss.Width(sidebar)-4, 20)
	content := contentPane.
		Width(contentWidth + 2).
		Height(paneHeight).
		Render(m.page.View(styles, contentWidth))

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content))
	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))
	return b.String()
}

func (m Model) renderHeader(styles Styles) string {
	parts := []string{
		styles.Logo.Render("folio"),
		styles.Text.Render(m.nav.Path()),
		styles.FaintText.Render(m.view.String()),
	}
	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

func (m Model) renderFooter(styles Styles) string {
	if m.prompting {
		return styles.Footer.Width(m.width).Render(m.gotoInput.View())
	}

	hints := make([]string, 0, len(m.keys.ShortHelp())+1)
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	hints = append(hints, "theme "+m.theme.Name)
	return styles.Footer.Width(m.width).Render(strings.Join(hints, " · "))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}

	final, err := tea.NewProgram(m, progOpts...).Run()
	if fm, ok := final.(Model); ok && fm.page != nil {
		fm.page.Teardown()
	}
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
