package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/router"
)

// page is one mounted view. A page lives from mount until Teardown; the
// shell never reuses a page across navigations.
type page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (page, tea.Cmd)
	View(styles Styles, width int) string
	Teardown()
}

// newPage builds a fresh page for view. path is the navigation path that
// resolved to it.
func (m Model) newPage(view router.ViewID, path string) page {
	switch view {
	case router.ViewHome:
		return homePage{}
	case router.ViewBooks:
		return newBooksPage(m.ctx, m.books, m.keys, m.log)
	case router.ViewAuthors:
		return placeholderPage{title: "All Authors Page"}
	case router.ViewGenres:
		return placeholderPage{title: "All Genres Page"}
	case router.ViewBookInstances:
		return placeholderPage{title: "All Book Instances Page"}
	case router.ViewCreateAuthor:
		return placeholderPage{title: "Create New Author Page", create: true}
	case router.ViewCreateGenre:
		return placeholderPage{title: "Create New Genre Page", create: true}
	case router.ViewCreateBook:
		return placeholderPage{title: "Create New Book Page", create: true}
	case router.ViewCreateBookInstance:
		return placeholderPage{title: "Create New Book Instance Page", create: true}
	default:
		return notFoundPage{path: path}
	}
}

// homeStats are the record counts shown on the home page.
var homeStats = []struct {
	label string
	value int
}{
	{"Books", 6},
	{"Copies", 10},
	{"Copies available", 4},
	{"Authors", 4},
	{"Genres", 3},
}

type homePage struct{}

func (homePage) Init() tea.Cmd { return nil }
func (p homePage) Update(tea.Msg) (page, tea.Cmd) { return p, nil }
func (homePage) Teardown() {}

func (homePage) View(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Local Library Home"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Width(width).Render(
		"Welcome to " + styles.AccentText.Render("LocalLibrary") +
			styles.MutedText.Render(", a very basic Express website developed as a tutorial example."),
	))
	b.WriteString("\n\n")
	b.WriteString(styles.CreateTitle.Render("Dynamic content"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("The library has the following record counts."))
	b.WriteString("\n\n")
	for _, stat := range homeStats {
		b.WriteString(styles.AccentText.Render("●"))
		b.WriteString(" ")
		b.WriteString(styles.Text.Bold(true).Render(stat.label + ":"))
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%d", stat.value)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// placeholderPage is a routed view with no content yet.
type placeholderPage struct {
	title  string
	create bool
}

func (placeholderPage) Init() tea.Cmd { return nil }
func (p placeholderPage) Update(tea.Msg) (page, tea.Cmd) { return p, nil }
func (placeholderPage) Teardown() {}

func (p placeholderPage) View(styles Styles, _ int) string {
	if p.create {
		return styles.CreateTitle.Render(p.title)
	}
	return styles.Title.Render(p.title)
}

// notFoundPage renders unmatched paths. The menu stays usable.
type notFoundPage struct {
	path string
}

func (notFoundPage) Init() tea.Cmd { return nil }
func (p notFoundPage) Update(tea.Msg) (page, tea.Cmd) { return p, nil }
func (notFoundPage) Teardown() {}

func (p notFoundPage) View(styles Styles, _ int) string {
	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Page Not Found"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("No page is routed at "))
	b.WriteString(styles.WarningText.Render(p.path))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Pick a link from the menu or press : to enter a path."))
	return b.String()
}
