package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/folio/internal/catalog"
	"github.com/five82/folio/internal/fetch"
	"github.com/five82/folio/internal/logger"
)

// booksFetchedMsg carries a finished book-list retrieval back into the
// update loop. The token inside decides whether anyone still cares.
type booksFetchedMsg fetch.Result[[]catalog.Book]

// booksPage is the book list view. Each mount owns exactly one controller.
type booksPage struct {
	ctx     context.Context
	fetch   *fetch.Controller[[]catalog.Book]
	spinner spinner.Model
	keys    keyMap
	cursor  int
}

func newBooksPage(ctx context.Context, src catalog.BookSource, keys keyMap, log *logger.Logger) *booksPage {
	var load fetch.Loader[[]catalog.Book]
	if src != nil {
		load = src.FetchBooks
	} else {
		load = func(context.Context) ([]catalog.Book, error) {
			return nil, errNoCatalog
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &booksPage{
		ctx:     ctx,
		fetch:   fetch.New(load, fetch.WithName("books"), fetch.WithLogger(log)),
		spinner: sp,
		keys:    keys,
	}
}

func (p *booksPage) Init() tea.Cmd {
	task := p.fetch.Start(p.ctx)
	if task == nil {
		return nil
	}
	return tea.Batch(p.spinner.Tick, fetchBooksCmd(task))
}

func (p *booksPage) Update(msg tea.Msg) (page, tea.Cmd) {
	switch msg := msg.(type) {
	case booksFetchedMsg:
		p.fetch.Apply(fetch.Result[[]catalog.Book](msg))
		return p, nil

	case spinner.TickMsg:
		if p.fetch.State().Phase != fetch.Loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *booksPage) handleKey(msg tea.KeyMsg) (page, tea.Cmd) {
	books := p.books()
	if len(books) == 0 {
		return p, nil
	}

	switch {
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(books)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Top):
		p.cursor = 0
	case key.Matches(msg, p.keys.Bottom):
		p.cursor = len(books) - 1
	case key.Matches(msg, p.keys.Confirm):
		return p, navigateCmd(books[p.cursor].URL)
	}
	return p, nil
}

// books returns the list only once the fetch succeeded.
func (p *booksPage) books() []catalog.Book {
	st := p.fetch.State()
	if st.Phase != fetch.Success {
		return nil
	}
	return st.Data
}

func (p *booksPage) Teardown() {
	p.fetch.Teardown()
}

func (p *booksPage) View(styles Styles, width int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Book List"))
	b.WriteString("\n\n")

	st := p.fetch.State()
	switch st.Phase {
	case fetch.Idle, fetch.Loading:
		b.WriteString(p.spinner.View())
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render("Loading books..."))
	case fetch.Error:
		b.WriteString(styles.DangerText.Width(width).Render("Error: " + st.Message))
	case fetch.Success:
		for i, book := range st.Data {
			b.WriteString(p.renderRow(styles, book, i == p.cursor))
			if i < len(st.Data)-1 {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (p *booksPage) renderRow(styles Styles, book catalog.Book, selected bool) string {
	title := styles.Text.Bold(true).Render(book.Title)
	if selected {
		title = styles.Selected.Bold(true).Render(book.Title)
	}
	return styles.AccentText.Render("●") + " " + title + " " +
		styles.FaintText.Render("("+book.Author.FullName()+")")
}

func fetchBooksCmd(task fetch.Task[[]catalog.Book]) tea.Cmd {
	return func() tea.Msg {
		return booksFetchedMsg(task())
	}
}
