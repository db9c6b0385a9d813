package router

import (
	"errors"
	"fmt"
	"strings"
)

// ViewID identifies a page view. The set is closed; ViewNotFound is the zero
// value and the fallback for unmatched paths.
type ViewID int

const (
	ViewNotFound ViewID = iota
	ViewHome
	ViewBooks
	ViewAuthors
	ViewGenres
	ViewBookInstances
	ViewCreateAuthor
	ViewCreateGenre
	ViewCreateBook
	ViewCreateBookInstance
)

var viewNames = map[ViewID]string{
	ViewNotFound:           "not-found",
	ViewHome:               "home",
	ViewBooks:              "books",
	ViewAuthors:            "authors",
	ViewGenres:             "genres",
	ViewBookInstances:      "book-instances",
	ViewCreateAuthor:       "create-author",
	ViewCreateGenre:        "create-genre",
	ViewCreateBook:         "create-book",
	ViewCreateBookInstance: "create-book-instance",
}

func (v ViewID) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Route associates an exact path with a view.
type Route struct {
	Path string
	View ViewID
}

var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidPath   = errors.New("invalid route path")
	ErrInvalidView   = errors.New("invalid route view")
)

// Table is an immutable exact-match route table.
type Table struct {
	routes []Route
	byPath map[string]ViewID
}

// NewTable validates routes and builds a Table. Paths must be non-empty,
// start with "/" and be unique.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]ViewID, len(routes)),
	}
	for _, r := range routes {
		if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPath, r.Path)
		}
		if _, ok := viewNames[r.View]; !ok || r.View == ViewNotFound {
			return nil, fmt.Errorf("%w: %s for %q", ErrInvalidView, r.View, r.Path)
		}
		if _, dup := t.byPath[r.Path]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePath, r.Path)
		}
		t.byPath[r.Path] = r.View
		t.routes = append(t.routes, r)
	}
	return t, nil
}

var defaultRoutes = []Route{
	{Path: "/", View: ViewHome},
	{Path: "/books", View: ViewBooks},
	{Path: "/authors", View: ViewAuthors},
	{Path: "/genres", View: ViewGenres},
	{Path: "/bookinstances", View: ViewBookInstances},
	{Path: "/author/create", View: ViewCreateAuthor},
	{Path: "/genre/create", View: ViewCreateGenre},
	{Path: "/book/create", View: ViewCreateBook},
	{Path: "/bookinstance/create", View: ViewCreateBookInstance},
}

// DefaultTable returns the LocalLibrary route table. It panics only if the
// static table itself is malformed.
func DefaultTable() *Table {
	t, err := NewTable(defaultRoutes...)
	if err != nil {
		panic(fmt.Sprintf("router: default table: %v", err))
	}
	return t
}

// Routes returns a copy of the table in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match looks up path by exact string equality.
func (t *Table) Match(path string) (Route, bool) {
	view, ok := t.byPath[path]
	if !ok {
		return Route{}, false
	}
	return Route{Path: path, View: view}, true
}

// Resolve returns the view for path, or ViewNotFound.
func (t *Table) Resolve(path string) ViewID {
	return t.byPath[path]
}

// Has reports whether path is routed.
func (t *Table) Has(path string) bool {
	_, ok := t.byPath[path]
	return ok
}
