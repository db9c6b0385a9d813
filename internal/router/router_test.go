package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable_RouteSurface(t *testing.T) {
	table := DefaultTable()

	want := map[string]ViewID{
		"/":                    ViewHome,
		"/books":               ViewBooks,
		"/authors":             ViewAuthors,
		"/genres":              ViewGenres,
		"/bookinstances":       ViewBookInstances,
		"/author/create":       ViewCreateAuthor,
		"/genre/create":        ViewCreateGenre,
		"/book/create":         ViewCreateBook,
		"/bookinstance/create": ViewCreateBookInstance,
	}

	routes := table.Routes()
	require.Len(t, routes, len(want))
	for _, r := range routes {
		assert.Equal(t, want[r.Path], r.View, "route %q", r.Path)
	}
	for path, view := range want {
		assert.Equal(t, view, table.Resolve(path), "Resolve(%q)", path)
	}
}

func TestResolve_UnmatchedIsNotFound(t *testing.T) {
	table := DefaultTable()

	for _, path := range []string{"/nonexistent", "", "books", "/books/", "/BOOKS", "/book/1", "/books?x=1"} {
		assert.Equal(t, ViewNotFound, table.Resolve(path), "Resolve(%q)", path)
		_, ok := table.Match(path)
		assert.False(t, ok, "Match(%q)", path)
		assert.False(t, table.Has(path), "Has(%q)", path)
	}
}

func TestResolve_IndependentOfHistory(t *testing.T) {
	table := DefaultTable()
	sequence := []string{"/books", "/nope", "/", "/books", "/genre/create", "/nope", "/books"}

	first := make([]ViewID, len(sequence))
	for i, p := range sequence {
		first[i] = table.Resolve(p)
	}
	for i := len(sequence) - 1; i >= 0; i-- {
		assert.Equal(t, first[i], table.Resolve(sequence[i]))
	}
}

func TestMatch_ReturnsRoute(t *testing.T) {
	r, ok := DefaultTable().Match("/books")
	require.True(t, ok)
	assert.Equal(t, Route{Path: "/books", View: ViewBooks}, r)
}

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr error
	}{
		{"duplicate", []Route{{"/a", ViewHome}, {"/a", ViewBooks}}, ErrDuplicatePath},
		{"empty path", []Route{{"", ViewHome}}, ErrInvalidPath},
		{"relative path", []Route{{"books", ViewBooks}}, ErrInvalidPath},
		{"not-found target", []Route{{"/x", ViewNotFound}}, ErrInvalidView},
		{"unknown view", []Route{{"/x", ViewID(99)}}, ErrInvalidView},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.routes...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoutes_ReturnsCopy(t *testing.T) {
	table := DefaultTable()
	routes := table.Routes()
	routes[0].Path = "/mutated"

	assert.Equal(t, "/", table.Routes()[0].Path)
	assert.Equal(t, ViewNotFound, table.Resolve("/mutated"))
}

func TestViewID_String(t *testing.T) {
	assert.Equal(t, "books", ViewBooks.String())
	assert.Equal(t, "not-found", ViewNotFound.String())
	assert.Equal(t, "view(42)", ViewID(42).String())
}
