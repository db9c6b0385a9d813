package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/folio/internal/router"
)

func TestCheckLinks_DefaultMenuIsFullyRouted(t *testing.T) {
	require.NoError(t, CheckLinks(router.DefaultTable(), Primary(), Create()))
}

func TestCheckLinks_ReportsEveryDeadLink(t *testing.T) {
	table, err := router.NewTable(router.Route{Path: "/", View: router.ViewHome})
	require.NoError(t, err)

	err = CheckLinks(table, []Link{
		{Label: "Home", Path: "/"},
		{Label: "Lost", Path: "/lost"},
		{Label: "Gone", Path: "/gone"},
	})
	require.ErrorIs(t, err, ErrDeadLink)
	assert.Contains(t, err.Error(), "/lost")
	assert.Contains(t, err.Error(), "/gone")
	assert.NotContains(t, err.Error(), `"Home"`)
}

func TestCheckLinks_RoutesWithoutLinksAreAllowed(t *testing.T) {
	assert.NoError(t, CheckLinks(router.DefaultTable(), []Link{{Label: "Home", Path: "/"}}))
}

func TestMenu_OrderAndGroups(t *testing.T) {
	primary, create := Primary(), Create()
	require.Len(t, primary, 5)
	require.Len(t, create, 4)

	menu := Menu()
	require.Len(t, menu, 9)
	assert.Equal(t, primary, menu[:5])
	assert.Equal(t, create, menu[5:])
	assert.Equal(t, Link{Label: "All books", Path: "/books"}, menu[1])
	assert.Equal(t, Link{Label: "Create new book instance", Path: "/bookinstance/create"}, menu[8])
}

func TestPrimary_ReturnsCopy(t *testing.T) {
	links := Primary()
	links[0].Path = "/changed"
	assert.Equal(t, "/", Primary()[0].Path)
}

func TestState_Activate(t *testing.T) {
	s := NewState("/")
	assert.Equal(t, "/", s.Path())

	assert.True(t, s.Activate("/books"))
	assert.Equal(t, "/books", s.Path())

	assert.False(t, s.Activate("/books"), "same path is not a change")

	assert.True(t, s.Activate("/nonexistent"), "unrouted paths are accepted")
	assert.Equal(t, "/nonexistent", s.Path())
}
