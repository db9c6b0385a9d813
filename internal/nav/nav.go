// Package nav holds the navigation menu and the current-path cell.
package nav

import (
	"errors"
	"fmt"
)

// Link is a labelled menu entry pointing at a path.
type Link struct {
	Label string
	Path  string
}

var (
	primaryLinks = []Link{
		{Label: "Home", Path: "/"},
		{Label: "All books", Path: "/books"},
		{Label: "All authors", Path: "/authors"},
		{Label: "All genres", Path: "/genres"},
		{Label: "All book-instances", Path: "/bookinstances"},
	}
	createLinks = []Link{
		{Label: "Create new author", Path: "/author/create"},
		{Label: "Create new genre", Path: "/genre/create"},
		{Label: "Create new book", Path: "/book/create"},
		{Label: "Create new book instance", Path: "/bookinstance/create"},
	}
)

// Primary returns the browse links in display order.
func Primary() []Link {
	return clone(primaryLinks)
}

// Create returns the creation-action links in display order.
func Create() []Link {
	return clone(createLinks)
}

// Menu returns both groups flattened, primary first.
func Menu() []Link {
	out := make([]Link, 0, len(primaryLinks)+len(createLinks))
	out = append(out, primaryLinks...)
	return append(out, createLinks...)
}

func clone(links []Link) []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// ErrDeadLink reports a menu link whose path has no route.
var ErrDeadLink = errors.New("menu link has no route")

// Routes is the part of a route table CheckLinks needs.
type Routes interface {
	Has(path string) bool
}

// CheckLinks verifies every link path is routed. All offenders are reported.
// Routes without a menu entry are fine.
func CheckLinks(routes Routes, groups ...[]Link) error {
	var errs []error
	for _, group := range groups {
		for _, link := range group {
			if !routes.Has(link.Path) {
				errs = append(errs, fmt.Errorf("%w: %q -> %q", ErrDeadLink, link.Label, link.Path))
			}
		}
	}
	return errors.Join(errs...)
}

// State is the current navigation path. It has a single owner (the shell)
// and is only changed through Activate.
type State struct {
	path string
}

// NewState starts navigation at path.
func NewState(start string) State {
	return State{path: start}
}

// Path returns the current path.
func (s State) Path() string {
	return s.path
}

// Activate sets the current path and reports whether it changed. Paths are
// not validated here; unmatched paths are the router's concern.
func (s *State) Activate(path string) bool {
	if s.path == path {
		return false
	}
	s.path = path
	return true
}
