// Package ui provides the terminal user interface for Folio.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. The root Model is the single owner of
// navigation state: it holds the current path (nav.State), the route table,
// and the one mounted page. There is no ambient global state; pages receive
// what they need at mount time.
//
// # Package Structure
//
//   - model.go: Options, root Model, Update/View, and the Run entry point
//   - navigation.go: navigateMsg and the mount/teardown lifecycle
//   - pages.go: the page interface plus home, placeholder, and not-found pages
//   - books.go: the book list page and its fetch controller
//   - sidebar.go: the menu pane and its key handling
//   - prompt.go: the ":" go-to-path prompt
//   - keys.go, help.go, theme.go: bindings, help overlay, color themes
//
// # Mount Lifecycle
//
//  1. A link activation, book row, or typed path produces a path
//  2. nav.State.Activate records it; an unchanged path stops here
//  3. The mounted page is torn down (its fetch controller cancels and
//     invalidates its in-flight request)
//  4. The route table resolves the path; a fresh page is built and its
//     Init command runs
//
// Pressing r remounts the current path, which is how a failed book list is
// retried.
//
// # Stale Results
//
// Fetch results travel as messages tagged with the issuing controller's
// token. A result that arrives after its page was torn down either reaches
// a page that ignores it or a newer books page whose controller rejects the
// token. Either way the model and its rendered output are unchanged.
//
// # Key Bindings
//
//   - j/k, g/G: Move within the focused pane
//   - enter: Open the selected link or book
//   - tab: Switch focus between menu and content
//   - :: Go to a typed path
//   - r: Reload the current view
//   - T: Cycle theme (saved to prefs)
//   - h/?: Toggle help
//   - q or ctrl+c: Quit
package ui
