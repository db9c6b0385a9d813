// Package router maps navigation paths to page views.
//
// Dispatch is an explicit, closed table: every ViewID is a constant and every
// route is an exact path string. There are no wildcards, parameters or
// trailing-slash normalisation, so "/books" and "/books/" are different paths.
// The table is validated once when it is built (unique, absolute paths naming
// a real view) and is read-only afterwards.
//
// Resolve is total. Any path without a route yields ViewNotFound, which the
// UI renders as a not-found page instead of failing.
package router
