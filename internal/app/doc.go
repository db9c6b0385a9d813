// Package app provides the orchestration layer for the Folio application.
//
// # Overview
//
// This package wires together configuration, logging, the catalog client, the
// route table, and the UI. It is the composition root: every dependency is
// built here and handed down explicitly.
//
// # Startup Sequence
//
//  1. Load the optional dotenv file (--env-file)
//  2. Read ~/.config/folio/config.toml, apply FOLIO_* environment overrides,
//     then command-line overrides, and validate the result
//  3. Open the zerolog file logger (the terminal belongs to the TUI)
//  4. Build the route table and check every menu link resolves
//  5. Create the catalog client
//  6. Load preferences (theme) and start the UI; block until exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> LoadConfig()          dotenv, TOML, env, flags
//	       ├─────> logger.New()          JSON log file
//	       ├─────> Routes()              router table + nav.CheckLinks
//	       ├─────> catalog.NewClient()   resty HTTP client
//	       └─────> ui.Run()              Bubble Tea program (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid configuration or unreadable config/env file
//   - Log file cannot be opened
//   - A menu link without a route
//
// Catalog failures are not fatal. The catalog service is not contacted
// until the book list is opened, and a failed fetch renders as an error in
// that view.
package app
