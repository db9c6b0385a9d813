// Package config loads Folio's runtime configuration.
//
// # Overview
//
// Folio needs very little to start: where the catalog service lives, how long a
// request may take, where to write its log file and which path to open first.
// All of it has a sensible default so the browser works against a local
// LocalLibrary backend without any configuration at all.
//
// # Resolution Order
//
// Load builds a Config in layers, later layers winning:
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/folio/config.toml
//  3. FOLIO_* environment variables (parsed with caarlos0/env)
//
// A missing config file is NOT an error. Empty or whitespace-only values in
// the file fall back to the defaults. Unset environment variables leave the
// file values alone.
//
// LoadEnvFile can be called before Load to export a dotenv file into the
// process environment; variables that are already set are kept.
//
// # TOML Format
//
//	catalog_url = "http://localhost:3000"
//	request_timeout = "10s"
//	log_file = "~/.local/state/folio/folio.log"
//	start_path = "/"
//
// # Environment Variables
//
//   - FOLIO_CATALOG_URL
//   - FOLIO_REQUEST_TIMEOUT (Go duration syntax)
//   - FOLIO_LOG_FILE
//   - FOLIO_START_PATH
//
// # Validation
//
// Load does not validate, so a later layer (command-line flags) can still
// replace a bad value. Callers finish with Config.Validate, which rejects a
// catalog URL without a host or with a non-HTTP scheme, a non-positive
// timeout, and a start path that does not begin with "/". The returned
// errors wrap ErrInvalidCatalogURL, ErrInvalidTimeout and ErrInvalidStartPath
// respectively.
//
// Tilde expansion is applied to the config path and to log_file.
package config
