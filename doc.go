// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the leads report dashboard.

The dashboard reads daily lead counts from a published Google Sheet, shows
the newest records with summary statistics and line charts, and offers the
same data as CSV, XLSX and JSON. Access is gated by a shared password.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SHEET_ID=1AbC... DASHBOARD_PASSWORD=... SESSION_SALT=... go run .

Or with flags:

	go run . -p 3318 -sheet-id 1AbC... -password ... -session-salt ...

A .env file in the working directory is loaded first. To store only a
bcrypt hash of the password:

	go run . -hash-password 'secret'   # prints the value for DASHBOARD_PASSWORD_HASH

# Configuration

Required settings:

  - SHEET_ID (-sheet-id) or SHEET_URL (-sheet-url): spreadsheet source
  - DASHBOARD_PASSWORD (-password) or DASHBOARD_PASSWORD_HASH (-password-hash)
  - SESSION_SALT (-session-salt): Secret for session cookie HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - SHEET_NAME (-sheet-name): Sheet tab (default: Leads)
  - CACHE_TTL (-cache-ttl): Sheet reuse window (default: 1m, 0 disables)
  - FETCH_TIMEOUT (-fetch-timeout): Download timeout (default: 15s)
  - SESSION_MAX_AGE (-session-max-age): Login lifetime (default: 12h)
  - LAYOUT_PATH (-layout): YAML column layout overrides

# Architecture

  - sheet: CSV download, parsing and the cached loader
  - dataset: In-memory string table
  - leads: Column layout and the cleanup pipeline
  - stats: Mean, min and max per numeric column
  - charts: SVG line charts
  - export: CSV and XLSX writers
  - handlers: HTTP request handlers and page templates
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, JSON helpers
  - models: Response types
  - auth: Password check and session tokens
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
