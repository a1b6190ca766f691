// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded before flags are read.
Variables already present in the environment win over the file.

# Config Fields

  - Port: Server listen port (default: 3318)
  - SheetID / SheetName: Published Google Sheet and tab (tab default: Leads)
  - SheetURL: Any CSV URL, replaces SheetID/SheetName
  - Password / PasswordHash: Shared dashboard password, plain or bcrypt (one required)
  - SessionSalt: Secret for session cookie signing (required)
  - SessionMaxAge: Login lifetime (default: 12h)
  - CacheTTL: How long a fetched sheet is reused (default: 1m, 0 disables)
  - FetchTimeout: Sheet download timeout (default: 15s)
  - LayoutPath: Optional YAML column layout

# CLI Flags

	-p                Server port
	-sheet-id         Google Sheets document ID
	-sheet-name       Sheet tab name
	-sheet-url        Full CSV URL
	-layout           Layout YAML file
	-cache-ttl        Sheet cache TTL
	-fetch-timeout    Sheet download timeout
	-password         Dashboard password
	-password-hash    Bcrypt hash of the dashboard password
	-session-salt     Session cookie salt
	-session-max-age  Login lifetime
	-hash-password    Print a bcrypt hash and exit

# Environment Variables

Flags fall back to environment variables:

	PORT                     → -p
	SHEET_ID                 → -sheet-id
	SHEET_NAME               → -sheet-name
	SHEET_URL                → -sheet-url
	LAYOUT_PATH              → -layout
	CACHE_TTL                → -cache-ttl
	FETCH_TIMEOUT            → -fetch-timeout
	DASHBOARD_PASSWORD       → -password
	DASHBOARD_PASSWORD_HASH  → -password-hash
	SESSION_SALT             → -session-salt
	SESSION_MAX_AGE          → -session-max-age

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SHEET_ID or SHEET_URL must be provided
  - DASHBOARD_PASSWORD or DASHBOARD_PASSWORD_HASH must be provided
  - SESSION_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	loader := sheet.NewLoader(sheet.NewClient(cfg.SourceURL(), cfg.FetchTimeout), cfg.CacheTTL)
	mux := router.NewRouter(loader, layout, cfg)
*/
package cliparse
