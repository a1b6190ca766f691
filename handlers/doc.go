// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the leads dashboard.

# Handler Types

Each handler is a struct built from a report source and the sheet layout:

  - SessionHandler: password gate, login and logout
  - DashboardHandler: the HTML dashboard and cache refresh
  - ChartHandler: SVG line charts
  - ExportHandler: CSV and XLSX downloads
  - ReportHandler: JSON report

Handlers are created via constructor functions:

	session := handlers.NewSessionHandler(cfg)
	dashboard := handlers.NewDashboardHandler(loader, layout, session)

# Request Flow

Every request reads the sheet through the ReportSource (normally a cached
sheet.Loader), prepares it with leads.Prepare and selects the newest
records:

	GET /?section=leads&records=30
	GET /charts/prospects.svg?records=30
	GET /export/daily_records.csv?records=30

The records parameter is clamped to the dataset size; a missing or invalid
value selects every record.

# Sessions

POST /login compares the form password with the configured secret and sets
a signed leads_session cookie. Pages without a session show the password
gate; the other routes answer 401 with a JSON error.

# Errors

A failed spreadsheet fetch or a sheet that no longer matches the layout is
reported as 502 Bad Gateway: an error page for HTML routes and a JSON error
for the rest.
*/
package handlers
