// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the leads dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(loader, layout, cfg)

# Endpoints

Health:

	GET /health

Pages (password gate without a session):

	GET  /         - Dashboard (?section=leads|campaigns&records=N)
	POST /login    - Check password, set session cookie
	POST /logout   - Clear session cookie
	POST /refresh  - Drop the cached sheet

Session required:

	GET /charts/{name}.svg            - Line chart (prospects, maids)
	GET /export/daily_records.csv     - Selected records
	GET /export/summary_stats.csv     - Summary statistics
	GET /export/leads_report.xlsx     - Both as a workbook
	GET /api/report                   - JSON report

Every route except /health is wrapped with middleware.WithLogging, and
data routes are marked Cache-Control: no-store.
*/
package router
