// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON types and section names shared by handlers.

# Sections

The sidebar offers two sections:

	models.SectionLeads     → "Facebook & Website Leads"
	models.SectionCampaigns → "Campaign Analytics"

# Report

GET /api/report returns a ReportResponse:

	{
	  "shape": {"records": 120, "features": 9},
	  "selected": 30,
	  "records": {"columns": ["Date", "# Prospects", ...], "rows": [["2021-03-01", "12", ...]]},
	  "summary": {"columns": ["# Prospects", ...], "rows": [{"statistic": "mean", "values": [10, null]}]},
	  "fetched_at": "2021-03-01T10:00:00Z"
	}

Summary values are null where a column has no numbers.

# Errors

All API errors use ErrorResponse:

	{"error": "Bad Gateway", "message": "Failed to load spreadsheet"}
*/
package models
