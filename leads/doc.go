// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leads turns the raw lead-collection sheet into the report table.

# Pipeline

Prepare applies the same steps on every load:

  - drop the form Timestamp column
  - parse "Date Collected" into a calendar Date column
  - sort newest first (undated rows last, ties keep sheet order)
  - rename the long sheet headers to the short "# Prospects" style

	report, err := leads.Prepare(frame, leads.DefaultLayout())
	records, features := report.Shape()
	top := report.Records(30) // newest 30, display column order

# Layout

Column names live in a Layout so a renamed sheet header does not need a
rebuild. LoadLayout overlays a YAML file on the defaults:

	date_source: Date Collected
	display_columns: [Date, "# Prospects", "# Maids"]
	charts:
	  - name: prospects
	    title: Prospect Numbers Collected over Time
	    column: "# Prospects"
*/
package leads
