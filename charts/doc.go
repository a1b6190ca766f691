// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package charts renders the dashboard's time-series line charts as SVG.

	svg, err := charts.Line{
		Title:  "Prospect Numbers Collected over Time",
		XTitle: "Date",
		YTitle: "# Prospects",
		X:      dates,
		Y:      values,
	}.RenderSVG()

Charts default to 450x450 and draw no grid lines. Empty input renders a
"No data" placeholder rather than an error.
*/
package charts
