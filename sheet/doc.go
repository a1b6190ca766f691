// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheet reads the lead data from a published Google Sheets tab.

# Source URL

Sheets publishes any tab as CSV through the visualization endpoint:

	u := sheet.ExportURL(sheetID, "Leads")
	c := sheet.NewClient(u, 15*time.Second)
	frame, err := c.Fetch(ctx)

# Caching

Loader sits in front of a Client. It keeps the last sheet for a short TTL
and uses singleflight so a burst of page loads triggers one download:

	loader := sheet.NewLoader(c, time.Minute)
	snap, err := loader.Load(ctx)

Every Load returns a copy of the frame, so callers may transform it in
place. Invalidate forces the next Load to go back to the network.
*/
package sheet
