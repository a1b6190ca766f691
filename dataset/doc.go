// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset holds the small in-memory table the dashboard works on.

A Frame keeps every cell as the string read from the spreadsheet CSV and
offers only the column operations the report needs:

	f := dataset.New(header, rows)
	err := f.Drop("Timestamp")
	f.Rename(map[string]string{"Total Number of Maids": "# Maids"})
	top := f.Head(10).Reindex([]string{"Date", "# Maids"})

Numeric interpretation happens on demand with Floats, which treats empty
and NA-like cells as NaN and reports whether the column is numeric at all.
*/
package dataset
