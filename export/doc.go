// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export writes the dashboard tables as CSV downloads and as an XLSX workbook.
package export
