// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leads

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/leads-report/dataset"
)

// DateFormat is how derived dates are written back into the frame
const DateFormat = "2006-01-02"

var ErrBadDate = errors.New("unrecognised date")

// dateLayouts are tried in order. Sheets exports US-style dates by default.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

// Report is the transformed lead table
type Report struct {
	layout Layout
	frame  *dataset.Frame
}

// Prepare runs the cleanup pipeline on a raw sheet:
// drop unused columns, derive the date column, newest first, rename.
func Prepare(raw *dataset.Frame, layout Layout) (*Report, error) {
	frame := raw.Clone()

	if err := frame.Drop(layout.DropColumns...); err != nil {
		return nil, err
	}

	source, err := frame.Column(layout.DateSource)
	if err != nil {
		return nil, fmt.Errorf("date source: %w", err)
	}

	dates := make([]string, len(source))
	for i, cell := range source {
		d, ok, err := ParseDate(cell)
		if err != nil {
			// +2 skips the header and makes the row 1-based like the sheet
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if ok {
			dates[i] = d.Format(DateFormat)
		}
	}
	if err := frame.WithColumn(layout.DateColumn, dates); err != nil {
		return nil, err
	}

	// ISO dates compare correctly as strings; rows without a date go last
	dateIdx := frame.Index(layout.DateColumn)
	frame.SortStable(func(a, b []string) bool {
		da, db := a[dateIdx], b[dateIdx]
		if da == "" || db == "" {
			return da != "" && db == ""
		}
		return da > db
	})

	frame.Rename(layout.Renames)

	return &Report{layout: layout, frame: frame}, nil
}

// ParseDate reads a sheet date and truncates it to the calendar day.
// ok is false for an empty cell.
func ParseDate(cell string) (d time.Time, ok bool, err error) {
	s := strings.TrimSpace(cell)
	if dataset.IsMissing(s) {
		return time.Time{}, false, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrBadDate, cell)
}

// Layout returns the layout the report was prepared with
func (r *Report) Layout() Layout {
	return r.layout
}

// Shape returns the record and feature counts of the full table
func (r *Report) Shape() (records, features int) {
	return r.frame.Shape()
}

// Frame returns the full transformed table
func (r *Report) Frame() *dataset.Frame {
	return r.frame
}

// ClampRecords bounds a requested record count to [1, total].
// Zero or negative asks for every record.
func (r *Report) ClampRecords(n int) int {
	total, _ := r.frame.Shape()
	if n <= 0 || n > total {
		return total
	}
	return n
}

// Records returns the n newest rows in display column order
func (r *Report) Records(n int) *dataset.Frame {
	return r.frame.Head(r.ClampRecords(n)).Reindex(r.layout.DisplayColumns)
}

// Series returns the dated points of a numeric column in chronological order.
// Rows with no date or no value are skipped.
func Series(records *dataset.Frame, dateColumn, valueColumn string) ([]time.Time, []float64, error) {
	dates, err := records.Column(dateColumn)
	if err != nil {
		return nil, nil, err
	}
	cells, err := records.Column(valueColumn)
	if err != nil {
		return nil, nil, err
	}

	var xs []time.Time
	var ys []float64
	// Records are newest first; walk backwards for a left-to-right time axis
	for i := len(dates) - 1; i >= 0; i-- {
		if dates[i] == "" || dataset.IsMissing(cells[i]) {
			continue
		}
		d, err := time.Parse(DateFormat, dates[i])
		if err != nil {
			continue
		}
		v, err := dataset.ParseNumber(cells[i])
		if err != nil {
			continue
		}
		xs = append(xs, d)
		ys = append(ys, v)
	}
	return xs, ys, nil
}
