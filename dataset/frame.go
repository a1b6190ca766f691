// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var ErrMissingColumn = errors.New("column not found")

// Frame is a row-major table of string cells with named columns.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// New builds a frame, padding or truncating every row to the header width
func New(columns []string, rows [][]string) *Frame {
	f := &Frame{
		Columns: slices.Clone(columns),
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		f.Rows = append(f.Rows, fitRow(row, len(columns)))
	}
	return f
}

func fitRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// Shape returns the number of rows and columns
func (f *Frame) Shape() (rows, cols int) {
	return len(f.Rows), len(f.Columns)
}

// Index returns the position of a column, or -1
func (f *Frame) Index(col string) int {
	return slices.Index(f.Columns, col)
}

// Column returns a copy of the cells of a column
func (f *Frame) Column(col string) ([]string, error) {
	idx := f.Index(col)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, col)
	}
	out := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Clone returns a deep copy
func (f *Frame) Clone() *Frame {
	return New(f.Columns, f.Rows)
}

// Drop removes the named columns. Every column must exist.
func (f *Frame) Drop(cols ...string) error {
	drop := make(map[int]bool, len(cols))
	for _, col := range cols {
		idx := f.Index(col)
		if idx < 0 {
			return fmt.Errorf("drop: %w: %q", ErrMissingColumn, col)
		}
		drop[idx] = true
	}

	keep := make([]int, 0, len(f.Columns)-len(drop))
	for i := range f.Columns {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	f.project(keep)
	return nil
}

// Rename relabels columns. Keys that are not present are ignored.
func (f *Frame) Rename(names map[string]string) {
	for i, col := range f.Columns {
		if to, ok := names[col]; ok {
			f.Columns[i] = to
		}
	}
}

// WithColumn appends a column, or replaces it when the name already exists
func (f *Frame) WithColumn(name string, values []string) error {
	if len(values) != len(f.Rows) {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), len(f.Rows))
	}

	idx := f.Index(name)
	if idx < 0 {
		f.Columns = append(f.Columns, name)
		for i := range f.Rows {
			f.Rows[i] = append(f.Rows[i], values[i])
		}
		return nil
	}
	for i := range f.Rows {
		f.Rows[i][idx] = values[i]
	}
	return nil
}

// SortStable orders rows with less, keeping the input order of equal rows
func (f *Frame) SortStable(less func(a, b []string) bool) {
	sort.SliceStable(f.Rows, func(i, j int) bool {
		return less(f.Rows[i], f.Rows[j])
	})
}

// Head returns a frame with the first n rows. n is clamped to [0, rows].
func (f *Frame) Head(n int) *Frame {
	n = max(0, min(n, len(f.Rows)))
	return New(f.Columns, f.Rows[:n])
}

// Reindex returns a frame with exactly the given columns, in order.
// Columns the frame does not have are filled with empty cells.
func (f *Frame) Reindex(cols []string) *Frame {
	idx := make([]int, len(cols))
	for i, col := range cols {
		idx[i] = f.Index(col)
	}

	out := &Frame{
		Columns: slices.Clone(cols),
		Rows:    make([][]string, len(f.Rows)),
	}
	for r, row := range f.Rows {
		cells := make([]string, len(cols))
		for c, src := range idx {
			if src >= 0 {
				cells[c] = row[src]
			}
		}
		out.Rows[r] = cells
	}
	return out
}

// Floats parses a column as numbers. Empty cells become NaN.
// ok is false when any non-empty cell is not numeric.
func (f *Frame) Floats(col string) (values []float64, ok bool) {
	cells, err := f.Column(col)
	if err != nil {
		return nil, false
	}

	values = make([]float64, len(cells))
	for i, cell := range cells {
		if IsMissing(cell) {
			values[i] = math.NaN()
			continue
		}
		v, err := ParseNumber(cell)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// IsMissing reports whether a cell holds no value
func IsMissing(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "nan", "null", "none", "na", "n/a", "#n/a", "<na>":
		return true
	}
	return false
}

// ParseNumber accepts plain and thousands-separated numbers
func ParseNumber(cell string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	return strconv.ParseFloat(s, 64)
}

func (f *Frame) project(keep []int) {
	cols := make([]string, len(keep))
	for i, src := range keep {
		cols[i] = f.Columns[src]
	}
	for r, row := range f.Rows {
		cells := make([]string, len(keep))
		for i, src := range keep {
			cells[i] = row[src]
		}
		f.Rows[r] = cells
	}
	f.Columns = cols
}
