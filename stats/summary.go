// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"math"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/danielhkuo/leads-report/dataset"
)

// Statistic names, in the order rows are reported
const (
	Mean = "mean"
	Min  = "min"
	Max  = "max"
)

var statistics = []string{Mean, Min, Max}

// Row is one statistic across every numeric column
type Row struct {
	Statistic string
	Values    []float64
}

// Summary is a statistic-by-column table. Missing values are NaN.
type Summary struct {
	Columns []string
	Rows    []Row
}

// Describe summarises the numeric columns of a frame.
// Columns with any non-numeric cell are left out, as are the excluded ones.
// A column with no values at all is kept with NaN statistics.
// Values are rounded to whole numbers, half to even.
func Describe(f *dataset.Frame, exclude ...string) Summary {
	summary := Summary{Rows: make([]Row, len(statistics))}
	for i, name := range statistics {
		summary.Rows[i].Statistic = name
	}

	for _, col := range f.Columns {
		if slices.Contains(exclude, col) {
			continue
		}
		values, ok := f.Floats(col)
		if !ok {
			continue
		}

		present := dropNaN(values)
		summary.Columns = append(summary.Columns, col)
		for i, name := range statistics {
			summary.Rows[i].Values = append(summary.Rows[i].Values, compute(name, present))
		}
	}
	return summary
}

// Value returns one cell of the summary
func (s Summary) Value(statistic, column string) (float64, bool) {
	col := -1
	for i, c := range s.Columns {
		if c == column {
			col = i
			break
		}
	}
	if col < 0 {
		return math.NaN(), false
	}
	for _, row := range s.Rows {
		if row.Statistic == statistic {
			return row.Values[col], true
		}
	}
	return math.NaN(), false
}

// FormatValue renders a summary value; NaN is an empty cell
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func compute(name string, values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	var v float64
	switch name {
	case Mean:
		v = stat.Mean(values, nil)
	case Min:
		v = floats.Min(values)
	case Max:
		v = floats.Max(values)
	}
	return math.RoundToEven(v)
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
