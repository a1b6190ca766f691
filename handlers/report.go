// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/leads-report/dataset"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/models"
	"github.com/danielhkuo/leads-report/sheet"
	"github.com/danielhkuo/leads-report/stats"
)

// ReportSource provides the current raw sheet
type ReportSource interface {
	Load(ctx context.Context) (sheet.Snapshot, error)
	Invalidate()
}

// reports loads and prepares the sheet for one request
type reports struct {
	src    ReportSource
	layout leads.Layout
}

// view is everything a request needs about the report
type view struct {
	report    *leads.Report
	selected  int
	records   *dataset.Frame
	summary   stats.Summary
	fetchedAt time.Time
}

func (rs reports) load(ctx context.Context, requested int) (*view, error) {
	snap, err := rs.src.Load(ctx)
	if err != nil {
		return nil, err
	}

	report, err := leads.Prepare(snap.Frame, rs.layout)
	if err != nil {
		return nil, err
	}

	selected := report.ClampRecords(requested)
	records := report.Records(selected)
	return &view{
		report:    report,
		selected:  selected,
		records:   records,
		summary:   stats.Describe(records, rs.layout.DateColumn),
		fetchedAt: snap.FetchedAt,
	}, nil
}

// parseRecords reads the records query parameter; 0 means all records
func parseRecords(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("records"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func toTable(f *dataset.Frame) models.Table {
	rows := f.Rows
	if rows == nil {
		rows = [][]string{}
	}
	return models.Table{Columns: f.Columns, Rows: rows}
}

func toSummary(s stats.Summary) models.Summary {
	out := models.Summary{
		Columns: s.Columns,
		Rows:    make([]models.SummaryRow, 0, len(s.Rows)),
	}
	if out.Columns == nil {
		out.Columns = []string{}
	}
	for _, r := range s.Rows {
		values := make([]*float64, len(r.Values))
		for i, v := range r.Values {
			if !math.IsNaN(v) {
				values[i] = &v
			}
		}
		out.Rows = append(out.Rows, models.SummaryRow{Statistic: r.Statistic, Values: values})
	}
	return out
}
