// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/leads-report/export"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/middleware"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	reports reports
}

func NewExportHandler(src ReportSource, layout leads.Layout) *ExportHandler {
	return &ExportHandler{reports: reports{src: src, layout: layout}}
}

// GetRecords handles GET /export/daily_records.csv
func (h *ExportHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, export.RecordsFile, csvContentType, func(buf *bytes.Buffer, v *view) error {
		return export.WriteCSV(buf, v.records)
	})
}

// GetSummary handles GET /export/summary_stats.csv
func (h *ExportHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, export.SummaryFile, csvContentType, func(buf *bytes.Buffer, v *view) error {
		return export.WriteSummaryCSV(buf, v.summary)
	})
}

// GetWorkbook handles GET /export/leads_report.xlsx
func (h *ExportHandler) GetWorkbook(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, export.WorkbookFile, xlsxContentType, func(buf *bytes.Buffer, v *view) error {
		return export.WriteWorkbook(buf, v.records, v.summary)
	})
}

func (h *ExportHandler) serve(w http.ResponseWriter, r *http.Request, filename, contentType string, write func(*bytes.Buffer, *view) error) {
	v, err := h.reports.load(r.Context(), parseRecords(r))
	if err != nil {
		slog.Error("failed to load report for export", "file", filename, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, loadErrorMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, v); err != nil {
		slog.Error("failed to write export", "file", filename, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build download")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
