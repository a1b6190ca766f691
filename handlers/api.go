// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/middleware"
	"github.com/danielhkuo/leads-report/models"
)

type ReportHandler struct {
	reports reports
}

func NewReportHandler(src ReportSource, layout leads.Layout) *ReportHandler {
	return &ReportHandler{reports: reports{src: src, layout: layout}}
}

// GetReport handles GET /api/report
// Returns the dataset shape, the selected records and their summary
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	v, err := h.reports.load(r.Context(), parseRecords(r))
	if err != nil {
		slog.Error("failed to load report",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		middleware.ErrorResponse(w, http.StatusBadGateway, loadErrorMessage(err))
		return
	}

	records, features := v.report.Shape()
	middleware.JSONResponse(w, http.StatusOK, models.ReportResponse{
		Shape:     models.Shape{Records: records, Features: features},
		Selected:  v.selected,
		Records:   toTable(v.records),
		Summary:   toSummary(v.summary),
		FetchedAt: v.fetchedAt,
	})
}
