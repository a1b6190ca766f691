// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/leads-report/charts"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/middleware"
)

type ChartHandler struct {
	reports reports
}

func NewChartHandler(src ReportSource, layout leads.Layout) *ChartHandler {
	return &ChartHandler{reports: reports{src: src, layout: layout}}
}

// GetChart handles GET /charts/{name}
// name is a layout chart name with an .svg suffix
func (h *ChartHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("name"), ".svg")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Chart not found")
		return
	}
	spec, ok := h.reports.layout.Chart(name)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Chart not found")
		return
	}

	v, err := h.reports.load(r.Context(), parseRecords(r))
	if err != nil {
		slog.Error("failed to load report for chart", "chart", name, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, loadErrorMessage(err))
		return
	}

	dateColumn := h.reports.layout.DateColumn
	xs, ys, err := leads.Series(v.report.Frame().Head(v.selected), dateColumn, spec.Column)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadGateway, loadErrorMessage(err))
		return
	}

	svg, err := charts.Line{
		Title:  spec.Title,
		XTitle: dateColumn,
		YTitle: spec.Column,
		X:      xs,
		Y:      ys,
	}.RenderSVG()
	if err != nil {
		slog.Error("failed to render chart", "chart", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}
