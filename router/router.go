// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/leads-report/cliparse"
	"github.com/danielhkuo/leads-report/handlers"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/middleware"
)

func NewRouter(src handlers.ReportSource, layout leads.Layout, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(cfg)
	dashboardHandler := handlers.NewDashboardHandler(src, layout, sessionHandler)
	chartHandler := handlers.NewChartHandler(src, layout)
	exportHandler := handlers.NewExportHandler(src, layout)
	reportHandler := handlers.NewReportHandler(src, layout)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard pages (password gate when signed out)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(middleware.NoStore(dashboardHandler.Index)))
	mux.HandleFunc("POST /login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(sessionHandler.Logout))
	mux.HandleFunc("POST /refresh", middleware.WithLogging(dashboardHandler.Refresh))

	// Session required
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(sessionHandler.Require(middleware.NoStore(h)))
	}

	mux.HandleFunc("GET /charts/{name}", protected(chartHandler.GetChart))
	mux.HandleFunc("GET /export/daily_records.csv", protected(exportHandler.GetRecords))
	mux.HandleFunc("GET /export/summary_stats.csv", protected(exportHandler.GetSummary))
	mux.HandleFunc("GET /export/leads_report.xlsx", protected(exportHandler.GetWorkbook))
	mux.HandleFunc("GET /api/report", protected(reportHandler.GetReport))

	return mux
}
