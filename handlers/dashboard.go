// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/leads-report/dataset"
	"github.com/danielhkuo/leads-report/export"
	"github.com/danielhkuo/leads-report/leads"
	"github.com/danielhkuo/leads-report/middleware"
	"github.com/danielhkuo/leads-report/models"
	"github.com/danielhkuo/leads-report/stats"
)

type DashboardHandler struct {
	reports reports
	session *SessionHandler
	pages   *pages
}

func NewDashboardHandler(src ReportSource, layout leads.Layout, session *SessionHandler) *DashboardHandler {
	return &DashboardHandler{
		reports: reports{src: src, layout: layout},
		session: session,
		pages:   mustParsePages(),
	}
}

type sectionOption struct {
	Value   string
	Label   string
	Checked bool
}

type chartLink struct {
	Title string
	URL   string
}

type summaryTable struct {
	Columns []string
	Rows    [][]string
}

type leadsSection struct {
	Records     string
	Features    string
	Total       int
	Selected    int
	Table       models.Table
	Summary     summaryTable
	Charts      []chartLink
	RecordsURL  string
	SummaryURL  string
	WorkbookURL string
}

type dashboardData struct {
	Title         string
	Welcome       string
	Section       string
	SectionLabel  string
	Sections      []sectionOption
	FetchedAgo    string
	Leads         *leadsSection
	CampaignsNote string
}

// Index handles GET /
// Without a session it shows the password gate; otherwise the selected section
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	if !h.session.Authorized(r) {
		h.pages.gate(w, http.StatusUnauthorized)
		return
	}

	section := r.URL.Query().Get("section")
	if _, ok := models.SectionLabels[section]; !ok {
		section = models.SectionLeads
	}

	v, err := h.reports.load(r.Context(), parseRecords(r))
	if err != nil {
		slog.Error("failed to load report",
			"request_id", middleware.RequestID(r.Context()),
			"error", err,
		)
		h.pages.errorPage(w, http.StatusBadGateway, loadErrorMessage(err))
		return
	}

	data := dashboardData{
		Title:        PageTitle,
		Welcome:      WelcomeMessage,
		Section:      section,
		SectionLabel: models.SectionLabels[section],
		FetchedAgo:   humanize.Time(v.fetchedAt),
	}
	for _, s := range models.Sections {
		data.Sections = append(data.Sections, sectionOption{
			Value:   s,
			Label:   models.SectionLabels[s],
			Checked: s == section,
		})
	}

	switch section {
	case models.SectionLeads:
		data.Leads = h.leadsSection(v)
	case models.SectionCampaigns:
		data.CampaignsNote = "Campaign analytics are not available yet."
	}

	h.pages.render(w, http.StatusOK, "dashboard.html", data)
}

// Refresh handles POST /refresh
// Drops the cached sheet and returns to the section and records the form carried
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.session.Authorized(r) {
		h.reports.src.Invalidate()
		slog.Info("sheet cache invalidated", "request_id", middleware.RequestID(r.Context()))
	}
	http.Redirect(w, r, refreshTarget(r), http.StatusSeeOther)
}

// refreshTarget rebuilds the dashboard URL from the refresh form.
// Unknown sections and invalid record counts are left out.
func refreshTarget(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return "/"
	}

	q := url.Values{}
	if section := r.PostFormValue("section"); section != "" {
		if _, ok := models.SectionLabels[section]; ok {
			q.Set("section", section)
		}
	}
	if n, err := strconv.Atoi(r.PostFormValue("records")); err == nil && n > 0 {
		q.Set("records", strconv.Itoa(n))
	}
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func (h *DashboardHandler) leadsSection(v *view) *leadsSection {
	total, features := v.report.Shape()
	query := "?records=" + strconv.Itoa(v.selected)

	s := &leadsSection{
		Records:     humanize.Comma(int64(total)),
		Features:    humanize.Comma(int64(features)),
		Total:       total,
		Selected:    v.selected,
		Table:       toTable(v.records),
		Summary:     toSummaryTable(v.summary),
		RecordsURL:  "/export/" + export.RecordsFile + query,
		SummaryURL:  "/export/" + export.SummaryFile + query,
		WorkbookURL: "/export/" + export.WorkbookFile + query,
	}
	for _, c := range h.reports.layout.Charts {
		s.Charts = append(s.Charts, chartLink{
			Title: c.Title,
			URL:   "/charts/" + url.PathEscape(c.Name) + ".svg" + query,
		})
	}
	return s
}

func toSummaryTable(s stats.Summary) summaryTable {
	t := summaryTable{Columns: s.Columns}
	for _, r := range s.Rows {
		row := []string{r.Statistic}
		for _, v := range r.Values {
			row = append(row, stats.FormatValue(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// loadErrorMessage explains a failed load without leaking internals
func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, dataset.ErrMissingColumn), errors.Is(err, leads.ErrBadDate):
		return fmt.Sprintf("The spreadsheet does not match the expected layout: %v", err)
	default:
		return "Failed to load spreadsheet"
	}
}
