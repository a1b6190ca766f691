package models

import "time"

// Dashboard sections
const (
	SectionLeads     = "leads"
	SectionCampaigns = "campaigns"
)

// SectionLabels are the sidebar captions of each section
var SectionLabels = map[string]string{
	SectionLeads:     "Facebook & Website Leads",
	SectionCampaigns: "Campaign Analytics",
}

// Sections lists the sidebar options in display order
var Sections = []string{SectionLeads, SectionCampaigns}

// Response types

// Shape describes the full transformed dataset
type Shape struct {
	Records  int `json:"records"`
	Features int `json:"features"`
}

// Table is a header plus string rows
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SummaryRow is one statistic across the numeric columns.
// Missing values are null.
type SummaryRow struct {
	Statistic string     `json:"statistic"`
	Values    []*float64 `json:"values"`
}

type Summary struct {
	Columns []string     `json:"columns"`
	Rows    []SummaryRow `json:"rows"`
}

// ReportResponse is returned by GET /api/report
type ReportResponse struct {
	Shape     Shape     `json:"shape"`
	Selected  int       `json:"selected"`
	Records   Table     `json:"records"`
	Summary   Summary   `json:"summary"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
