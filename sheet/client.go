// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/danielhkuo/leads-report/dataset"
)

var ErrEmptySheet = errors.New("spreadsheet returned no data")

// maxBodyBytes bounds how much of the CSV export is read
const maxBodyBytes = 32 << 20

// ExportURL returns the CSV export URL of a published Google Sheets tab
func ExportURL(sheetID, sheetName string) string {
	return fmt.Sprintf(
		"https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		url.PathEscape(sheetID), url.QueryEscape(sheetName),
	)
}

// Client downloads a spreadsheet tab as CSV
type Client struct {
	http *http.Client
	url  string
}

func NewClient(sourceURL string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{Timeout: timeout},
		url:  sourceURL,
	}
}

// URL returns the export URL the client reads from
func (c *Client) URL() string {
	return c.url
}

// Fetch downloads and parses the sheet
func (c *Client) Fetch(ctx context.Context) (*dataset.Frame, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain, */*")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet request failed: status=%d snippet=%q", resp.StatusCode, snippet(body))
	}

	slog.Debug("sheet fetched", "status", resp.StatusCode, "bytes", len(body))
	return ParseCSV(bytes.NewReader(body))
}

// ParseCSV reads a header row followed by data rows.
// Rows may be shorter or longer than the header.
func ParseCSV(r io.Reader) (*dataset.Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}

	return dataset.New(records[0], records[1:]), nil
}

func snippet(b []byte) string {
	s := string(bytes.TrimSpace(b))
	if len(s) > 512 {
		s = s[:512]
	}
	return s
}
