// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/leads-report/dataset"
	"github.com/danielhkuo/leads-report/stats"
)

// Download file names
const (
	RecordsFile  = "daily_records.csv"
	SummaryFile  = "summary_stats.csv"
	WorkbookFile = "leads_report.xlsx"
)

// Workbook sheet names
const (
	RecordsSheet = "Daily Records"
	SummarySheet = "Summary Statistics"
)

// StatisticHeader labels the row-name column of the summary exports
const StatisticHeader = "statistic"

// WriteCSV writes a frame with its header row
func WriteCSV(w io.Writer, f *dataset.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(f.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

// WriteSummaryCSV writes the summary with the statistic names as first column
func WriteSummaryCSV(w io.Writer, s stats.Summary) error {
	return WriteCSV(w, SummaryFrame(s))
}

// SummaryFrame lays a summary out as a table of strings
func SummaryFrame(s stats.Summary) *dataset.Frame {
	cols := append([]string{StatisticHeader}, s.Columns...)
	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		row := make([]string, 0, len(cols))
		row = append(row, r.Statistic)
		for _, v := range r.Values {
			row = append(row, stats.FormatValue(v))
		}
		rows = append(rows, row)
	}
	return dataset.New(cols, rows)
}

// WriteWorkbook writes records and summary as two sheets of one XLSX file.
// Numeric cells are stored as numbers so spreadsheet formulas work on them.
func WriteWorkbook(w io.Writer, records *dataset.Frame, s stats.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", RecordsSheet); err != nil {
		return fmt.Errorf("failed to name records sheet: %w", err)
	}
	if err := writeSheet(f, RecordsSheet, records.Columns, records.Rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	summary := SummaryFrame(s)
	if err := writeSheet(f, SummarySheet, summary.Columns, summary.Rows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	for c, name := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("failed to write %s header: %w", sheet, err)
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 14); err != nil {
			return err
		}
	}

	for r, row := range rows {
		for c, raw := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, cellValue(raw)); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// cellValue keeps numbers numeric and everything else as text
func cellValue(raw string) interface{} {
	if dataset.IsMissing(raw) {
		return nil
	}
	if v, err := dataset.ParseNumber(raw); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return v
	}
	return raw
}
