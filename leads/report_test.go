// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leads

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/leads-report/dataset"
)

var sheetColumns = []string{
	"Timestamp", "Date Collected", "Total Number of Prospects", "Total Number of Maids",
	"# of Filipina", "# of N/A", "# of Africans", "# of Other Nationalities", "Notes",
}

func rawSheet() *dataset.Frame {
	return dataset.New(sheetColumns, [][]string{
		{"1/2/2021 9:00:00", "1/2/2021", "10", "4", "1", "0", "2", "1", "a"},
		{"1/5/2021 9:00:00", "1/5/2021", "12", "6", "2", "1", "2", "1", "b"},
		{"1/3/2021 9:00:00", "", "3", "1", "0", "0", "1", "0", "undated"},
		{"1/4/2021 9:00:00", "2021-01-04", "7", "3", "1", "1", "1", "0", "c"},
		{"1/4/2021 18:00:00", "1/4/2021", "9", "5", "2", "1", "1", "1", "d"},
	})
}

func TestPrepare(t *testing.T) {
	report, err := Prepare(rawSheet(), DefaultLayout())
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	records, features := report.Shape()
	if records != 5 {
		t.Errorf("records = %d, want 5", records)
	}
	// 9 sheet columns - Timestamp + Date
	if features != 9 {
		t.Errorf("features = %d, want 9", features)
	}

	wantColumns := []string{
		"Date Collected", "# Prospects", "# Maids", "# Filipina", "# N/A",
		"# Africans", "# Others", "Notes", "Date",
	}
	if diff := cmp.Diff(wantColumns, report.Frame().Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	// Newest first, ties in sheet order, undated last
	notes, _ := report.Frame().Column("Notes")
	if diff := cmp.Diff([]string{"b", "c", "d", "a", "undated"}, notes); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	dates, _ := report.Frame().Column("Date")
	if dates[0] != "2021-01-05" || dates[4] != "" {
		t.Errorf("dates = %v", dates)
	}

	// The raw frame is not modified
	if raw := rawSheet(); raw.Columns[0] != "Timestamp" {
		t.Error("raw sheet changed")
	}
}

func TestPrepare_MissingColumns(t *testing.T) {
	tests := []struct {
		name string
		drop string
	}{
		{"no timestamp", "Timestamp"},
		{"no date collected", "Date Collected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawSheet()
			if err := raw.Drop(tt.drop); err != nil {
				t.Fatal(err)
			}
			_, err := Prepare(raw, DefaultLayout())
			if !errors.Is(err, dataset.ErrMissingColumn) {
				t.Errorf("Prepare() error = %v, want ErrMissingColumn", err)
			}
		})
	}
}

func TestPrepare_BadDate(t *testing.T) {
	raw := rawSheet()
	raw.Rows[3][1] = "sometime last week"

	_, err := Prepare(raw, DefaultLayout())
	if !errors.Is(err, ErrBadDate) {
		t.Fatalf("Prepare() error = %v, want ErrBadDate", err)
	}
	if got := err.Error(); got[:5] != "row 5" {
		t.Errorf("error should name the sheet row, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2021, 3, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in     string
		wantOK bool
	}{
		{"3/7/2021", true},
		{"03/07/2021", true},
		{"3/7/2021 14:22:01", true},
		{"2021-03-07", true},
		{"2021-03-07 23:59:59", true},
		{"2021-03-07T10:00:00Z", true},
		{"Mar 7, 2021", true},
		{"7 Mar 2021", true},
		{"", false},
		{"  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok, err := ParseDate(tt.in)
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.in, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && !got.Equal(want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, want)
			}
		})
	}

	if _, _, err := ParseDate("13/45/2021"); !errors.Is(err, ErrBadDate) {
		t.Errorf("ParseDate(invalid) error = %v, want ErrBadDate", err)
	}
}

func TestRecords(t *testing.T) {
	report, err := Prepare(rawSheet(), DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"default", 0, 5},
		{"subset", 2, 2},
		{"too many", 99, 5},
		{"negative", -3, 5},
		{"one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.Records(tt.n)
			rows, cols := got.Shape()
			if rows != tt.want {
				t.Errorf("Records(%d) rows = %d, want %d", tt.n, rows, tt.want)
			}
			if cols != 7 {
				t.Errorf("Records(%d) cols = %d, want 7", tt.n, cols)
			}
		})
	}

	top := report.Records(1)
	want := []string{"2021-01-05", "12", "6", "2", "1", "2", "1"}
	if diff := cmp.Diff(want, top.Rows[0]); diff != "" {
		t.Errorf("first record mismatch (-want +got):\n%s", diff)
	}
}

func TestSeries(t *testing.T) {
	report, err := Prepare(rawSheet(), DefaultLayout())
	if err != nil {
		t.Fatal(err)
	}

	xs, ys, err := Series(report.Records(0), "Date", "# Maids")
	if err != nil {
		t.Fatalf("Series() error = %v", err)
	}

	// Undated row is skipped; oldest first
	if len(xs) != 4 {
		t.Fatalf("Series() len = %d, want 4", len(xs))
	}
	if diff := cmp.Diff([]float64{4, 5, 3, 6}, ys); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if !xs[0].Before(xs[3]) {
		t.Errorf("series not chronological: %v", xs)
	}

	if _, _, err := Series(report.Records(0), "Date", "Ghost"); err == nil {
		t.Error("Series() on a missing column should fail")
	}
}

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout("")
	if err != nil {
		t.Fatalf("LoadLayout(\"\") error = %v", err)
	}
	if diff := cmp.Diff(DefaultLayout(), layout); diff != "" {
		t.Errorf("default layout mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "layout.yaml")
	yml := `
display_columns: [Date, "# Maids"]
charts:
  - name: maids
    title: Maids
    column: "# Maids"
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	layout, err = LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Date", "# Maids"}, layout.DisplayColumns); diff != "" {
		t.Errorf("display columns mismatch (-want +got):\n%s", diff)
	}
	if len(layout.Charts) != 1 {
		t.Errorf("charts = %d, want 1", len(layout.Charts))
	}
	// Unset fields keep their defaults
	if layout.DateSource != "Date Collected" {
		t.Errorf("DateSource = %q, want default", layout.DateSource)
	}
	if _, ok := layout.Chart("prospects"); ok {
		t.Error("prospects chart should have been replaced")
	}
}

func TestLoadLayout_RenamesReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	yml := `
renames:
  Total Number of Prospects: "# Prospects"
display_columns: [Date, "# Prospects"]
charts:
  - name: prospects
    title: Prospects
    column: "# Prospects"
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	want := map[string]string{"Total Number of Prospects": "# Prospects"}
	if diff := cmp.Diff(want, layout.Renames); diff != "" {
		t.Errorf("renames mismatch (-want +got):\n%s", diff)
	}

	// Without a renames key the defaults stay
	if err := os.WriteFile(path, []byte("date_column: Day\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	layout, err = LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if diff := cmp.Diff(DefaultLayout().Renames, layout.Renames); diff != "" {
		t.Errorf("default renames mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayout_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yml  string
	}{
		{"bad yaml", "charts: [\n"},
		{"empty display", "display_columns: []\n"},
		{"chart without column", "charts:\n  - name: x\n"},
		{"duplicate chart", "charts:\n  - {name: a, column: b}\n  - {name: a, column: c}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "layout.yaml")
			if err := os.WriteFile(path, []byte(tt.yml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadLayout(path); err == nil {
				t.Error("LoadLayout() expected error")
			}
		})
	}

	if _, err := LoadLayout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLayout(missing) expected error")
	}
}
