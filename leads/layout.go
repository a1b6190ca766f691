// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leads

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ChartSpec describes one time-series chart of the leads section
type ChartSpec struct {
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Column string `yaml:"column"`
}

// Layout names the columns the pipeline works with
type Layout struct {
	DropColumns    []string          `yaml:"drop_columns"`
	DateSource     string            `yaml:"date_source"`
	DateColumn     string            `yaml:"date_column"`
	Renames        map[string]string `yaml:"renames"`
	DisplayColumns []string          `yaml:"display_columns"`
	Charts         []ChartSpec       `yaml:"charts"`
}

// DefaultLayout matches the lead-collection sheet
func DefaultLayout() Layout {
	return Layout{
		DropColumns: []string{"Timestamp"},
		DateSource:  "Date Collected",
		DateColumn:  "Date",
		Renames: map[string]string{
			"Total Number of Prospects": "# Prospects",
			"Total Number of Maids":     "# Maids",
			"# of Filipina":             "# Filipina",
			"# of N/A":                  "# N/A",
			"# of Africans":             "# Africans",
			"# of Other Nationalities":  "# Others",
		},
		DisplayColumns: []string{
			"Date", "# Prospects", "# Maids", "# Filipina",
			"# N/A", "# Africans", "# Others",
		},
		Charts: []ChartSpec{
			{Name: "prospects", Title: "Prospect Numbers Collected over Time", Column: "# Prospects"},
			{Name: "maids", Title: "Maid Numbers Collected over Time", Column: "# Maids"},
		},
	}
}

// Chart looks up a chart by name
func (l Layout) Chart(name string) (ChartSpec, bool) {
	for _, c := range l.Charts {
		if c.Name == name {
			return c, true
		}
	}
	return ChartSpec{}, false
}

// Validate checks that the layout is usable
func (l Layout) Validate() error {
	if l.DateSource == "" {
		return errors.New("layout: date_source is required")
	}
	if l.DateColumn == "" {
		return errors.New("layout: date_column is required")
	}
	if len(l.DisplayColumns) == 0 {
		return errors.New("layout: display_columns must not be empty")
	}
	seen := make(map[string]bool, len(l.Charts))
	for _, c := range l.Charts {
		if c.Name == "" || c.Column == "" {
			return fmt.Errorf("layout: chart %q needs a name and a column", c.Title)
		}
		if seen[c.Name] {
			return fmt.Errorf("layout: duplicate chart name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// LoadLayout reads a YAML layout. Fields left out keep their defaults;
// a renames map given in the file replaces the default renames entirely.
// An empty path returns DefaultLayout.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout: %w", err)
	}
	var keys map[string]yaml.Node
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if _, ok := keys["renames"]; ok {
		layout.Renames = nil
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}
