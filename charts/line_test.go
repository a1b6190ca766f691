// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"strings"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestRenderSVG(t *testing.T) {
	tests := []struct {
		name string
		x    []time.Time
		y    []float64
	}{
		{"series", []time.Time{day(1), day(2), day(3)}, []float64{4, 9, 2}},
		{"single point", []time.Time{day(1)}, []float64{5}},
		{"flat", []time.Time{day(1), day(2)}, []float64{3, 3}},
		{"same day", []time.Time{day(1), day(1)}, []float64{3, 5}},
		{"same day flat", []time.Time{day(1), day(1)}, []float64{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{
				Title:  "Maid Numbers Collected over Time",
				XTitle: "Date",
				YTitle: "# Maids",
				X:      tt.x,
				Y:      tt.y,
			}

			svg, err := line.RenderSVG()
			if err != nil {
				t.Fatalf("RenderSVG() error = %v", err)
			}
			out := string(svg)
			if !strings.HasPrefix(out, "<svg") {
				t.Errorf("RenderSVG() output does not start with <svg: %.60s", out)
			}
			if !strings.Contains(out, "Maid Numbers Collected over Time") {
				t.Error("RenderSVG() output is missing the title")
			}
		})
	}
}

func TestRenderSVG_NoData(t *testing.T) {
	svg, err := Line{Title: "Prospects & more"}.RenderSVG()
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}

	out := string(svg)
	if !strings.Contains(out, "No data") {
		t.Error("placeholder should say No data")
	}
	if !strings.Contains(out, "Prospects &amp; more") {
		t.Error("placeholder title should be escaped")
	}
	if !strings.Contains(out, `width="450"`) {
		t.Error("placeholder should use the default width")
	}
}

func TestPadSameDay(t *testing.T) {
	xs, ys := padSameDay([]time.Time{day(2), day(2)}, []float64{3, 5})
	if len(xs) != 3 || !xs[2].Equal(day(3)) {
		t.Errorf("padSameDay() x = %v, want a point on the next day", xs)
	}
	if ys[2] != 5 {
		t.Errorf("padSameDay() padded y = %v, want 5", ys[2])
	}

	in := []time.Time{day(1), day(2)}
	xs, _ = padSameDay(in, []float64{1, 2})
	if len(xs) != 2 {
		t.Errorf("padSameDay() changed a series spanning two days: %v", xs)
	}
}

func TestYRange(t *testing.T) {
	if r := yRange([]float64{1, 2}); r != nil {
		t.Errorf("yRange() for varying series = %v, want nil", r)
	}

	r := yRange([]float64{7, 7})
	if r == nil {
		t.Fatal("yRange() for flat series should not be nil")
	}
	if r.GetMin() != 6 || r.GetMax() != 8 {
		t.Errorf("yRange() = [%v, %v], want [6, 8]", r.GetMin(), r.GetMax())
	}
}
