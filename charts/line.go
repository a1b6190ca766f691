// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package charts

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// Default chart size in pixels
const (
	DefaultWidth  = 450
	DefaultHeight = 450
)

// Line is a single-series time chart
type Line struct {
	Title  string
	XTitle string
	YTitle string
	Width  int
	Height int
	X      []time.Time
	Y      []float64
}

// RenderSVG draws the chart. With no points it returns a placeholder
// instead of failing, so the dashboard layout stays intact.
func (l Line) RenderSVG() ([]byte, error) {
	width, height := l.size()
	if len(l.X) == 0 || len(l.X) != len(l.Y) {
		return placeholder(l.Title, width, height), nil
	}

	xs, ys := padSameDay(l.X, l.Y)

	ch := chart.Chart{
		Title:  l.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           l.XTitle,
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:           l.YTitle,
			Range:          yRange(ys),
			ValueFormatter: chart.IntValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    l.YTitle,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart %q: %w", l.Title, err)
	}
	return buf.Bytes(), nil
}

func (l Line) size() (int, int) {
	width, height := l.Width, l.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// padSameDay stretches points that all share one date over a day,
// since go-chart cannot scale a zero-width x axis
func padSameDay(xs []time.Time, ys []float64) ([]time.Time, []float64) {
	first, last := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Before(first) {
			first = x
		}
		if x.After(last) {
			last = x
		}
	}
	if !first.Equal(last) {
		return xs, ys
	}

	px := append(append([]time.Time(nil), xs...), first.Add(24*time.Hour))
	py := append(append([]float64(nil), ys...), ys[len(ys)-1])
	return px, py
}

// yRange pads a flat series, which go-chart cannot scale on its own
func yRange(ys []float64) chart.Range {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	return nil
}

func placeholder(title string, width, height int) []byte {
	return fmt.Appendf(nil,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<text x="50%%" y="24" text-anchor="middle" font-family="sans-serif" font-size="15">%s</text>`+
			`<text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#888">No data</text>`+
			`</svg>`,
		width, height, width, height, html.EscapeString(title))
}
