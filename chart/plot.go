// Copyright 2026 The Prometheus Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chart

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Image formats supported by PlotRenderer.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var defaultBarColor = color.NRGBA{R: 128, G: 0, B: 128, A: 255}

// PlotRenderer draws a Chart as a PNG or SVG image with gonum/plot.
type PlotRenderer struct {
	// Format is FormatPNG or FormatSVG.
	Format string
	// Width and Height of the image. Zero selects 8x6 inches.
	Width, Height vg.Length
}

func (r PlotRenderer) Render(w io.Writer, c Chart) error {
	switch r.Format {
	case FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("unsupported image format %q", r.Format)
	}
	width, height := r.Width, r.Height
	if width == 0 {
		width = 8 * vg.Inch
	}
	if height == 0 {
		height = 6 * vg.Inch
	}

	p, err := r.plot(c)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, r.Format)
	if err != nil {
		return fmt.Errorf("render %s: %w", c.Name, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

func (r PlotRenderer) plot(c Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0
	// Leave headroom for the count labels.
	p.Y.Max = float64(c.Max())*1.1 + 1

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	barWidth := vg.Points(40)
	names := make([]string, len(c.Bars))
	points := make(plotter.XYs, len(c.Bars))
	counts := make([]string, len(c.Bars))

	// One bar chart per bar so that each can carry its own colour.
	for i, b := range c.Bars {
		bars, err := plotter.NewBarChart(plotter.Values{float64(b.Count)}, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar %q: %w", b.Label, err)
		}
		bars.XMin = float64(i)
		bars.LineStyle.Width = 0
		bars.Color = b.Color
		if bars.Color == nil {
			bars.Color = defaultBarColor
		}
		p.Add(bars)

		names[i] = b.Label
		points[i] = plotter.XY{X: float64(i), Y: float64(b.Count)}
		counts[i] = strconv.Itoa(b.Count)
	}
	if len(c.Bars) > 0 {
		p.NominalX(names...)
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: counts})
		if err != nil {
			return nil, fmt.Errorf("count labels: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = -0.5
			labels.TextStyle[i].YAlign = 0
		}
		p.Add(labels)

		// Bars are centred on their index; pad half a slot on each side.
		p.X.Min = -0.5
		p.X.Max = float64(len(c.Bars)) - 0.5
	}

	if c.Footer != "" {
		p.X.Label.Text = joinLabel(c.XLabel, c.Footer)
	}
	return p, nil
}

func joinLabel(label, footer string) string {
	if label == "" {
		return footer
	}
	return label + "\n" + footer
}
