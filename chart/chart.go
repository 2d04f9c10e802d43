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

// Package chart renders frequency tallies as bar charts. A Chart is built
// from a tally, never from raw trial data, and any Renderer can draw it.
package chart

import (
	"image/color"
	"io"

	"github.com/probsim/probsim/tally"
)

// Bar is one bar of a Chart.
type Bar struct {
	Label string
	Count int
	// Color is used by renderers that support colour. Nil selects the
	// renderer's default.
	Color color.Color
}

// Chart is a titled bar chart.
type Chart struct {
	// Name identifies the chart, e.g. as a file name stem. It defaults to
	// the tally name.
	Name   string
	Title  string
	XLabel string
	YLabel string
	// Footer is a one-line caption drawn below the bars.
	Footer string
	Bars   []Bar
}

// Max returns the largest bar count, zero for a chart without bars.
func (c Chart) Max() int {
	var mx int
	for _, b := range c.Bars {
		if b.Count > mx {
			mx = b.Count
		}
	}
	return mx
}

// FromTally builds a Chart with one bar per tally category, in category
// order. labels optionally renames the categories for display; categories
// missing from it keep their tally label.
func FromTally(t *tally.Tally, title string, labels map[string]string) Chart {
	c := Chart{
		Name:   t.Name(),
		Title:  title,
		YLabel: "Frequency",
	}
	for _, cat := range t.Categories() {
		label := cat.Label
		if display, ok := labels[cat.Label]; ok {
			label = display
		}
		c.Bars = append(c.Bars, Bar{Label: label, Count: cat.Count})
	}
	return c
}

// A Renderer draws a Chart to w.
type Renderer interface {
	Render(w io.Writer, c Chart) error
}
