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
	"io"
	"strings"
)

// DefaultWidth is the width, in characters, of the longest text bar.
const DefaultWidth = 40

// TextRenderer draws horizontal bars of '#' scaled so that the largest
// count spans Width characters:
//
//	Results of 100 Coin Tosses
//	      | Frequency
//	Heads | ######################################## 52
//	Tails | ####################################     48
//	Probability of Heads: 0.52
type TextRenderer struct {
	// Width of the longest bar. Zero means DefaultWidth.
	Width int
}

func (r TextRenderer) Render(w io.Writer, c Chart) error {
	width := r.Width
	if width <= 0 {
		width = DefaultWidth
	}

	labelWidth := len(c.XLabel)
	for _, b := range c.Bars {
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}
	mx := c.Max()

	var sb strings.Builder
	if c.Title != "" {
		fmt.Fprintln(&sb, c.Title)
	}
	if c.XLabel != "" || c.YLabel != "" {
		fmt.Fprintf(&sb, "%-*s | %s\n", labelWidth, c.XLabel, c.YLabel)
	}
	for _, b := range c.Bars {
		n := 0
		if mx > 0 {
			n = b.Count * width / mx
		}
		fmt.Fprintf(&sb, "%-*s | %-*s %d\n", labelWidth, b.Label, width, strings.Repeat("#", n), b.Count)
	}
	if c.Footer != "" {
		fmt.Fprintln(&sb, c.Footer)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
