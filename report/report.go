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

// Package report turns experiment results into titled, captioned charts.
// It is the only place that knows how each experiment is presented.
package report

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/probsim/probsim/chart"
	"github.com/probsim/probsim/experiment"
	"github.com/probsim/probsim/maths"
)

// Charts returns the charts for res in display order: one per tally.
func Charts(res *experiment.Result) []chart.Chart {
	switch res.Experiment {
	case experiment.CoinName:
		return coinCharts(res)
	case experiment.DieName:
		return dieCharts(res)
	case experiment.CardName:
		return cardCharts(res)
	case experiment.CompoundName:
		return compoundCharts(res)
	}

	charts := make([]chart.Chart, 0, len(res.Tallies))
	for _, t := range res.Tallies {
		charts = append(charts, chart.FromTally(t, t.Name(), nil))
	}
	return charts
}

func paint(c chart.Chart, colors ...color.Color) chart.Chart {
	for i := range c.Bars {
		if len(colors) == 0 {
			break
		}
		c.Bars[i].Color = colors[i%len(colors)]
	}
	return c
}

func coinCharts(res *experiment.Result) []chart.Chart {
	t := res.Tally(experiment.CoinTossTally)
	c := chart.FromTally(t, fmt.Sprintf("Results of %d Coin Tosses", t.Total()), map[string]string{
		experiment.Heads.String(): "Heads",
		experiment.Tails.String(): "Tails",
	})
	c.Footer = fmt.Sprintf("Probability of Heads: %.2f", t.Proportion(experiment.Heads.String()))
	return []chart.Chart{paint(c, colornames.Green, colornames.Blue)}
}

func dieCharts(res *experiment.Result) []chart.Chart {
	t := res.Tally(experiment.DieRollTally)
	c := chart.FromTally(t, "Results of Die Rolls", nil)
	c.XLabel = "Die Face"
	c.Footer = fmt.Sprintf("Expected frequency for each face: %.1f", maths.Expected(t.Total(), 1./experiment.Faces))
	return []chart.Chart{paint(c, colornames.Purple)}
}

func cardCharts(res *experiment.Result) []chart.Chart {
	t := res.Tally(experiment.CardDrawTally)
	c := chart.FromTally(t, fmt.Sprintf("Results of %d Card Draws", t.Total()), map[string]string{
		experiment.Red.String():   "Red Cards",
		experiment.Black.String(): "Black Cards",
	})
	c.Footer = fmt.Sprintf("Probability of Red Card: %.2f", t.Proportion(experiment.Red.String()))
	return []chart.Chart{paint(c, colornames.Red, colornames.Black)}
}

func compoundCharts(res *experiment.Result) []chart.Chart {
	both := res.Tally(experiment.BothHeadsTally)
	some := res.Tally(experiment.AtLeastOneHeadsTally)

	bothChart := chart.FromTally(both, "Both Heads vs. Not Both Heads", map[string]string{
		experiment.TrueLabel:  "Both Heads",
		experiment.FalseLabel: "Not Both Heads",
	})
	someChart := chart.FromTally(some, "At Least One Head vs. No Heads", map[string]string{
		experiment.TrueLabel:  "At Least One Head",
		experiment.FalseLabel: "No Heads",
	})
	// One caption for the pair, under the second panel.
	someChart.Footer = fmt.Sprintf("P(Both Heads): %.2f | P(At Least One Head): %.2f",
		both.Proportion(experiment.TrueLabel), some.Proportion(experiment.TrueLabel))

	return []chart.Chart{
		paint(bothChart, colornames.Gold, colornames.Silver),
		paint(someChart, colornames.Gold, colornames.Silver),
	}
}

// Heading is the progress line printed before an experiment runs.
func Heading(name string) string {
	switch name {
	case experiment.CoinName:
		return "Running coin toss simulation..."
	case experiment.DieName:
		return "Running die roll simulation..."
	case experiment.CardName:
		return "Running card draw simulation..."
	case experiment.CompoundName:
		return "Running compound event simulation..."
	}
	return fmt.Sprintf("Running %s simulation...", name)
}
