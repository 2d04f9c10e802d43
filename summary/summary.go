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

// Package summary repeats an experiment many times from one random source
// and summarizes how each tally category's count varies between runs.
package summary

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"
	"github.com/beorn7/perks/quantile"

	"github.com/probsim/probsim/experiment"
	"github.com/probsim/probsim/maths"
	"github.com/probsim/probsim/random"
)

// Objectives are the quantiles reported for every category, mapped to their
// absolute error.
var Objectives = map[float64]float64{0.05: 0.01, 0.5: 0.05, 0.95: 0.01}

// Stat summarizes one category of one tally over all runs.
type Stat struct {
	Tally string
	Label string
	// Expected is the model expectation of the count for one run.
	Expected float64
	// ModelStdDev is the binomial standard deviation of the count.
	ModelStdDev float64
	Mean        float64
	StdDev      float64
	// Median is the exact sample median, next to the streamed P50.
	Median float64
	// Mode is the most frequent count and ModeProbability its binomial
	// probability in a single run.
	Mode            float64
	ModeProbability float64
	// Quantiles holds the observed count quantile for each key of
	// Objectives.
	Quantiles map[float64]float64
}

// Summary is the outcome of Repeat.
type Summary struct {
	Experiment string
	Runs       int
	// Size is the number of trials per run.
	Size  int
	Seed  uint64
	Stats []Stat
}

type accumulator struct {
	stat    Stat
	p       float64
	samples []float64
	stream  *quantile.Stream
}

// Repeat runs exp times times, drawing every run from src, and summarizes
// the category counts. It fails with experiment.ErrInvalidArgument for a
// non-positive times, and with the first run's error if exp is
// misconfigured.
func Repeat(exp experiment.Experiment, src *random.Source, times int) (*Summary, error) {
	if times <= 0 {
		return nil, fmt.Errorf("%w: number of repetitions must be positive, got %d", experiment.ErrInvalidArgument, times)
	}

	var (
		accs []*accumulator
		size int
	)
	for run := 0; run < times; run++ {
		res, err := exp.Run(src)
		if err != nil {
			return nil, err
		}

		if accs == nil {
			size = res.Size
			for _, t := range res.Tallies {
				for _, c := range t.Categories() {
					accs = append(accs, &accumulator{
						stat: Stat{
							Tally:       t.Name(),
							Label:       c.Label,
							Expected:    maths.Expected(res.Size, c.P),
							ModelStdDev: maths.BinomialStdDev(res.Size, c.P),
						},
						p:       c.P,
						samples: make([]float64, 0, times),
						stream:  quantile.NewTargeted(Objectives),
					})
				}
			}
		}

		i := 0
		for _, t := range res.Tallies {
			for _, c := range t.Categories() {
				v := float64(c.Count)
				accs[i].samples = append(accs[i].samples, v)
				accs[i].stream.Insert(v)
				i++
			}
		}
	}

	s := &Summary{
		Experiment: exp.Name(),
		Runs:       times,
		Size:       size,
		Seed:       src.Seed(),
		Stats:      make([]Stat, 0, len(accs)),
	}
	for _, a := range accs {
		sample := stats.Sample{Xs: a.samples}
		a.stat.Mean = sample.Mean()
		a.stat.StdDev = 0
		if len(a.samples) > 1 {
			a.stat.StdDev = sample.StdDev()
		}
		a.stat.Median = maths.Median(a.samples)
		a.stat.Mode = maths.Mode(a.samples)
		a.stat.ModeProbability = maths.BinomialPDF(int(a.stat.Mode), size, a.p)
		a.stat.Quantiles = make(map[float64]float64, len(Objectives))
		for q := range Objectives {
			a.stat.Quantiles[q] = a.stream.Query(q)
		}
		s.Stats = append(s.Stats, a.stat)
	}
	return s, nil
}

// WriteText writes s as an aligned table.
func (s *Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s: %d runs of %d trials (seed %d)\n", s.Experiment, s.Runs, s.Size, s.Seed)
	fmt.Fprintln(tw, "TALLY\tOUTCOME\tEXPECTED\tMODEL SD\tMEAN\tSTDDEV\tMEDIAN\tMODE\tP(MODE)\tP05\tP50\tP95")
	for _, st := range s.Stats {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%g\t%g\t%.3f\t%g\t%g\t%g\n",
			st.Tally, st.Label, st.Expected, st.ModelStdDev, st.Mean, st.StdDev,
			st.Median, st.Mode, st.ModeProbability,
			st.Quantiles[0.05], st.Quantiles[0.5], st.Quantiles[0.95])
	}
	return tw.Flush()
}
