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

// Package export writes experiment results in machine-readable formats:
// the Prometheus text exposition format, JSON and YAML.
package export

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/probsim/probsim/experiment"
)

const namespace = "probsim"

// Registry collects tallies as Prometheus counters:
//
//	probsim_outcomes_total{experiment="coin",tally="coin_tosses",outcome="heads"} 52
//	probsim_trials_total{experiment="coin"} 100
//
// Recording two results of the same experiment adds their counts.
type Registry struct {
	reg      *prometheus.Registry
	outcomes *prometheus.CounterVec
	trials   *prometheus.CounterVec
}

// NewRegistry returns an empty Registry backed by a pedantic Prometheus
// registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewPedanticRegistry(),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Number of trials per tallied outcome category.",
		}, []string{"experiment", "tally", "outcome"}),
		trials: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Number of trials run per experiment.",
		}, []string{"experiment"}),
	}
	r.reg.MustRegister(r.outcomes, r.trials)
	return r
}

// Record adds the tallies of res. Every category is recorded, including
// those with a zero count.
func (r *Registry) Record(res *experiment.Result) {
	r.trials.WithLabelValues(res.Experiment).Add(float64(res.Size))
	for _, t := range res.Tallies {
		for _, c := range t.Categories() {
			r.outcomes.WithLabelValues(res.Experiment, t.Name(), c.Label).Add(float64(c.Count))
		}
	}
}

// WriteText writes all recorded counters in the text exposition format.
func (r *Registry) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics failed: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encoding %s failed: %w", mf.GetName(), err)
		}
	}
	return nil
}
