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

// Package tally provides the frequency tally shared by all experiments: an
// ordered set of outcome categories, each with a count of occurrences within
// a run and the probability the experiment's model assigns to it.
package tally

import (
	"fmt"
	"strings"

	"github.com/probsim/probsim/maths"
)

// Outcome declares a category of a Tally.
type Outcome struct {
	Label string
	// P is the model probability of the category for a single trial. Zero
	// means unknown; such categories are left out of goodness-of-fit.
	P float64
}

// Category is a snapshot of one category of a Tally.
type Category struct {
	Label string
	Count int
	P     float64
}

// A Tally counts occurrences of a fixed, ordered set of categories. Every
// declared category is present, with a zero count until observed.
//
// Observing an undeclared label panics, the same way a metric vector panics
// on a label value of the wrong cardinality: it is a programming error, not
// a property of the data.
type Tally struct {
	name     string
	outcomes []Outcome
	index    map[string]int
	counts   []int
}

// New creates an empty Tally with the given name and categories. It panics
// if a label is declared twice.
func New(name string, outcomes ...Outcome) *Tally {
	t := &Tally{
		name:     name,
		outcomes: append([]Outcome(nil), outcomes...),
		index:    make(map[string]int, len(outcomes)),
		counts:   make([]int, len(outcomes)),
	}
	for i, o := range outcomes {
		if _, dup := t.index[o.Label]; dup {
			panic(fmt.Sprintf("tally %q: duplicate category %q", name, o.Label))
		}
		t.index[o.Label] = i
	}
	return t
}

// Name returns the name the Tally was created with.
func (t *Tally) Name() string {
	return t.name
}

// Add counts n occurrences of label. It panics for negative n.
func (t *Tally) Add(label string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("tally %q: negative count %d", t.name, n))
	}
	i, ok := t.index[label]
	if !ok {
		panic(fmt.Sprintf("tally %q: unknown category %q", t.name, label))
	}
	t.counts[i] += n
}

// Count returns the count of label, or zero for an undeclared label.
func (t *Tally) Count(label string) int {
	i, ok := t.index[label]
	if !ok {
		return 0
	}
	return t.counts[i]
}

// Labels returns the category labels in declaration order.
func (t *Tally) Labels() []string {
	labels := make([]string, len(t.outcomes))
	for i, o := range t.outcomes {
		labels[i] = o.Label
	}
	return labels
}

// Categories returns a snapshot of all categories in declaration order.
func (t *Tally) Categories() []Category {
	cs := make([]Category, len(t.outcomes))
	for i, o := range t.outcomes {
		cs[i] = Category{Label: o.Label, Count: t.counts[i], P: o.P}
	}
	return cs
}

// Total returns the sum of all counts, which equals the number of trials
// observed.
func (t *Tally) Total() int {
	var total int
	for _, c := range t.counts {
		total += c
	}
	return total
}

// Proportion returns the observed share of label, NaN for an empty Tally.
func (t *Tally) Proportion(label string) float64 {
	return maths.Proportion(t.Count(label), t.Total())
}

// ChiSquare returns Pearson's statistic of the observed counts against the
// model probabilities.
func (t *Tally) ChiSquare() float64 {
	total := t.Total()
	expected := make([]float64, len(t.outcomes))
	for i, o := range t.outcomes {
		expected[i] = maths.Expected(total, o.P)
	}
	return maths.ChiSquare(t.counts, expected)
}

// String renders the Tally as "name{a=1, b=2}".
func (t *Tally) String() string {
	parts := make([]string, len(t.outcomes))
	for i, o := range t.outcomes {
		parts[i] = fmt.Sprintf("%s=%d", o.Label, t.counts[i])
	}
	return fmt.Sprintf("%s{%s}", t.name, strings.Join(parts, ", "))
}
