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

package experiment

import (
	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/tally"
)

// Names of the tallies CompoundCoin produces.
const (
	BothHeadsTally       = "both_heads"
	AtLeastOneHeadsTally = "at_least_one_heads"
)

// Predicate tally category labels.
const (
	TrueLabel  = "true"
	FalseLabel = "false"
)

// CoinPair is two independent fair coins tossed together.
type CoinPair [2]Coin

// BothHeads reports whether both coins show heads.
func (p CoinPair) BothHeads() bool {
	return p[0] == Heads && p[1] == Heads
}

// AtLeastOneHeads reports whether either coin shows heads.
func (p CoinPair) AtLeastOneHeads() bool {
	return p[0] == Heads || p[1] == Heads
}

// TossPairs returns n independent coin pairs.
func TossPairs(src *random.Source, n int) ([]CoinPair, error) {
	if err := checkSize("number of coin pairs", n); err != nil {
		return nil, err
	}
	run := make([]CoinPair, n)
	for i := range run {
		run[i] = CoinPair{Coin(src.Bit()), Coin(src.Bit())}
	}
	return run, nil
}

// PredicateTally counts how often a per-pair predicate held.
type PredicateTally struct {
	True  int
	False int
}

// Total is True+False, the number of pairs evaluated.
func (t PredicateTally) Total() int {
	return t.True + t.False
}

func tallyPredicate(run []CoinPair, pred func(CoinPair) bool) PredicateTally {
	var t PredicateTally
	for _, p := range run {
		if pred(p) {
			t.True++
		} else {
			t.False++
		}
	}
	return t
}

// TallyBothHeads counts the pairs showing two heads.
func TallyBothHeads(run []CoinPair) PredicateTally {
	return tallyPredicate(run, CoinPair.BothHeads)
}

// TallyAtLeastOneHeads counts the pairs showing at least one head. Each
// pair is evaluated on its own; nothing carries over between pairs. Its
// False count is the number of pairs with no heads.
func TallyAtLeastOneHeads(run []CoinPair) PredicateTally {
	return tallyPredicate(run, CoinPair.AtLeastOneHeads)
}

// Tally converts t into a generic tally named name with categories true and
// false, where p is the model probability of the predicate holding.
func (t PredicateTally) Tally(name string, p float64) *tally.Tally {
	out := tally.New(name,
		tally.Outcome{Label: TrueLabel, P: p},
		tally.Outcome{Label: FalseLabel, P: 1 - p},
	)
	out.Add(TrueLabel, t.True)
	out.Add(FalseLabel, t.False)
	return out
}

// CompoundCoin tosses Pairs coin pairs and tallies both predicates over the
// same pairs.
type CompoundCoin struct {
	Pairs int
}

func (CompoundCoin) Name() string { return CompoundName }

func (e CompoundCoin) Run(src *random.Source) (*Result, error) {
	run, err := TossPairs(src, e.Pairs)
	if err != nil {
		return nil, err
	}

	outcomes := make([]byte, 0, 2*len(run))
	for _, p := range run {
		outcomes = append(outcomes, byte(p[0]), byte(p[1]))
	}

	return &Result{
		Experiment:  CompoundName,
		Size:        len(run),
		Seed:        src.Seed(),
		Fingerprint: fingerprint(CompoundName, outcomes),
		Tallies: []*tally.Tally{
			TallyBothHeads(run).Tally(BothHeadsTally, .25),
			TallyAtLeastOneHeads(run).Tally(AtLeastOneHeadsTally, .75),
		},
	}, nil
}
