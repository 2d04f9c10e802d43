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

// Coin is the outcome of one fair coin toss.
type Coin int

const (
	Tails Coin = iota
	Heads
)

func (c Coin) String() string {
	if c == Heads {
		return "heads"
	}
	return "tails"
}

// CoinTossTally is the name of the tally CoinToss produces.
const CoinTossTally = "coin_tosses"

// TossCoins returns n independent fair coin tosses.
func TossCoins(src *random.Source, n int) ([]Coin, error) {
	if err := checkSize("number of coin tosses", n); err != nil {
		return nil, err
	}
	run := make([]Coin, n)
	for i := range run {
		run[i] = Coin(src.Bit())
	}
	return run, nil
}

// CoinTally counts the faces of a coin toss run.
type CoinTally struct {
	Heads int
	Tails int
}

// TallyCoins counts heads and tails in a single pass over run.
func TallyCoins(run []Coin) CoinTally {
	var t CoinTally
	for _, c := range run {
		if c == Heads {
			t.Heads++
		} else {
			t.Tails++
		}
	}
	return t
}

// Total is Heads+Tails, the length of the tallied run.
func (t CoinTally) Total() int {
	return t.Heads + t.Tails
}

// Tally converts t into a generic tally with categories heads and tails.
func (t CoinTally) Tally() *tally.Tally {
	out := tally.New(CoinTossTally,
		tally.Outcome{Label: Heads.String(), P: .5},
		tally.Outcome{Label: Tails.String(), P: .5},
	)
	out.Add(Heads.String(), t.Heads)
	out.Add(Tails.String(), t.Tails)
	return out
}

// CoinToss tosses a fair coin Flips times.
type CoinToss struct {
	Flips int
}

func (CoinToss) Name() string { return CoinName }

func (e CoinToss) Run(src *random.Source) (*Result, error) {
	run, err := TossCoins(src, e.Flips)
	if err != nil {
		return nil, err
	}

	outcomes := make([]byte, len(run))
	for i, c := range run {
		outcomes[i] = byte(c)
	}

	return &Result{
		Experiment:  CoinName,
		Size:        len(run),
		Seed:        src.Seed(),
		Fingerprint: fingerprint(CoinName, outcomes),
		Tallies:     []*tally.Tally{TallyCoins(run).Tally()},
	}, nil
}
