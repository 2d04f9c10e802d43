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

// Package experiment implements the four probability experiments: coin
// tosses, die rolls, card draws without replacement and compound coin pairs.
//
// Every experiment follows the same pipeline: draw a run of trial outcomes
// from a random.Source, then reduce the run to one or more tallies in a
// single pass. Runs are plain slices that are never modified after they are
// generated; tallies are plain data that know nothing about how they will be
// rendered.
//
// The lower-level functions (TossCoins, TallyCoins, ...) expose each step on
// its own. The Experiment implementations (CoinToss, DieRoll, CardDraw,
// CompoundCoin) chain them and package the outcome as a Result.
package experiment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/tally"
)

// ErrInvalidArgument is returned, wrapped with context, for a non-positive
// sample size or a draw count exceeding its population. Test for it with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}

func checkSize(what string, n int) error {
	if n <= 0 {
		return invalidArgument("%s must be positive, got %d", what, n)
	}
	return nil
}

// Names of the experiments, in the order Defaults returns them.
const (
	CoinName     = "coin"
	DieName      = "die"
	CardName     = "card"
	CompoundName = "compound"
)

// Default run sizes.
const (
	DefaultFlips = 100
	DefaultRolls = 60
	DefaultDraws = 20
	DefaultPairs = 50
)

// An Experiment generates one run from a random source and tallies it.
type Experiment interface {
	// Name identifies the experiment, e.g. "coin".
	Name() string
	// Run draws a fresh run from src and returns its tallies. It fails
	// with ErrInvalidArgument before consuming any randomness if the
	// experiment is misconfigured.
	Run(src *random.Source) (*Result, error)
}

// Result is the outcome of one Experiment.Run.
type Result struct {
	Experiment string
	// Size is the number of trials in the run: flips, rolls, cards drawn
	// or coin pairs.
	Size int
	// Seed of the source the run was drawn from. When several runs share
	// a source, replaying this one needs the seed and the same runs drawn
	// before it, in the same order.
	Seed uint64
	// Fingerprint is a hash of the run's outcome sequence. Equal seeds and
	// equal preceding runs give equal fingerprints.
	Fingerprint uint64
	// Tallies in display order. Every experiment has one, except
	// CompoundCoin which has two over the same pairs.
	Tallies []*tally.Tally
}

// Tally returns the tally with the given name, or nil.
func (r *Result) Tally(name string) *tally.Tally {
	for _, t := range r.Tallies {
		if t.Name() == name {
			return t
		}
	}
	return nil
}

// Defaults returns the four experiments with their default sizes, in the
// order coin, die, card, compound.
func Defaults() []Experiment {
	return []Experiment{
		CoinToss{Flips: DefaultFlips},
		DieRoll{Rolls: DefaultRolls},
		CardDraw{Draws: DefaultDraws},
		CompoundCoin{Pairs: DefaultPairs},
	}
}

// Names returns the names accepted by Lookup.
func Names() []string {
	return []string{CoinName, DieName, CardName, CompoundName}
}

// Lookup returns the experiment called name with the given size. A size of
// zero selects the experiment's default. Sizes are validated when the
// experiment runs, not here.
func Lookup(name string, size int) (Experiment, error) {
	pick := func(def int) int {
		if size == 0 {
			return def
		}
		return size
	}

	switch name {
	case CoinName:
		return CoinToss{Flips: pick(DefaultFlips)}, nil
	case DieName:
		return DieRoll{Rolls: pick(DefaultRolls)}, nil
	case CardName:
		return CardDraw{Draws: pick(DefaultDraws)}, nil
	case CompoundName:
		return CompoundCoin{Pairs: pick(DefaultPairs)}, nil
	}
	return nil, invalidArgument("unknown experiment %q, want one of %s", name, strings.Join(Names(), ", "))
}
