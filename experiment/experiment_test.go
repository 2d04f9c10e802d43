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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/tally"
)

func TestDefaults(t *testing.T) {
	var names []string
	for _, e := range Defaults() {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff(Names(), names); diff != "" {
		t.Errorf("unexpected default order (-want +got):\n%s", diff)
	}
}

func TestRunResults(t *testing.T) {
	scenarios := []struct {
		exp     Experiment
		size    int
		tallies []string
	}{
		{CoinToss{Flips: 100}, 100, []string{CoinTossTally}},
		{DieRoll{Rolls: 60}, 60, []string{DieRollTally}},
		{CardDraw{Draws: 20}, 20, []string{CardDrawTally}},
		{CompoundCoin{Pairs: 50}, 50, []string{BothHeadsTally, AtLeastOneHeadsTally}},
	}

	for _, s := range scenarios {
		t.Run(s.exp.Name(), func(t *testing.T) {
			res, err := s.exp.Run(random.New(12))
			if err != nil {
				t.Fatal(err)
			}
			if expected, got := s.exp.Name(), res.Experiment; expected != got {
				t.Errorf("Expected experiment %q, got %q.", expected, got)
			}
			if expected, got := s.size, res.Size; expected != got {
				t.Errorf("Expected size %d, got %d.", expected, got)
			}
			if expected, got := uint64(12), res.Seed; expected != got {
				t.Errorf("Expected seed %d, got %d.", expected, got)
			}

			var names []string
			for _, tl := range res.Tallies {
				names = append(names, tl.Name())
				if expected, got := s.size, tl.Total(); expected != got {
					t.Errorf("%s: expected total %d, got %d.", tl.Name(), expected, got)
				}
			}
			if diff := cmp.Diff(s.tallies, names); diff != "" {
				t.Errorf("unexpected tallies (-want +got):\n%s", diff)
			}
			if res.Tally(s.tallies[0]) == nil || res.Tally("nope") != nil {
				t.Error("Result.Tally lookup is broken")
			}
		})
	}
}

func TestRunDeterministic(t *testing.T) {
	tallyCmp := cmp.Comparer(func(a, b *tally.Tally) bool {
		return a.String() == b.String()
	})

	for _, e := range Defaults() {
		a, err := e.Run(random.New(77))
		if err != nil {
			t.Fatal(err)
		}
		b, err := e.Run(random.New(77))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(a, b, tallyCmp); diff != "" {
			t.Errorf("%s: results for equal seeds differ (-a +b):\n%s", e.Name(), diff)
		}

		c, err := e.Run(random.New(78))
		if err != nil {
			t.Fatal(err)
		}
		if a.Fingerprint == c.Fingerprint {
			t.Errorf("%s: different seeds gave the same fingerprint %x", e.Name(), a.Fingerprint)
		}
	}
}

func TestSharedSourceReplay(t *testing.T) {
	runAll := func(src *random.Source) []*Result {
		var results []*Result
		for _, e := range Defaults() {
			res, err := e.Run(src)
			if err != nil {
				t.Fatal(err)
			}
			results = append(results, res)
		}
		return results
	}

	first, again := runAll(random.New(5)), runAll(random.New(5))
	for i := range first {
		if expected, got := uint64(5), first[i].Seed; expected != got {
			t.Errorf("%s: Expected seed %d, got %d.", first[i].Experiment, expected, got)
		}
		if first[i].Fingerprint != again[i].Fingerprint {
			t.Errorf("%s: replaying the sequence changed the fingerprint", first[i].Experiment)
		}
	}

	// The die ran after the coin on the shared source, so its seed alone
	// does not replay it.
	alone, err := DieRoll{Rolls: DefaultRolls}.Run(random.New(first[1].Seed))
	if err != nil {
		t.Fatal(err)
	}
	if alone.Fingerprint == first[1].Fingerprint {
		t.Errorf("Expected a fresh source to give a different die run, both have fingerprint %x", alone.Fingerprint)
	}
}

func TestRunZeroSizeFails(t *testing.T) {
	for _, e := range []Experiment{CoinToss{}, DieRoll{}, CardDraw{}, CompoundCoin{}} {
		res, err := e.Run(random.New(1))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", e.Name(), err)
		}
		if res != nil {
			t.Errorf("%s: expected no result on failure", e.Name())
		}
	}
	if _, err := (CardDraw{Draws: DeckSize + 1}).Run(random.New(1)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for %d cards, got %v", DeckSize+1, err)
	}
}

func TestLookup(t *testing.T) {
	scenarios := []struct {
		name string
		size int
		want Experiment
	}{
		{CoinName, 0, CoinToss{Flips: DefaultFlips}},
		{DieName, 6, DieRoll{Rolls: 6}},
		{CardName, 0, CardDraw{Draws: DefaultDraws}},
		{CompoundName, 3, CompoundCoin{Pairs: 3}},
		{CardName, -2, CardDraw{Draws: -2}},
	}
	for _, s := range scenarios {
		got, err := Lookup(s.name, s.size)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if diff := cmp.Diff(s.want, got); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", s.name, diff)
		}
	}

	if _, err := Lookup("roulette", 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
