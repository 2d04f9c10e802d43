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
	"strconv"

	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/tally"
)

// Faces of a standard die.
const Faces = 6

// DieRollTally is the name of the tally DieRoll produces.
const DieRollTally = "die_rolls"

// RollDie returns n independent rolls of a fair six-sided die, each in
// 1..Faces.
func RollDie(src *random.Source, n int) ([]int, error) {
	if err := checkSize("number of die rolls", n); err != nil {
		return nil, err
	}
	run := make([]int, n)
	for i := range run {
		run[i] = src.IntRange(1, Faces)
	}
	return run, nil
}

// DieTally holds the count of each face; index 0 is face 1. All faces are
// present, with zero if never rolled.
type DieTally [Faces]int

// TallyDie counts faces in a single pass over run. It panics on a value
// outside 1..Faces, which RollDie never produces.
func TallyDie(run []int) DieTally {
	var t DieTally
	for _, face := range run {
		t[face-1]++
	}
	return t
}

// Count returns the count of face, zero for a face outside 1..Faces.
func (t DieTally) Count(face int) int {
	if face < 1 || face > Faces {
		return 0
	}
	return t[face-1]
}

// Total returns the sum of all face counts.
func (t DieTally) Total() int {
	var total int
	for _, c := range t {
		total += c
	}
	return total
}

// Tally converts t into a generic tally with categories "1" to "6".
func (t DieTally) Tally() *tally.Tally {
	outcomes := make([]tally.Outcome, Faces)
	for i := range outcomes {
		outcomes[i] = tally.Outcome{Label: strconv.Itoa(i + 1), P: 1. / Faces}
	}
	out := tally.New(DieRollTally, outcomes...)
	for i, c := range t {
		out.Add(strconv.Itoa(i+1), c)
	}
	return out
}

// DieRoll rolls a fair die Rolls times.
type DieRoll struct {
	Rolls int
}

func (DieRoll) Name() string { return DieName }

func (e DieRoll) Run(src *random.Source) (*Result, error) {
	run, err := RollDie(src, e.Rolls)
	if err != nil {
		return nil, err
	}

	outcomes := make([]byte, len(run))
	for i, face := range run {
		outcomes[i] = byte(face)
	}

	return &Result{
		Experiment:  DieName,
		Size:        len(run),
		Seed:        src.Seed(),
		Fingerprint: fingerprint(DieName, outcomes),
		Tallies:     []*tally.Tally{TallyDie(run).Tally()},
	}, nil
}
