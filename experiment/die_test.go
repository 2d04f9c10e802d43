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

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/probsim/probsim/random"
)

func TestRollDieTally(t *testing.T) {
	src := random.New(7)
	for _, n := range []int{1, 5, 60, 600} {
		run, err := RollDie(src, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		for i, face := range run {
			if face < 1 || face > Faces {
				t.Fatalf("roll %d is %d", i, face)
			}
		}

		tl := TallyDie(run)
		if expected, got := n, tl.Total(); expected != got {
			t.Errorf("n=%d: total %d\n%s", n, got, spew.Sdump(tl))
		}

		generic := tl.Tally()
		if expected, got := Faces, len(generic.Categories()); expected != got {
			t.Errorf("Expected %d categories, got %d.", expected, got)
		}
		for _, c := range generic.Categories() {
			if c.Count < 0 {
				t.Errorf("face %s has negative count %d", c.Label, c.Count)
			}
		}
		if expected, got := n, generic.Total(); expected != got {
			t.Errorf("Expected generic total %d, got %d.", expected, got)
		}
	}
}

func TestTallyDieKeepsEmptyFaces(t *testing.T) {
	tl := TallyDie([]int{6, 6, 1})

	if diff := cmp.Diff(DieTally{1, 0, 0, 0, 0, 2}, tl); diff != "" {
		t.Errorf("unexpected tally (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4", "5", "6"}, tl.Tally().Labels()); diff != "" {
		t.Errorf("unexpected labels (-want +got):\n%s", diff)
	}
	if expected, got := 2, tl.Count(6); expected != got {
		t.Errorf("Expected %d, got %d.", expected, got)
	}
	if expected, got := 0, tl.Count(7); expected != got {
		t.Errorf("Expected %d for face 7, got %d.", expected, got)
	}
}

func TestRollDieRejectsNonPositive(t *testing.T) {
	if _, err := RollDie(random.New(1), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// Mirrors the large-sample check of the original test suite: every face
// lands within 20% of its expectation over 10000 rolls.
func TestRollDieLargeSample(t *testing.T) {
	const n = 10000
	run, err := RollDie(random.New(42), n)
	if err != nil {
		t.Fatal(err)
	}
	expected := float64(n) / Faces
	for face, count := range TallyDie(run) {
		if c := float64(count); c < .8*expected || c > 1.2*expected {
			t.Errorf("face %d: count %d outside +-20%% of %.1f", face+1, count, expected)
		}
	}
}
