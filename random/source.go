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

// Package random provides the owned, seedable random source every experiment
// draws from. There is no package-level generator: callers create a Source
// and pass it along, and a run is replayed by reusing its seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source is a seeded PCG generator. Two Sources created with the same seed
// produce the same sequence of draws. A Source is not safe for concurrent
// use.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// NewUnseeded returns a Source seeded from crypto/rand. The chosen seed is
// available through Seed so the run can be replayed.
func NewUnseeded() (*Source, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Bit returns 0 or 1 with equal probability.
func (s *Source) Bit() int {
	return s.rng.Intn(2)
}

// IntRange returns a uniform integer in the closed range [lo, hi]. It panics
// if hi < lo.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Permute returns a uniformly shuffled copy of in. The input is not
// modified.
func Permute[T any](s *Source, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
