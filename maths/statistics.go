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

package maths

import (
	"math"
	"sort"
)

// ReductionMethod reduces a sample to a single value.
type ReductionMethod func([]float64) float64

// Mode returns the most frequent value of input, the smaller one on ties, or
// NaN for an empty input.
var Mode ReductionMethod = func(input []float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	freq := make(map[float64]int, len(input))
	for _, v := range input {
		freq[v]++
	}
	best, bestN := math.Inf(1), 0
	for v, n := range freq {
		if n > bestN || (n == bestN && v < best) {
			best, bestN = v, n
		}
	}
	return best
}

// NearestRank returns the smallest value of input such that at least
// percentile percent of the sample is at or below it. The input is not
// modified.
func NearestRank(input []float64, percentile float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), input...)
	sort.Float64s(sorted)

	i := int(math.Ceil(percentile/100*float64(len(sorted)))) - 1
	switch {
	case i < 0:
		i = 0
	case i >= len(sorted):
		i = len(sorted) - 1
	}
	return sorted[i]
}

// Median is the 50th percentile by nearest rank.
var Median ReductionMethod = func(input []float64) float64 {
	return NearestRank(input, 50)
}

// Proportion returns count/total, or NaN for an empty total.
func Proportion(count, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return float64(count) / float64(total)
}

// ChiSquare is Pearson's goodness-of-fit statistic for observed counts
// against expected counts. Categories with a non-positive expectation are
// skipped. The slices must have the same length.
func ChiSquare(observed []int, expected []float64) float64 {
	if len(observed) != len(expected) {
		panic("maths: observed and expected lengths differ")
	}

	var sum float64
	for i, o := range observed {
		e := expected[i]
		if e <= 0 {
			continue
		}
		d := float64(o) - e
		sum += d * d / e
	}
	return sum
}
