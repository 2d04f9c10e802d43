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
	"testing"
)

const epsilon = 1e-9

func TestLogFactorial(t *testing.T) {
	scenarios := []struct {
		in       int
		expected float64
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}

	for i, s := range scenarios {
		if got, want := LogFactorial(s.in), math.Log(s.expected); math.Abs(got-want) > 1e-9 {
			t.Errorf("%d. Expected %f, got %f.", i, want, got)
		}
	}
}

func TestBinomialPDF(t *testing.T) {
	if expected, got := .375, BinomialPDF(1, 3, .5); math.Abs(expected-got) > epsilon {
		t.Errorf("Expected %f, got %f.", expected, got)
	}
	if expected, got := 1., BinomialPDF(0, 10, 0); expected != got {
		t.Errorf("Expected %f, got %f.", expected, got)
	}
	if expected, got := 0., BinomialPDF(11, 10, .5); expected != got {
		t.Errorf("Expected %f, got %f.", expected, got)
	}

	// The distribution over 0..n sums to one, also where n! overflows.
	for _, n := range []int{6, 100, 1000} {
		var sum float64
		for k := 0; k <= n; k++ {
			sum += BinomialPDF(k, n, 1./6)
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("n=%d: expected sum 1, got %f.", n, sum)
		}
	}
}

func TestExpected(t *testing.T) {
	if expected, got := 10., Expected(60, 1./6); math.Abs(expected-got) > epsilon {
		t.Errorf("Expected %f, got %f.", expected, got)
	}
	if expected, got := 5., BinomialStdDev(100, .5); expected != got {
		t.Errorf("Expected %f, got %f.", expected, got)
	}
}
