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
)

// LogFactorial returns ln(of!).
func LogFactorial(of int) float64 {
	if of <= 1 {
		return 0
	}
	v, _ := math.Lgamma(float64(of) + 1)
	return v
}

// BinomialPDF is the probability of exactly k successes among n independent
// trials that each succeed with probability p. It works in log space so that
// run sizes in the thousands do not overflow.
func BinomialPDF(k, n int, p float64) float64 {
	if k < 0 || k > n || p < 0 || p > 1 {
		return 0
	}
	switch p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == n {
			return 1
		}
		return 0
	}

	logCoefficient := LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
	logIntermediate := float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p)

	return math.Exp(logCoefficient + logIntermediate)
}

// BinomialStdDev is the standard deviation of a binomial count.
func BinomialStdDev(n int, p float64) float64 {
	return math.Sqrt(float64(n) * p * (1 - p))
}

// Expected is the expected count of a category with probability p over n
// trials.
func Expected(n int, p float64) float64 {
	return float64(n) * p
}
