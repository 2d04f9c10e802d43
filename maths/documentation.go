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

// Package maths provides the small set of numerical helpers the experiments
// and their reports need:
//
// distributions.go provides the model side: binomial probabilities and the
// expected frequency of a category over a run.
//
// statistics.go provides the observed side: proportions, reductions over
// samples and a chi-square goodness-of-fit statistic comparing a tally with
// its model.
package maths
