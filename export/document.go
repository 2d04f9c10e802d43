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

package export

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/probsim/probsim/experiment"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the serialized form of one invocation.
type Document struct {
	Seed        uint64       `json:"seed" yaml:"seed"`
	Experiments []Experiment `json:"experiments" yaml:"experiments"`
}

// Experiment is the serialized form of one experiment.Result.
type Experiment struct {
	Name string `json:"name" yaml:"name"`
	Size int    `json:"size" yaml:"size"`
	// Fingerprint is rendered in hex; it identifies the run.
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint"`
	Tallies     []Tally `json:"tallies" yaml:"tallies"`
}

// Tally is the serialized form of a tally.Tally.
type Tally struct {
	Name       string     `json:"name" yaml:"name"`
	Total      int        `json:"total" yaml:"total"`
	ChiSquare  float64    `json:"chi_square" yaml:"chi_square"`
	Categories []Category `json:"categories" yaml:"categories"`
}

// Category is one serialized tally category.
type Category struct {
	Label       string  `json:"label" yaml:"label"`
	Count       int     `json:"count" yaml:"count"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// NewDocument converts results into a Document. All results are expected to
// share seed.
func NewDocument(seed uint64, results []*experiment.Result) Document {
	doc := Document{Seed: seed, Experiments: make([]Experiment, 0, len(results))}
	for _, res := range results {
		e := Experiment{
			Name:        res.Experiment,
			Size:        res.Size,
			Fingerprint: fmt.Sprintf("%016x", res.Fingerprint),
		}
		for _, t := range res.Tallies {
			st := Tally{Name: t.Name(), Total: t.Total(), ChiSquare: t.ChiSquare()}
			for _, c := range t.Categories() {
				st.Categories = append(st.Categories, Category{Label: c.Label, Count: c.Count, Probability: c.P})
			}
			e.Tallies = append(e.Tallies, st)
		}
		doc.Experiments = append(doc.Experiments, e)
	}
	return doc
}

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes doc as YAML.
func WriteYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
