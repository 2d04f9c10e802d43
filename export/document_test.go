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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/probsim/probsim/experiment"
)

func expectedDocument() Document {
	return Document{
		Seed: 42,
		Experiments: []Experiment{
			{
				Name:        "coin",
				Size:        100,
				Fingerprint: "00000000deadbeef",
				Tallies: []Tally{{
					Name:      "coin_tosses",
					Total:     100,
					ChiSquare: .16,
					Categories: []Category{
						{Label: "heads", Count: 52, Probability: .5},
						{Label: "tails", Count: 48, Probability: .5},
					},
				}},
			},
		},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(42, []*experiment.Result{coinResult(52, 48)})
	if diff := cmp.Diff(expectedDocument(), doc, cmp.Comparer(func(a, b float64) bool {
		d := a - b
		return d < 1e-9 && d > -1e-9
	})); diff != "" {
		t.Errorf("unexpected document (-want +got):\n%s", diff)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	doc := NewDocument(42, []*experiment.Result{coinResult(52, 48), compoundResult()})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, doc); err != nil {
		t.Fatal(err)
	}
	var got Document
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %s: %v", buf.String(), err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("JSON round trip changed the document (-want +got):\n%s", diff)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"chi_square"`)) {
		t.Errorf("expected snake_case keys:\n%s", buf.String())
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	doc := NewDocument(42, []*experiment.Result{compoundResult()})

	var buf bytes.Buffer
	if err := WriteYAML(&buf, doc); err != nil {
		t.Fatal(err)
	}
	var got Document
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %s: %v", buf.String(), err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("YAML round trip changed the document (-want +got):\n%s", diff)
	}
}
