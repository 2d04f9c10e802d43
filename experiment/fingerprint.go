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
	"github.com/cespare/xxhash/v2"
)

// separatorByte separates the experiment name from the outcomes. It never
// occurs in a name.
const separatorByte byte = 255

// fingerprint hashes an experiment name and its outcome sequence, one byte
// per outcome. All outcomes of this package fit a byte.
func fingerprint(name string, outcomes []byte) uint64 {
	h := xxhash.New()
	h.WriteString(name)
	h.Write([]byte{separatorByte})
	h.Write(outcomes)
	return h.Sum64()
}
