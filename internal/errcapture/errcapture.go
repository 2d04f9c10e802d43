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

// Package errcapture merges the error of closing an output file, such as a
// rendered chart, into the error the writing function returns.
package errcapture

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

// Close closes c, the output called name, and records a failure in *err.
// A close failure alone becomes "close <name>: <cause>"; when *err already
// holds an error both are kept in a prometheus.MultiError. Closing an
// already closed os.File is not a failure.
//
//	f, err := os.Create(path)
//	...
//	defer errcapture.Close(&err, f, filepath.Base(path))
func Close(err *error, c io.Closer, name string) {
	cerr := c.Close()
	if cerr == nil || errors.Is(cerr, os.ErrClosed) {
		return
	}
	cerr = fmt.Errorf("close %s: %w", name, cerr)
	if *err == nil {
		*err = cerr
		return
	}
	*err = prometheus.MultiError{*err, cerr}
}
