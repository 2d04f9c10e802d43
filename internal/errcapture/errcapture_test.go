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

package errcapture

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type testCloser struct {
	err error
}

func (c testCloser) Close() error {
	return c.err
}

func TestClose(t *testing.T) {
	for _, tcase := range []struct {
		name   string
		err    error
		closer io.Closer

		expectedErrStr string
	}{
		{
			name:           "both succeed",
			closer:         testCloser{err: nil},
			expectedErrStr: "",
		},
		{
			name:           "render failed",
			err:            errors.New("render"),
			closer:         testCloser{err: nil},
			expectedErrStr: "render",
		},
		{
			name:           "close failed",
			closer:         testCloser{err: errors.New("disk full")},
			expectedErrStr: "close coin_tosses.png: disk full",
		},
		{
			name:           "both failed",
			err:            errors.New("render"),
			closer:         testCloser{err: errors.New("disk full")},
			expectedErrStr: "2 error(s) occurred:\n* render\n* close coin_tosses.png: disk full",
		},
		{
			name:           "already closed",
			closer:         testCloser{err: os.ErrClosed},
			expectedErrStr: "",
		},
	} {
		t.Run(tcase.name, func(t *testing.T) {
			ret := tcase.err
			Close(&ret, tcase.closer, "coin_tosses.png")

			if tcase.expectedErrStr == "" {
				if ret != nil {
					t.Errorf("Expected error to be nil, got %v", ret)
				}
				return
			}
			if ret == nil {
				t.Fatal("Expected error to be not nil")
			}
			if tcase.expectedErrStr != ret.Error() {
				t.Errorf("%q != %q", tcase.expectedErrStr, ret.Error())
			}
		})
	}
}

func TestCloseKeepsCause(t *testing.T) {
	full := errors.New("disk full")
	var ret error
	Close(&ret, testCloser{err: full}, "die_rolls.svg")
	if !errors.Is(ret, full) {
		t.Errorf("Expected the close error to wrap its cause, got %v", ret)
	}
}

func TestCloseOnFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "chart.svg"))
	if err != nil {
		t.Fatal(err)
	}
	var ret error
	Close(&ret, f, "chart.svg")
	Close(&ret, f, "chart.svg")
	if ret != nil {
		t.Errorf("Expected a double close to be ignored, got %v", ret)
	}
}
