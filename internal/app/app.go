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

// Package app wires configuration, experiments and renderers into the
// probsim command.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/probsim/probsim/chart"
	"github.com/probsim/probsim/experiment"
	"github.com/probsim/probsim/export"
	"github.com/probsim/probsim/internal/config"
	"github.com/probsim/probsim/internal/errcapture"
	"github.com/probsim/probsim/random"
	"github.com/probsim/probsim/report"
	"github.com/probsim/probsim/summary"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Run executes probsim with args, reading configuration from the process
// environment, and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	return run(args, nil, stdout, stderr)
}

func run(args []string, environ map[string]string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "probsim: ", 0)

	cfg, err := config.Load(args, environ, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case err != nil:
		logger.Println(err)
		return ExitUsage
	}

	if err := execute(cfg, logger, stdout); err != nil {
		logger.Println(err)
		return ExitFailure
	}
	return ExitOK
}

func execute(cfg *config.Config, logger *log.Logger, stdout io.Writer) error {
	exps, err := cfg.Experiments()
	if err != nil {
		return err
	}

	var src *random.Source
	if cfg.Seed != nil {
		src = random.New(*cfg.Seed)
	} else if src, err = random.NewUnseeded(); err != nil {
		return err
	}
	logger.Printf("seed %d", src.Seed())

	if cfg.Repeat > 0 {
		for i, e := range exps {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			s, err := summary.Repeat(e, src, cfg.Repeat)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Name(), err)
			}
			if err := s.WriteText(stdout); err != nil {
				return err
			}
		}
		return nil
	}

	// Every experiment runs before anything is written, so a failing one
	// leaves no partial output behind.
	results := make([]*experiment.Result, 0, len(exps))
	for _, e := range exps {
		logger.Println(report.Heading(e.Name()))
		res, err := e.Run(src)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}
		results = append(results, res)
	}

	switch cfg.Format {
	case config.FormatText:
		return writeText(stdout, cfg.Width, results)
	case config.FormatJSON:
		return export.WriteJSON(stdout, export.NewDocument(src.Seed(), results))
	case config.FormatYAML:
		return export.WriteYAML(stdout, export.NewDocument(src.Seed(), results))
	case config.FormatProm:
		reg := export.NewRegistry()
		for _, res := range results {
			reg.Record(res)
		}
		return reg.WriteText(stdout)
	case config.FormatPNG, config.FormatSVG:
		return writeImages(logger, cfg.Out, cfg.Format, results)
	}
	return fmt.Errorf("unsupported format %q", cfg.Format)
}

func writeText(w io.Writer, width int, results []*experiment.Result) error {
	r := chart.TextRenderer{Width: width}
	first := true
	for _, res := range results {
		for _, c := range report.Charts(res) {
			if !first {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			first = false
			if err := r.Render(w, c); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeImages(logger *log.Logger, dir, format string, results []*experiment.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	r := chart.PlotRenderer{Format: format}
	for _, res := range results {
		for _, c := range report.Charts(res) {
			path := filepath.Join(dir, c.Name+"."+format)
			if err := writeImage(path, r, c); err != nil {
				return err
			}
			logger.Printf("wrote %s", path)
		}
	}
	return nil
}

func writeImage(path string, r chart.Renderer, c chart.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer errcapture.Close(&err, f, filepath.Base(path))

	return r.Render(f, c)
}
