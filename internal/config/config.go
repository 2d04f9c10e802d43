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

// Package config loads the probsim command configuration from the
// environment and the command line. Flags override environment variables,
// which override the built-in defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/probsim/probsim/chart"
	"github.com/probsim/probsim/experiment"
)

// All selects every experiment.
const All = "all"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatProm = "prom"
	FormatPNG  = chart.FormatPNG
	FormatSVG  = chart.FormatSVG
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatProm, FormatPNG, FormatSVG}

// ErrUsage marks errors in the invocation itself: unknown flags, formats or
// experiment names.
var ErrUsage = errors.New("usage")

// Config is the probsim command configuration.
type Config struct {
	Experiment string `env:"PROBSIM_EXPERIMENT" envDefault:"all"`
	// Size is the run size of every selected experiment; zero keeps each
	// experiment's default.
	Size int `env:"PROBSIM_SIZE"`
	// Seed of the random source. Nil draws a fresh seed.
	Seed   *uint64 `env:"PROBSIM_SEED"`
	Format string  `env:"PROBSIM_FORMAT" envDefault:"text"`
	// Out is the directory image formats are written to.
	Out   string `env:"PROBSIM_OUT" envDefault:"."`
	Width int    `env:"PROBSIM_WIDTH" envDefault:"40"`
	// Repeat switches to summary mode when positive.
	Repeat int `env:"PROBSIM_REPEAT"`
}

// Load parses the environment, then args. environ replaces the process
// environment when not nil. Usage problems are reported wrapped in ErrUsage,
// except -h which yields flag.ErrHelp. Usage text goes to output.
func Load(args []string, environ map[string]string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", ErrUsage, err)
	}

	fs := flag.NewFlagSet("probsim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Experiment, "experiment", cfg.Experiment,
		fmt.Sprintf("Experiment to run: %s or %s.", All, strings.Join(experiment.Names(), ", ")))
	fs.IntVar(&cfg.Size, "n", cfg.Size, "Run size: tosses, rolls, cards drawn or coin pairs. 0 keeps the default of each experiment.")
	fs.Func("seed", "Seed of the random source. Unset draws a fresh seed.", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		cfg.Seed = &v
		return nil
	})
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: "+strings.Join(Formats, ", ")+".")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "Directory for png and svg charts.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Width of the longest text bar.")
	fs.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "Repeat each experiment this many times and print a summary instead of charts.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, fs.Args())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if !contains(Formats, c.Format) {
		return fmt.Errorf("%w: unknown format %q, want one of %s", ErrUsage, c.Format, strings.Join(Formats, ", "))
	}
	if c.Experiment != All && !contains(experiment.Names(), c.Experiment) {
		return fmt.Errorf("%w: unknown experiment %q", ErrUsage, c.Experiment)
	}
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrUsage, c.Width)
	}
	if c.Repeat < 0 {
		return fmt.Errorf("%w: repeat must not be negative, got %d", ErrUsage, c.Repeat)
	}
	return nil
}

// Experiments returns the selected experiments with the configured size.
func (c *Config) Experiments() ([]experiment.Experiment, error) {
	names := []string{c.Experiment}
	if c.Experiment == All {
		names = experiment.Names()
	}
	exps := make([]experiment.Experiment, 0, len(names))
	for _, name := range names {
		e, err := experiment.Lookup(name, c.Size)
		if err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
