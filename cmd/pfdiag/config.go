// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the pfdiag configuration file.
type Config struct {
	// Seed seeds the resampling generator.
	Seed uint64 `yaml:"seed"`

	// Draws is the number of particles drawn when resampling. If
	// zero, one particle is drawn per input particle.
	Draws int `yaml:"draws"`

	// Threshold is the effective sample size ratio below which the
	// population is resampled.
	Threshold float64 `yaml:"threshold"`

	// Particles is an optional inline population, used when no
	// particle file is given.
	Particles []ParticleConfig `yaml:"particles"`
}

// ParticleConfig is one particle of an inline population.
type ParticleConfig struct {
	Location  []float64 `yaml:"location"`
	LogWeight float64   `yaml:"logWeight"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Seed:      distribution.DefaultSeed,
		Threshold: 0.5,
	}
}

// loadConfig reads a YAML configuration file. Keys missing from the
// file keep their default values.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading configuration")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid setting in cfg.
func (cfg Config) Validate() error {
	var merr *multierror.Error
	if cfg.Draws < 0 {
		merr = multierror.Append(merr, errors.Errorf("draws must be non-negative, got %d", cfg.Draws))
	}
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		merr = multierror.Append(merr, errors.Errorf("threshold must be in [0, 1], got %v", cfg.Threshold))
	}
	for i, p := range cfg.Particles {
		if len(p.Location) == 0 {
			merr = multierror.Append(merr, errors.Errorf("particle %d has no location", i))
		}
	}
	return merr.ErrorOrNil()
}

func (cfg Config) particles() []particle {
	ps := make([]particle, len(cfg.Particles))
	for i, p := range cfg.Particles {
		ps[i] = particle{location: p.Location, logWeight: p.LogWeight}
	}
	return ps
}
