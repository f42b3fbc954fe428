// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands.
type options struct {
	configPath string
	inputPath  string
	verbose    bool

	// Flag values. They override the configuration file only when
	// set on the command line.
	seed      uint64
	draws     int
	threshold float64
	force     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	def := DefaultConfig()

	cmd := &cobra.Command{
		Use:           "pfdiag",
		Short:         "Describe a weighted particle population",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}

	pfs := cmd.PersistentFlags()
	pfs.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	pfs.StringVarP(&opts.inputPath, "input", "i", "", "particle file (default stdin)")
	pfs.BoolVarP(&opts.verbose, "verbose", "v", false, "show debug messages")
	pfs.Uint64Var(&opts.seed, "seed", def.Seed, "seed of the resampling generator")
	pfs.IntVar(&opts.draws, "draws", def.Draws, "number of resampling draws (0 means one per particle)")
	pfs.Float64Var(&opts.threshold, "threshold", def.Threshold, "resample when effective sample size / N falls below this")

	cmd.AddCommand(newDescribeCmd(opts))
	cmd.AddCommand(newResampleCmd(opts))
	cmd.AddCommand(newPlotCmd(opts))
	return cmd
}

// load resolves the configuration for cmd and reads the population it
// names.
func (opts *options) load(cmd *cobra.Command) (Config, []particle, error) {
	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = loadConfig(opts.configPath); err != nil {
			return cfg, nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.seed
	}
	if flags.Changed("draws") {
		cfg.Draws = opts.draws
	}
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	if len(cfg.Particles) > 0 && opts.inputPath == "" {
		log.WithField("particles", len(cfg.Particles)).Debug("using population from configuration")
		return cfg, cfg.particles(), nil
	}

	var in io.Reader = cmd.InOrStdin()
	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			return cfg, nil, errors.Wrap(err, "opening particle file")
		}
		defer f.Close()
		in = f
	}
	ps, err := readParticles(in)
	if err != nil {
		return cfg, nil, err
	}
	log.WithField("particles", len(ps)).Debug("read population")
	return cfg, ps, nil
}
