// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

func newResampleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resample",
		Short: "Resample a degenerate population and report draw frequencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ps, err := opts.load(cmd)
			if err != nil {
				return err
			}
			d, err := buildPopulation(ps)
			if err != nil {
				return err
			}
			return resample(cmd.OutOrStdout(), d, cfg, opts.force)
		},
	}
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "resample even if the population is not degenerate")
	return cmd
}

// resample draws a new uniformly weighted population from d when its
// effective sample size ratio is below the configured threshold, and
// writes the draw frequencies and the resampled population's summary
// to w.
func resample(w io.Writer, d *distribution.Discrete[*mat.VecDense], cfg Config, force bool) error {
	ratio := d.EffectiveSampleSize() / float64(d.Len())
	logger := log.WithFields(logrus.Fields{
		"ratio":     ratio,
		"threshold": cfg.Threshold,
	})
	if ratio >= cfg.Threshold && !force {
		logger.Info("population is not degenerate, skipping resampling")
		return writeSummary(w, d)
	}

	draws := cfg.Draws
	if draws == 0 {
		draws = d.Len()
	}
	d.Reseed(cfg.Seed)
	idx, err := d.ResampleIndices(draws)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"draws": draws, "seed": cfg.Seed}).Debug("resampled population")

	fs := countFrequencies(d.ProbMasses(), idx)
	for _, f := range fs {
		if !f.plausible() {
			log.WithFields(logrus.Fields{
				"particle": f.index,
				"expected": f.expected(),
				"observed": f.observed,
			}).Warn("draw frequency outside three standard deviations")
		}
	}
	writeFrequencies(w, fs)

	out, err := resampled(d, idx)
	if err != nil {
		return err
	}
	return writeSummary(w, out)
}

// resampled returns the uniformly weighted population made of copies
// of the particles of d selected by idx.
func resampled(d *distribution.Discrete[*mat.VecDense], idx []int) (*distribution.Discrete[*mat.VecDense], error) {
	out := distribution.NewDiscrete[*mat.VecDense](len(idx), d.Dim())
	for k, i := range idx {
		if err := out.SetLocation(k, mat.VecDenseCopyOf(d.Location(i))); err != nil {
			return nil, err
		}
	}
	return out, nil
}
