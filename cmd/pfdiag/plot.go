// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func newPlotCmd(opts *options) *cobra.Command {
	var (
		output     string
		coordinate int
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot particle masses against one coordinate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ps, err := opts.load(cmd)
			if err != nil {
				return err
			}
			d, err := buildPopulation(ps)
			if err != nil {
				return err
			}
			if err := plotMasses(d, coordinate, output); err != nil {
				return err
			}
			log.WithField("output", output).Info("wrote plot")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "masses.png", "output file; the extension selects the format")
	cmd.Flags().IntVar(&coordinate, "coordinate", 0, "coordinate on the horizontal axis")
	return cmd
}

// plotMasses writes a scatter plot of the probability mass of each
// particle of d against its coordinate k. The weighted mean of that
// coordinate is drawn as a vertical line.
func plotMasses(d *distribution.Discrete[*mat.VecDense], k int, path string) error {
	if k < 0 || k >= d.Dim() {
		return errors.Wrapf(distribution.ErrDimensionMismatch, "coordinate %d of a %d-dimensional population", k, d.Dim())
	}
	mean, err := d.Mean()
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, d.Len())
	maxMass := 0.0
	for i := range pts {
		pts[i].X = d.Location(i).AtVec(k)
		pts[i].Y = d.ProbMass(i)
		maxMass = max(maxMass, pts[i].Y)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d particles, ESS %.4g", d.Len(), d.EffectiveSampleSize())
	p.X.Label.Text = fmt.Sprintf("x[%d]", k)
	p.Y.Label.Text = "probability mass"
	p.Y.Min = 0

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "plotting masses")
	}
	m := mean.AtVec(k)
	l, err := plotter.NewLine(plotter.XYs{{X: m, Y: 0}, {X: m, Y: maxMass}})
	if err != nil {
		return errors.Wrap(err, "plotting mean")
	}
	l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(s, l)
	p.Legend.Add("particles", s)
	p.Legend.Add("mean", l)

	return errors.Wrapf(p.Save(6*vg.Inch, 4*vg.Inch, path), "saving %s", path)
}
