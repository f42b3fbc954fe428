// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// writeSummary describes the population d: its size, spread, and
// first two moments.
func writeSummary(w io.Writer, d *distribution.Discrete[*mat.VecDense]) error {
	n := d.Len()
	ess := d.EffectiveSampleSize()

	t := newTable(w, "statistic", "value")
	t.Append([]string{"particles", strconv.Itoa(n)})
	t.Append([]string{"dimension", strconv.Itoa(d.Dim())})
	t.Append([]string{"entropy", formatFloat(d.Entropy())})
	t.Append([]string{"KL from uniform", formatFloat(d.KLFromUniform())})
	t.Append([]string{"effective sample size", formatFloat(ess)})
	t.Append([]string{"ESS / N", formatFloat(ess / float64(n))})
	t.Render()
	fmt.Fprintln(w)

	mean, err := d.Mean()
	if err != nil {
		return err
	}
	cov, err := d.Covariance()
	if err != nil {
		return err
	}
	mode, err := d.Max()
	if err != nil {
		return err
	}

	t = newTable(w, "coordinate", "mean", "std dev", "mode")
	for i := 0; i < d.Dim(); i++ {
		t.Append([]string{
			strconv.Itoa(i),
			formatFloat(mean.AtVec(i)),
			formatFloat(math.Sqrt(cov.At(i, i))),
			formatFloat(mode.AtVec(i)),
		})
	}
	t.Render()
	fmt.Fprintln(w)

	fmt.Fprintf(w, "covariance\n%.6g\n", mat.Formatted(cov, mat.Prefix("")))
	return nil
}

// frequency is the outcome of resampling one particle.
type frequency struct {
	index    int
	mass     float64
	observed int
	draws    int
}

func (f frequency) expected() float64 {
	return f.mass * float64(f.draws)
}

// plausible reports whether the observed count lies within three
// standard deviations of its binomial expectation.
func (f frequency) plausible() bool {
	b := distuv.Binomial{N: float64(f.draws), P: f.mass}
	return math.Abs(float64(f.observed)-b.Mean()) <= 3*b.StdDev()
}

func countFrequencies(masses []float64, idx []int) []frequency {
	fs := make([]frequency, len(masses))
	for i, m := range masses {
		fs[i] = frequency{index: i, mass: m, draws: len(idx)}
	}
	for _, i := range idx {
		fs[i].observed++
	}
	return fs
}

func writeFrequencies(w io.Writer, fs []frequency) {
	t := newTable(w, "particle", "mass", "expected", "observed", "within 3σ")
	for _, f := range fs {
		within := strconv.FormatBool(f.plausible())
		if !f.plausible() {
			within = color.Red.Sprint(within)
		}
		t.Append([]string{
			strconv.Itoa(f.index),
			formatFloat(f.mass),
			formatFloat(f.expected()),
			strconv.Itoa(f.observed),
			within,
		})
	}
	t.Render()
	fmt.Fprintln(w)
}
