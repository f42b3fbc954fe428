// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type particle struct {
	location  []float64
	logWeight float64
}

// readParticles parses one particle per line from r. It reports every
// malformed line, not just the first.
func readParticles(r io.Reader) ([]particle, error) {
	var (
		ps   []particle
		merr *multierror.Error
	)
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) < 2 {
			merr = multierror.Append(merr, errors.Errorf("line %d: want coordinates and a log weight, got %q", lineno, l))
			continue
		}
		values := make([]float64, len(fields))
		ok := true
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				merr = multierror.Append(merr, errors.Wrapf(err, "line %d", lineno))
				ok = false
				break
			}
			values[i] = v
		}
		if ok {
			n := len(values) - 1
			ps = append(ps, particle{location: values[:n], logWeight: values[n]})
		}
	}
	if err := scanner.Err(); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildPopulation installs ps as a particle population.
func buildPopulation(ps []particle) (*distribution.Discrete[*mat.VecDense], error) {
	if len(ps) == 0 {
		return nil, errors.Wrap(distribution.ErrEmptyPopulation, "no particles in input")
	}
	dim := len(ps[0].location)
	d := distribution.NewDiscrete[*mat.VecDense](len(ps), dim)

	var merr *multierror.Error
	logWeights := make([]float64, len(ps))
	for i, p := range ps {
		logWeights[i] = p.logWeight
		loc := append([]float64(nil), p.location...)
		if err := d.SetLocation(i, mat.NewVecDense(len(loc), loc)); err != nil {
			merr = multierror.Append(merr, errors.Wrapf(err, "particle %d", i))
		}
	}
	if err := d.InstallLogUnnormalizedMass(logWeights); err != nil {
		merr = multierror.Append(merr, err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return d, nil
}
