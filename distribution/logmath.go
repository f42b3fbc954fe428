// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// LogSumExp returns log(Σ exp(xᵢ)), computed without overflow by
// shifting by the maximum. It returns -Inf for an empty slice.
func LogSumExp(xs []float64) float64 {
	if len(xs) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(xs)
}

// GaussianLogDensity returns the log density of N(mean, cov) at each
// column of xs. This is the usual source of the log weight deltas fed
// to Discrete.ApplyLogWeightDelta.
func GaussianLogDensity(xs mat.Matrix, mean mat.Vector, cov mat.Symmetric) ([]float64, error) {
	r, c := xs.Dims()
	dim := mean.Len()
	if r != dim || cov.SymmetricDim() != dim {
		return nil, errors.Wrapf(ErrDimensionMismatch, "inputs have dimension %d, mean %d, covariance %d", r, dim, cov.SymmetricDim())
	}
	mu := make([]float64, dim)
	for i := range mu {
		mu[i] = mean.AtVec(i)
	}
	normal, ok := distmv.NewNormal(mu, cov, nil)
	if !ok {
		return nil, errors.New("distribution: covariance is not positive definite")
	}
	out := make([]float64, c)
	col := make([]float64, r)
	for j := range out {
		out[j] = normal.LogProb(mat.Col(col, j, xs))
	}
	return out, nil
}

// GaussianDensity returns the density of N(mean, cov) at each column
// of xs.
func GaussianDensity(xs mat.Matrix, mean mat.Vector, cov mat.Symmetric) ([]float64, error) {
	out, err := GaussianLogDensity(xs, mean, cov)
	if err != nil {
		return nil, err
	}
	for i, l := range out {
		out[i] = math.Exp(l)
	}
	return out, nil
}
