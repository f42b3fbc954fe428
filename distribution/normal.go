// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// sizing determines whether a StandardNormal may change dimension.
type sizing int

const (
	sizeDynamic sizing = iota
	sizeFixed
	sizeScalar
)

// StandardNormal is the multivariate standard normal distribution
// N(0, I) of some dimension. It draws vector samples from a seeded
// Source, one coordinate per scalar draw.
//
// Its moments are exact: the mean is 0 and the covariance is the
// identity.
type StandardNormal struct {
	src    *Source
	dim    int
	sizing sizing
}

// NewStandardNormal returns a standard normal of dimension dim that
// may later be resized.
func NewStandardNormal(seed uint64, dim int) *StandardNormal {
	return newStandardNormal(seed, dim, sizeDynamic)
}

// NewFixedStandardNormal returns a standard normal whose dimension is
// fixed at dim. Resizing it to any other dimension fails.
func NewFixedStandardNormal(seed uint64, dim int) *StandardNormal {
	return newStandardNormal(seed, dim, sizeFixed)
}

// NewScalarStandardNormal returns a scalar-valued standard normal.
// It is one-dimensional and can never be resized.
func NewScalarStandardNormal(seed uint64) *StandardNormal {
	return newStandardNormal(seed, 1, sizeScalar)
}

func newStandardNormal(seed uint64, dim int, s sizing) *StandardNormal {
	if dim < 1 {
		panic(fmt.Sprintf("invalid standard normal dimension %d", dim))
	}
	return &StandardNormal{src: NewSource(seed), dim: dim, sizing: s}
}

// Dim returns the dimension of samples drawn from n.
func (n *StandardNormal) Dim() int {
	return n.dim
}

// Resize changes the dimension of samples drawn from n. Resizing to
// the current dimension always succeeds; otherwise only dynamically
// sized distributions may be resized.
func (n *StandardNormal) Resize(dim int) error {
	if dim == n.dim {
		return nil
	}
	switch n.sizing {
	case sizeScalar:
		return errors.Wrapf(ErrInvalidResize, "cannot resize a scalar-valued standard normal to %d", dim)
	case sizeFixed:
		return errors.Wrapf(ErrInvalidResize, "standard normal is fixed at dimension %d, requested %d", n.dim, dim)
	}
	if dim < 1 {
		return errors.Wrapf(ErrInvalidResize, "dimension %d", dim)
	}
	n.dim = dim
	return nil
}

// Float64 returns a single N(0, 1) draw.
func (n *StandardNormal) Float64() float64 {
	return n.src.NormFloat64()
}

// Sample returns a draw from N(0, I). The error is always nil.
func (n *StandardNormal) Sample() (*mat.VecDense, error) {
	z := make([]float64, n.dim)
	for i := range z {
		z[i] = n.src.NormFloat64()
	}
	return mat.NewVecDense(n.dim, z), nil
}

// Mean returns the zero vector.
func (n *StandardNormal) Mean() (*mat.VecDense, error) {
	return mat.NewVecDense(n.dim, nil), nil
}

// Covariance returns the identity matrix.
func (n *StandardNormal) Covariance() (*mat.SymDense, error) {
	cov := mat.NewSymDense(n.dim, nil)
	for i := 0; i < n.dim; i++ {
		cov.SetSym(i, i, 1)
	}
	return cov, nil
}

// ApproximateMean returns Mean.
func (n *StandardNormal) ApproximateMean() (*mat.VecDense, error) {
	return n.Mean()
}

// ApproximateCovariance returns Covariance.
func (n *StandardNormal) ApproximateCovariance() (*mat.SymDense, error) {
	return n.Covariance()
}
