// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Joint is the product of independent marginal distributions. Its
// variate is the concatenation of the marginal variates, so its mean
// stacks the marginal means and its covariance is block diagonal.
//
// Joint composes the moments of its marginals and never touches
// their particles.
type Joint struct {
	marginals []VectorMoment
}

// NewJoint returns the product of marginals.
func NewJoint(marginals ...VectorMoment) *Joint {
	return &Joint{marginals: append([]VectorMoment(nil), marginals...)}
}

// Marginals returns the marginal distributions of j.
func (j *Joint) Marginals() []VectorMoment {
	return append([]VectorMoment(nil), j.marginals...)
}

// Dim returns the sum of the marginal dimensions.
func (j *Joint) Dim() int {
	dim := 0
	for _, m := range j.marginals {
		dim += m.Dim()
	}
	return dim
}

// Mean returns the concatenated marginal means.
func (j *Joint) Mean() (*mat.VecDense, error) {
	if len(j.marginals) == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "joint mean")
	}
	mu := mat.NewVecDense(j.Dim(), nil)
	off := 0
	for k, m := range j.marginals {
		mk, err := m.Mean()
		if err != nil {
			return nil, errors.Wrapf(err, "marginal %d", k)
		}
		if mk.Len() != m.Dim() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "marginal %d mean has dimension %d, want %d", k, mk.Len(), m.Dim())
		}
		mu.SliceVec(off, off+m.Dim()).(*mat.VecDense).CopyVec(mk)
		off += m.Dim()
	}
	return mu, nil
}

// Covariance returns the block diagonal matrix of marginal
// covariances.
func (j *Joint) Covariance() (*mat.SymDense, error) {
	if len(j.marginals) == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "joint covariance")
	}
	cov := mat.NewSymDense(j.Dim(), nil)
	off := 0
	for k, m := range j.marginals {
		ck, err := m.Covariance()
		if err != nil {
			return nil, errors.Wrapf(err, "marginal %d", k)
		}
		if ck.SymmetricDim() != m.Dim() {
			return nil, errors.Wrapf(ErrDimensionMismatch, "marginal %d covariance has dimension %d, want %d", k, ck.SymmetricDim(), m.Dim())
		}
		cov.SliceSym(off, off+m.Dim()).(*mat.SymDense).CopySym(ck)
		off += m.Dim()
	}
	return cov, nil
}

// ApproximateMean returns Mean.
func (j *Joint) ApproximateMean() (*mat.VecDense, error) {
	return j.Mean()
}

// ApproximateCovariance returns Covariance.
func (j *Joint) ApproximateCovariance() (*mat.SymDense, error) {
	return j.Covariance()
}
