// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SampleMoments estimates the moments of a distribution from a finite
// number of draws. It only implements ApproximateMoments: the sample
// mean and the unbiased sample covariance approach the true moments
// as the number of draws grows.
type SampleMoments struct {
	n    int
	mean *mat.VecDense
	cov  *mat.SymDense
}

// NewSampleMoments draws n variates from s and returns their sample
// moments. n must be at least 2.
func NewSampleMoments(s Sampler[*mat.VecDense], n int) (*SampleMoments, error) {
	if n < 2 {
		return nil, errors.Wrapf(ErrEmptyPopulation, "sample moments need at least 2 draws, have %d", n)
	}
	var x *mat.Dense
	for i := 0; i < n; i++ {
		v, err := s.Sample()
		if err != nil {
			return nil, errors.Wrapf(err, "draw %d", i)
		}
		if x == nil {
			x = mat.NewDense(n, v.Len(), nil)
		} else if _, c := x.Dims(); v.Len() != c {
			return nil, errors.Wrapf(ErrDimensionMismatch, "draw %d has dimension %d, want %d", i, v.Len(), c)
		}
		for j := 0; j < v.Len(); j++ {
			x.Set(i, j, v.AtVec(j))
		}
	}
	return sampleMomentsOf(x), nil
}

// sampleMomentsOf returns the moments of the rows of x.
func sampleMomentsOf(x *mat.Dense) *SampleMoments {
	n, dim := x.Dims()
	mean := mat.NewVecDense(dim, nil)
	col := make([]float64, n)
	for j := 0; j < dim; j++ {
		mean.SetVec(j, stat.Mean(mat.Col(col, j, x), nil))
	}
	cov := mat.NewSymDense(dim, nil)
	stat.CovarianceMatrix(cov, x, nil)
	return &SampleMoments{n: n, mean: mean, cov: cov}
}

// N returns the number of draws the moments were computed from.
func (m *SampleMoments) N() int {
	return m.n
}

// Dim returns the dimension of the draws.
func (m *SampleMoments) Dim() int {
	return m.mean.Len()
}

// ApproximateMean returns the sample mean.
func (m *SampleMoments) ApproximateMean() (*mat.VecDense, error) {
	return mat.VecDenseCopyOf(m.mean), nil
}

// ApproximateCovariance returns the unbiased sample covariance.
func (m *SampleMoments) ApproximateCovariance() (*mat.SymDense, error) {
	cov := mat.NewSymDense(m.cov.SymmetricDim(), nil)
	cov.CopySym(m.cov)
	return cov, nil
}
