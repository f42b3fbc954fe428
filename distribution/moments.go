// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ApproximateMoments is implemented by distributions that can only
// estimate their first two moments, such as a finite population
// standing in for a continuous target.
//
// M is the first moment type and C the second central moment type.
// For vector variates these are *mat.VecDense and *mat.SymDense; for
// scalar variates both are float64 and C is the variance.
type ApproximateMoments[M, C any] interface {
	// ApproximateMean returns an estimate of the mean.
	ApproximateMean() (M, error)

	// ApproximateCovariance returns an estimate of the
	// covariance.
	ApproximateCovariance() (C, error)
}

// Moment is implemented by distributions that know their first two
// moments exactly.
//
// Implementations must implement ApproximateMean and
// ApproximateCovariance by returning Mean and Covariance, so every
// Moment is also a valid ApproximateMoments.
type Moment[M, C any] interface {
	ApproximateMoments[M, C]

	// Mean returns the mean, Σ xᵢ p(xᵢ).
	Mean() (M, error)

	// Covariance returns the second central moment,
	// Σ (xᵢ - μ)(xᵢ - μ)ᵀ p(xᵢ).
	Covariance() (C, error)
}

// VectorMoment is a Moment over vector variates of a known dimension.
type VectorMoment interface {
	Moment[*mat.VecDense, *mat.SymDense]

	// Dim returns the dimension of the variate.
	Dim() int
}

// A Sampler draws random variates.
type Sampler[V any] interface {
	// Sample returns a variate drawn from the underlying
	// distribution.
	Sample() (V, error)
}

// A StandardNormalMap maps draws from a standard normal distribution
// onto variates of an underlying distribution. Implementing the map
// is enough to sample: see MapSampler.
type StandardNormalMap[V any] interface {
	// MapStandardNormal maps z, a draw from N(0, I) of dimension
	// StandardVariateDim, onto a variate.
	MapStandardNormal(z mat.Vector) (V, error)

	// StandardVariateDim returns the dimension of the standard
	// normal variates consumed by MapStandardNormal.
	StandardVariateDim() int
}

// MapSampler samples a distribution by drawing from Normal and
// mapping the draw through Map.
type MapSampler[V any] struct {
	Map    StandardNormalMap[V]
	Normal *StandardNormal
}

// NewMapSampler returns a MapSampler for m whose standard normal
// generator is seeded with seed and sized to m.
func NewMapSampler[V any](m StandardNormalMap[V], seed uint64) *MapSampler[V] {
	return &MapSampler[V]{Map: m, Normal: NewStandardNormal(seed, m.StandardVariateDim())}
}

// Sample draws z from s.Normal and returns s.Map.MapStandardNormal(z).
func (s *MapSampler[V]) Sample() (V, error) {
	if want := s.Map.StandardVariateDim(); s.Normal.Dim() != want {
		var zero V
		return zero, errors.Wrapf(ErrDimensionMismatch, "standard normal has dimension %d, map wants %d", s.Normal.Dim(), want)
	}
	z, err := s.Normal.Sample()
	if err != nil {
		var zero V
		return zero, err
	}
	return s.Map.MapStandardNormal(z)
}
