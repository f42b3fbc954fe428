// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

// Univariate is a particle population over scalar locations. It is a
// Discrete[Scalar] whose moments are reported as plain numbers: the
// mean and the variance.
type Univariate struct {
	*Discrete[Scalar]
}

// NewUnivariate returns a uniformly weighted scalar population of
// size particles.
func NewUnivariate(size int) *Univariate {
	return &Univariate{NewDiscrete[Scalar](size, 1)}
}

// Mean returns Σ wᵢ xᵢ.
func (u *Univariate) Mean() (float64, error) {
	mu, err := u.Discrete.Mean()
	if err != nil {
		return 0, err
	}
	return mu.AtVec(0), nil
}

// Covariance returns the variance Σ wᵢ (xᵢ - μ)².
func (u *Univariate) Covariance() (float64, error) {
	cov, err := u.Discrete.Covariance()
	if err != nil {
		return 0, err
	}
	return cov.At(0, 0), nil
}

// ApproximateMean returns Mean.
func (u *Univariate) ApproximateMean() (float64, error) {
	return u.Mean()
}

// ApproximateCovariance returns Covariance.
func (u *Univariate) ApproximateCovariance() (float64, error) {
	return u.Covariance()
}

// SetLocations assigns xs to the first len(xs) particles.
func (u *Univariate) SetLocations(xs ...float64) error {
	for i, x := range xs {
		if err := u.SetLocation(i, Scalar(x)); err != nil {
			return err
		}
	}
	return nil
}
