// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestJoint(t *testing.T) {
	particles := NewDiscrete[*mat.VecDense](2, 2)
	if err := particles.SetLocation(0, vec(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := particles.SetLocation(1, vec(4, 2)); err != nil {
		t.Fatal(err)
	}
	scalar := NewUnivariate(2)
	if err := scalar.SetLocations(-3, 3); err != nil {
		t.Fatal(err)
	}

	j := NewJoint(NewStandardNormal(DefaultSeed, 2), particles, scalar.Discrete)
	if j.Dim() != 5 {
		t.Fatalf("Dim() = %d, want 5", j.Dim())
	}
	if len(j.Marginals()) != 3 {
		t.Fatalf("have %d marginals, want 3", len(j.Marginals()))
	}

	mu, err := j.Mean()
	if err != nil {
		t.Fatal(err)
	}
	if !aeqVec([]float64{0, 0, 2, 1, 0}, mu) {
		t.Errorf("mean = %v, want [0 0 2 1 0]", mat.Formatted(mu.T()))
	}

	cov, err := j.Covariance()
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 4, 2, 0},
		{0, 0, 2, 1, 0},
		{0, 0, 0, 0, 9},
	}
	if !aeqSym(want, cov) {
		t.Errorf("covariance =\n%v\nwant block diagonal %v", mat.Formatted(cov), want)
	}

	acov, err := j.ApproximateCovariance()
	if err != nil || !mat.Equal(cov, acov) {
		t.Errorf("approximate covariance differs from covariance")
	}
	amu, err := j.ApproximateMean()
	if err != nil || !mat.Equal(mu, amu) {
		t.Errorf("approximate mean differs from mean")
	}
}

func TestJointErrors(t *testing.T) {
	if _, err := NewJoint().Mean(); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Mean of empty joint = %v, want ErrEmptyPopulation", err)
	}
	if _, err := NewJoint().Covariance(); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Covariance of empty joint = %v, want ErrEmptyPopulation", err)
	}

	unset := NewDiscrete[*mat.VecDense](2, 2)
	j := NewJoint(NewStandardNormal(DefaultSeed, 1), unset)
	if _, err := j.Mean(); !errors.Is(err, ErrUnsetLocation) {
		t.Errorf("Mean with an unset marginal = %v, want ErrUnsetLocation", err)
	}
}
