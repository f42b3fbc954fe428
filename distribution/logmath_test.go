// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestLogSumExp(t *testing.T) {
	tests := []struct {
		xs   []float64
		want float64
	}{
		{[]float64{0}, 0},
		{[]float64{0, math.Log(3)}, math.Log(4)},
		{[]float64{1000, 1000}, 1000 + math.Ln2},
		{[]float64{-1000, -1000}, -1000 + math.Ln2},
	}
	for _, test := range tests {
		if got := LogSumExp(test.xs); !aeq(test.want, got) {
			t.Errorf("LogSumExp(%v) = %v, want %v", test.xs, got, test.want)
		}
	}
	if got := LogSumExp(nil); !math.IsInf(got, -1) {
		t.Errorf("LogSumExp(nil) = %v, want -Inf", got)
	}
}

func TestGaussianLogDensity(t *testing.T) {
	xs := mat.NewDense(2, 3, []float64{
		0, 1, 0,
		0, 0, -2,
	})
	got, err := GaussianLogDensity(xs, vec(0, 0), mat.NewSymDense(2, []float64{1, 0, 0, 1}))
	if err != nil {
		t.Fatal(err)
	}
	log2Pi := math.Log(2 * math.Pi)
	want := []float64{-log2Pi, -log2Pi - 0.5, -log2Pi - 2}
	for i := range want {
		if !aeq(want[i], got[i]) {
			t.Errorf("log density of column %d = %v, want %v", i, got[i], want[i])
		}
	}

	dens, err := GaussianDensity(mat.NewDense(1, 1, []float64{0}), vec(0), mat.NewSymDense(1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1/math.Sqrt(2*math.Pi), dens[0]) {
		t.Errorf("density at 0 = %v, want 1/√(2π)", dens[0])
	}
}

func TestGaussianLogDensityErrors(t *testing.T) {
	xs := mat.NewDense(2, 1, []float64{0, 0})
	if _, err := GaussianLogDensity(xs, vec(0, 0, 0), mat.NewSymDense(3, nil)); err == nil {
		t.Errorf("mismatched dimensions did not fail")
	}
	notPD := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	if _, err := GaussianLogDensity(xs, vec(0, 0), notPD); err == nil {
		t.Errorf("indefinite covariance did not fail")
	}
}

func TestGaussianLikelihoodUpdate(t *testing.T) {
	// A correction step: weight particles by the likelihood of a
	// measurement at 1 with unit noise.
	d := NewUnivariate(3)
	if err := d.SetLocations(-1, 0, 1); err != nil {
		t.Fatal(err)
	}
	xs := mat.NewDense(1, 3, []float64{-1 - 1, 0 - 1, 1 - 1})
	delta, err := GaussianLogDensity(xs, vec(0), mat.NewSymDense(1, []float64{1}))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.ApplyLogWeightDelta(delta); err != nil {
		t.Fatal(err)
	}
	// Masses ∝ exp(-2), exp(-1/2), exp(0).
	z := math.Exp(-2) + math.Exp(-0.5) + 1
	for i, w := range []float64{math.Exp(-2) / z, math.Exp(-0.5) / z, 1 / z} {
		if !aeq(w, d.ProbMass(i)) {
			t.Errorf("mass %d = %v, want %v", i, d.ProbMass(i), w)
		}
	}
}
