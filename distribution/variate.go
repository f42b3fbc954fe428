// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import "gonum.org/v1/gonum/mat"

// A Variate is a point in a finite-dimensional real vector space.
//
// *mat.VecDense is a Variate. Scalar is the one-dimensional Variate.
type Variate interface {
	// Len returns the dimension of the variate.
	Len() int

	// AtVec returns the i'th coordinate of the variate.
	AtVec(i int) float64
}

// Scalar is a one-dimensional Variate.
type Scalar float64

// Len returns 1.
func (Scalar) Len() int {
	return 1
}

// AtVec returns s. i must be 0.
func (s Scalar) AtVec(i int) float64 {
	if i != 0 {
		panic(mat.ErrVectorAccess)
	}
	return float64(s)
}

// addScaled sets dst = dst + alpha*x.
func addScaled(dst *mat.VecDense, alpha float64, x Variate) {
	if v, ok := x.(*mat.VecDense); ok {
		dst.AddScaledVec(dst, alpha, v)
		return
	}
	for i := 0; i < dst.Len(); i++ {
		dst.SetVec(i, dst.AtVec(i)+alpha*x.AtVec(i))
	}
}
