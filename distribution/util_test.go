// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 1e-9
}

func aeqVec(expect []float64, got mat.Vector) bool {
	if got.Len() != len(expect) {
		return false
	}
	for i, x := range expect {
		if !aeq(x, got.AtVec(i)) {
			return false
		}
	}
	return true
}

func aeqSym(expect [][]float64, got mat.Symmetric) bool {
	if got.SymmetricDim() != len(expect) {
		return false
	}
	for i := range expect {
		for j := range expect[i] {
			if !aeq(expect[i][j], got.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// testIndex checks that f maps each key of want to its value.
func testIndex(t *testing.T, name string, f func(float64) int, want map[float64]int) {
	t.Helper()
	for x, w := range want {
		if got := f(x); got != w {
			t.Errorf("%s(%v) = %d, want %d", name, x, got, w)
		}
	}
}

func vec(xs ...float64) *mat.VecDense {
	return mat.NewVecDense(len(xs), xs)
}
