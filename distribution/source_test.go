// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestSource(t *testing.T) {
	for _, seed := range []uint64{0, DefaultSeed, 1 << 40} {
		s := NewSource(seed)
		if s.Seed() != seed {
			t.Errorf("Seed() = %d, want %d", s.Seed(), seed)
		}
		ref := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
		for i := 0; i < 20; i++ {
			if got, want := s.NormFloat64(), ref.Rand(); got != want {
				t.Fatalf("seed %d draw %d = %v, want %v", seed, i, got, want)
			}
		}
	}

	a, b := NewSource(3), NewSource(4)
	same := true
	for i := 0; i < 5; i++ {
		if a.NormFloat64() != b.NormFloat64() {
			same = false
		}
	}
	if same {
		t.Error("different seeds gave identical draws")
	}
}
