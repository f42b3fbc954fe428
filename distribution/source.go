// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultSeed is the seed used by constructors that do not take one.
const DefaultSeed = 1

// A Source generates independent standard normal scalars. The
// sequence is fully determined by the seed.
type Source struct {
	seed uint64
	norm distuv.Normal
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{
		seed: seed,
		norm: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)},
	}
}

// Seed returns the seed s was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// NormFloat64 returns the next draw from N(0, 1).
func (s *Source) NormFloat64() float64 {
	return s.norm.Rand()
}
