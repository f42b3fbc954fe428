// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distribution implements the distribution and moment
// machinery behind particle filters: weighted particle populations
// (Discrete), seeded standard normal generation (StandardNormal), the
// mapping of standard normal draws onto a target distribution
// (StandardNormalMap), and exact and approximate moment capabilities
// (Moment, ApproximateMoments).
//
// Nothing in this package is safe for concurrent mutation. Read-only
// moment and diagnostic queries may run concurrently with each other,
// but not with a mutation of the same distribution. Sampling is a
// mutation: Sample, SampleIndex and ResampleIndices on a Discrete
// create and advance its generator, and sampling a StandardNormal
// advances its state, so each must be confined to one goroutine.
package distribution // import "github.com/claudiofantacci/bayes-filters-lib/distribution"
