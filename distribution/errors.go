// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import "github.com/pkg/errors"

// Error kinds reported by this package. Returned errors wrap one of
// these with context; test for them with errors.Is.
var (
	// ErrEmptyPopulation is reported by queries that need at
	// least one particle, and by attempts to install an empty
	// population.
	ErrEmptyPopulation = errors.New("distribution: empty particle population")

	// ErrInvalidWeight is reported for non-finite log weights and
	// for weight vectors whose length does not match the
	// population.
	ErrInvalidWeight = errors.New("distribution: invalid log weight")

	// ErrInvalidResize is reported when resizing a fixed-size or
	// scalar-valued variate.
	ErrInvalidResize = errors.New("distribution: invalid resize")

	// ErrDimensionMismatch is reported when a variate's dimension
	// disagrees with the declared dimension.
	ErrDimensionMismatch = errors.New("distribution: dimension mismatch")

	// ErrUnsetLocation is reported when a query reaches a particle
	// slot that was added by growing the population and has not
	// been assigned since.
	ErrUnsetLocation = errors.New("distribution: location not set")
)
