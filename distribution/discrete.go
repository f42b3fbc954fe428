// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distribution

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete is the empirical distribution of a weighted particle
// population: N locations of a common dimension, each carrying a
// probability mass.
//
// Masses are stored in the log domain and kept normalized. Every
// mutation leaves the population consistent: the masses sum to 1,
// each mass is the exponential of its log mass, and the cumulative
// table is the running sum of the masses.
//
// Moments are recomputed from the current population on every call;
// nothing is cached.
//
// The zero value is an empty population whose dimension is taken
// from the first location assigned to it.
type Discrete[V Variate] struct {
	dim int

	locations []V
	set       locationMarks

	logMass    []float64
	mass       []float64
	cumulative []float64

	seed    uint64
	seeded  bool
	sampler *MapSampler[V]
}

// NewDiscrete returns a uniformly weighted population of size
// particles of dimension dim. The locations are unset until assigned
// with SetLocation or FromSampler. Sampling uses DefaultSeed until
// Reseed is called.
func NewDiscrete[V Variate](size, dim int) *Discrete[V] {
	if dim < 1 {
		panic(fmt.Sprintf("invalid variate dimension %d", dim))
	}
	d := &Discrete[V]{dim: dim}
	if size > 0 {
		if err := d.SetUniform(size); err != nil {
			panic(err)
		}
	}
	return d
}

// Len returns the number of particles.
func (d *Discrete[V]) Len() int {
	return len(d.logMass)
}

// Dim returns the dimension of the particle locations.
func (d *Discrete[V]) Dim() int {
	return d.dim
}

// InstallLogUnnormalizedMass replaces the population's masses with
// the normalization of exp(values). The population takes the length
// of values: surplus locations are discarded and new slots are unset.
//
// values must be non-empty and finite. Entries so far below the
// maximum that their mass underflows get mass 0 and log mass -Inf.
// On error d is unchanged.
func (d *Discrete[V]) InstallLogUnnormalizedMass(values []float64) error {
	if len(values) == 0 {
		return errors.Wrap(ErrEmptyPopulation, "installing log mass")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidWeight, "log mass %d is %v", i, v)
		}
	}
	d.install(values)
	return nil
}

// install normalizes values into d. values must contain no NaN or
// +Inf and at least one finite entry. -Inf entries get mass 0.
func (d *Discrete[V]) install(values []float64) {
	n := len(values)
	logMass := make([]float64, n)
	mass := make([]float64, n)
	cumulative := make([]float64, n)

	// Shift by the maximum so the largest term is exp(0) = 1 and
	// the sum can neither overflow nor vanish. A shift that
	// overflows leaves -Inf, whose mass is 0.
	copy(logMass, values)
	floats.AddConst(-floats.Max(values), logMass)
	for i, l := range logMass {
		mass[i] = math.Exp(l)
	}
	floats.AddConst(-math.Log(floats.Sum(mass)), logMass)
	for i, l := range logMass {
		mass[i] = math.Exp(l)
	}
	floats.CumSum(cumulative, mass)

	d.resize(n)
	d.logMass, d.mass, d.cumulative = logMass, mass, cumulative
}

// ApplyLogWeightDelta adds delta to the current normalized log masses
// and renormalizes. This is the importance weight update: successive
// deltas compose multiplicatively in mass. Particles whose mass is 0
// keep mass 0.
//
// delta must have one finite entry per particle. On error d is
// unchanged.
func (d *Discrete[V]) ApplyLogWeightDelta(delta []float64) error {
	if d.Len() == 0 {
		return errors.Wrap(ErrEmptyPopulation, "applying log weight delta")
	}
	if len(delta) != d.Len() {
		return errors.Wrapf(ErrInvalidWeight, "delta has %d entries, population has %d", len(delta), d.Len())
	}
	next := make([]float64, d.Len())
	for i, v := range delta {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidWeight, "delta %d is %v", i, v)
		}
		next[i] = d.logMass[i] + v
	}
	d.install(next)
	return nil
}

// SetUniform resizes the population to size particles of equal mass
// 1/size.
func (d *Discrete[V]) SetUniform(size int) error {
	if size < 1 {
		return errors.Wrapf(ErrEmptyPopulation, "uniform population of size %d", size)
	}
	return d.InstallLogUnnormalizedMass(make([]float64, size))
}

// resize sets the number of location slots to n.
func (d *Discrete[V]) resize(n int) {
	if n <= len(d.locations) {
		var zero V
		for i := n; i < len(d.locations); i++ {
			d.locations[i] = zero
		}
		d.locations = d.locations[:n]
		d.set.truncate(n)
		return
	}
	d.set.truncate(len(d.locations))
	d.locations = append(d.locations, make([]V, n-len(d.locations))...)
}

// Location returns the location of particle i.
func (d *Discrete[V]) Location(i int) V {
	return d.locations[i]
}

// SetLocation sets the location of particle i. It does not change
// any mass.
func (d *Discrete[V]) SetLocation(i int, x V) error {
	if err := d.checkDim(x); err != nil {
		return errors.Wrapf(err, "location %d", i)
	}
	d.locations[i] = x
	if d.dim == 0 {
		d.dim = x.Len()
	}
	d.set.mark(i)
	return nil
}

func (d *Discrete[V]) checkDim(x V) error {
	if d.dim != 0 && x.Len() != d.dim {
		return errors.Wrapf(ErrDimensionMismatch, "variate has dimension %d, want %d", x.Len(), d.dim)
	}
	return nil
}

// Locations returns a copy of the particle locations.
func (d *Discrete[V]) Locations() []V {
	return append([]V(nil), d.locations...)
}

// LogProbMass returns the normalized log mass of particle i.
func (d *Discrete[V]) LogProbMass(i int) float64 {
	return d.logMass[i]
}

// ProbMass returns the mass of particle i.
func (d *Discrete[V]) ProbMass(i int) float64 {
	return d.mass[i]
}

// LogProbMasses returns a copy of all normalized log masses.
func (d *Discrete[V]) LogProbMasses() []float64 {
	return append([]float64(nil), d.logMass...)
}

// ProbMasses returns a copy of all masses.
func (d *Discrete[V]) ProbMasses() []float64 {
	return append([]float64(nil), d.mass...)
}

// Cumulative returns a copy of the cumulative mass table.
func (d *Discrete[V]) Cumulative() []float64 {
	return append([]float64(nil), d.cumulative...)
}

// FromSampler replaces the population with n uniformly weighted
// locations drawn from s. On error d is unchanged.
func (d *Discrete[V]) FromSampler(s Sampler[V], n int) error {
	if n < 1 {
		return errors.Wrapf(ErrEmptyPopulation, "drawing %d locations", n)
	}
	dim := d.dim
	xs := make([]V, n)
	for i := range xs {
		x, err := s.Sample()
		if err != nil {
			return errors.Wrapf(err, "drawing location %d", i)
		}
		if dim == 0 {
			dim = x.Len()
		} else if x.Len() != dim {
			return errors.Wrapf(ErrDimensionMismatch, "location %d has dimension %d, want %d", i, x.Len(), dim)
		}
		xs[i] = x
	}
	if err := d.SetUniform(n); err != nil {
		return err
	}
	d.dim = dim
	copy(d.locations, xs)
	for i := range xs {
		d.set.mark(i)
	}
	return nil
}

// Reseed restarts the generator used by Sample and SampleIndex.
func (d *Discrete[V]) Reseed(seed uint64) {
	d.seed, d.seeded = seed, true
	d.sampler = nil
}

// mapSampler returns the sampler behind Sample, creating it on first
// use. It uses DefaultSeed unless Reseed was called.
func (d *Discrete[V]) mapSampler() *MapSampler[V] {
	if d.sampler == nil {
		seed := uint64(DefaultSeed)
		if d.seeded {
			seed = d.seed
		}
		d.sampler = &MapSampler[V]{Map: d, Normal: NewScalarStandardNormal(seed)}
	}
	return d.sampler
}

// StandardVariateDim returns 1: a particle is selected by a single
// standard normal draw.
func (d *Discrete[V]) StandardVariateDim() int {
	return 1
}

// Sample returns the location of a randomly selected particle, chosen
// with probability equal to its mass. It advances the generator of d,
// so it must not run concurrently with other calls on d.
func (d *Discrete[V]) Sample() (V, error) {
	return d.mapSampler().Sample()
}

// SampleIndex is like Sample, but also returns the selected
// particle's index.
func (d *Discrete[V]) SampleIndex() (V, int, error) {
	return d.MapNormal(d.mapSampler().Normal.Float64())
}

// ResampleIndices returns the indices of n particles drawn with
// replacement according to their masses.
func (d *Discrete[V]) ResampleIndices(n int) ([]int, error) {
	if d.Len() == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "resampling")
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrEmptyPopulation, "drawing %d indices", n)
	}
	idx := make([]int, n)
	for k := range idx {
		_, i, err := d.SampleIndex()
		if err != nil {
			return nil, err
		}
		idx[k] = i
	}
	return idx, nil
}

// MapStandardNormal maps the one-dimensional standard normal draw z
// onto a particle location.
func (d *Discrete[V]) MapStandardNormal(z mat.Vector) (V, error) {
	if z.Len() != 1 {
		var zero V
		return zero, errors.Wrapf(ErrDimensionMismatch, "standard variate has dimension %d, want 1", z.Len())
	}
	x, _, err := d.MapNormal(z.AtVec(0))
	return x, err
}

// MapNormal maps the standard normal draw z onto a particle by
// converting it to a uniform draw with the normal CDF and passing
// that to MapUniform.
func (d *Discrete[V]) MapNormal(z float64) (V, int, error) {
	return d.MapUniform(distuv.UnitNormal.CDF(z))
}

// MapUniform returns the first particle whose cumulative mass is at
// least u, and its index. Values of u at or beyond the last
// cumulative mass select the last particle.
func (d *Discrete[V]) MapUniform(u float64) (V, int, error) {
	var zero V
	n := len(d.cumulative)
	if n == 0 {
		return zero, -1, errors.Wrap(ErrEmptyPopulation, "mapping uniform draw")
	}
	i := sort.SearchFloat64s(d.cumulative, u)
	if i == n {
		i = n - 1
	}
	if !d.set.test(i) {
		return zero, i, errors.Wrapf(ErrUnsetLocation, "particle %d", i)
	}
	return d.locations[i], i, nil
}

// checkPopulation reports whether moments of d are defined.
func (d *Discrete[V]) checkPopulation() error {
	if d.Len() == 0 {
		return ErrEmptyPopulation
	}
	if i := d.set.firstUnset(d.Len()); i >= 0 {
		return errors.Wrapf(ErrUnsetLocation, "particle %d", i)
	}
	return nil
}

// Mean returns Σ wᵢ xᵢ.
func (d *Discrete[V]) Mean() (*mat.VecDense, error) {
	if err := d.checkPopulation(); err != nil {
		return nil, errors.Wrap(err, "mean")
	}
	return d.mean(), nil
}

func (d *Discrete[V]) mean() *mat.VecDense {
	mu := mat.NewVecDense(d.dim, nil)
	for i, x := range d.locations {
		addScaled(mu, d.mass[i], x)
	}
	return mu
}

// Covariance returns Σ wᵢ (xᵢ - μ)(xᵢ - μ)ᵀ, where μ is the current
// Mean.
func (d *Discrete[V]) Covariance() (*mat.SymDense, error) {
	if err := d.checkPopulation(); err != nil {
		return nil, errors.Wrap(err, "covariance")
	}
	mu := d.mean()
	cov := mat.NewSymDense(d.dim, nil)
	delta := mat.NewVecDense(d.dim, nil)
	for i, x := range d.locations {
		for j := 0; j < d.dim; j++ {
			delta.SetVec(j, x.AtVec(j)-mu.AtVec(j))
		}
		cov.SymRankOne(cov, d.mass[i], delta)
	}
	return cov, nil
}

// ApproximateMean returns Mean. The weighted sums are the exact
// moments of the discrete distribution itself.
func (d *Discrete[V]) ApproximateMean() (*mat.VecDense, error) {
	return d.Mean()
}

// ApproximateCovariance returns Covariance.
func (d *Discrete[V]) ApproximateCovariance() (*mat.SymDense, error) {
	return d.Covariance()
}

// Max returns the location with the largest mass, the mode of the
// population. Ties go to the lowest index.
func (d *Discrete[V]) Max() (V, error) {
	var zero V
	if d.Len() == 0 {
		return zero, errors.Wrap(ErrEmptyPopulation, "max")
	}
	i := floats.MaxIdx(d.logMass)
	if !d.set.test(i) {
		return zero, errors.Wrapf(ErrUnsetLocation, "max: particle %d", i)
	}
	return d.locations[i], nil
}

// Entropy returns the Shannon entropy of the masses in nats,
// -Σ wᵢ log wᵢ, where particles of mass 0 contribute 0. The entropy
// of an empty population is 0.
func (d *Discrete[V]) Entropy() float64 {
	h := 0.0
	for i, w := range d.mass {
		if w > 0 {
			h -= w * d.logMass[i]
		}
	}
	return h
}

// KLFromUniform returns the Kullback-Leibler divergence of the
// masses from the uniform distribution over the same particles,
// log N - Entropy. It is 0 for a uniform population and approaches
// log N as the mass concentrates on one particle. It is 0 for an
// empty population.
func (d *Discrete[V]) KLFromUniform() float64 {
	if d.Len() == 0 {
		return 0
	}
	return math.Log(float64(d.Len())) - d.Entropy()
}

// EffectiveSampleSize returns 1 / Σ wᵢ², which ranges from 1 for a
// fully degenerate population to N for a uniform one. It is 0 for an
// empty population.
func (d *Discrete[V]) EffectiveSampleSize() float64 {
	if d.Len() == 0 {
		return 0
	}
	return 1 / floats.Dot(d.mass, d.mass)
}
