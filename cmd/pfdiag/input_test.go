// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/claudiofantacci/bayes-filters-lib/distribution"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

func TestReadParticles(t *testing.T) {
	in := `# x y logw
0 0 0

2 2 -1.5
  4 -1 1e-3  
`
	ps, err := readParticles(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []particle{
		{[]float64{0, 0}, 0},
		{[]float64{2, 2}, -1.5},
		{[]float64{4, -1}, 1e-3},
	}
	if len(ps) != len(want) {
		t.Fatalf("got %d particles, want %d", len(ps), len(want))
	}
	for i, p := range ps {
		if p.logWeight != want[i].logWeight {
			t.Errorf("particle %d: log weight %v, want %v", i, p.logWeight, want[i].logWeight)
		}
		if len(p.location) != len(want[i].location) {
			t.Errorf("particle %d: location %v, want %v", i, p.location, want[i].location)
			continue
		}
		for j := range p.location {
			if p.location[j] != want[i].location[j] {
				t.Errorf("particle %d: location %v, want %v", i, p.location, want[i].location)
				break
			}
		}
	}
}

func TestReadParticlesErrors(t *testing.T) {
	in := "1 x 0\nfoo\n1 2\n3\n"
	_, err := readParticles(strings.NewReader(in))
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("want *multierror.Error, got %v", err)
	}
	if len(merr.Errors) != 3 {
		t.Errorf("got %d errors, want 3: %v", len(merr.Errors), err)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("error %q does not name line 4", err)
	}
}

func TestBuildPopulation(t *testing.T) {
	ps := []particle{
		{[]float64{0, 0}, 0},
		{[]float64{2, 4}, 0},
	}
	d, err := buildPopulation(ps)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 2 || d.Dim() != 2 {
		t.Fatalf("got %d particles of dimension %d, want 2 of 2", d.Len(), d.Dim())
	}
	mean, err := d.Mean()
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, mean.AtVec(0)) || !aeq(2, mean.AtVec(1)) {
		t.Errorf("mean = %v, want [1 2]", mean.RawVector().Data)
	}

	// Input slices are not aliased.
	ps[1].location[0] = 100
	if got := d.Location(1).AtVec(0); got != 2 {
		t.Errorf("location changed with input slice: %v", got)
	}
}

func TestBuildPopulationErrors(t *testing.T) {
	if _, err := buildPopulation(nil); !errors.Is(err, distribution.ErrEmptyPopulation) {
		t.Errorf("empty input: want ErrEmptyPopulation, got %v", err)
	}

	ps := []particle{
		{[]float64{0, 0}, 0},
		{[]float64{1}, 0},
		{[]float64{1, 2, 3}, 0},
	}
	_, err := buildPopulation(ps)
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("want *multierror.Error, got %v", err)
	}
	if len(merr.Errors) != 2 {
		t.Errorf("got %d errors, want 2: %v", len(merr.Errors), err)
	}
	for _, e := range merr.Errors {
		if !errors.Is(e, distribution.ErrDimensionMismatch) {
			t.Errorf("want ErrDimensionMismatch, got %v", e)
		}
	}
}
