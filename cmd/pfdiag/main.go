// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// pfdiag reads a weighted particle population and describes its
// distribution: moments, entropy, degeneracy, and, on request, the
// outcome of resampling it.
//
// Each input line holds one particle: its coordinates followed by its
// unnormalized log weight, separated by white space. Blank lines and
// lines starting with # are ignored.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	log.Out = os.Stderr
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
