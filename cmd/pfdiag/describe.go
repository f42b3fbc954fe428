// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the moments and diagnostics of a population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ps, err := opts.load(cmd)
			if err != nil {
				return err
			}
			d, err := buildPopulation(ps)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), d)
		},
	}
}
