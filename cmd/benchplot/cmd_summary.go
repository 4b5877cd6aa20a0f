// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-air/benchplot/bench"
	"github.com/go-air/benchplot/internal/config"
)

func newSummaryCommand(opts *rootOptsT) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <first> <second>",
		Short: "show what would be plotted for two configurations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, e := loadConfig(cmd, opts); e != nil {
				return e
			}
			ds, e := bench.NewLoader(config.DataDir).Load(args)
			if e != nil {
				return e
			}
			fmt.Fprintln(cmd.OutOrStdout(), bench.Summary(ds, args))
			return nil
		},
	}
}
