// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-air/benchplot/bench"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the configuration names of the experiment harness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, nm := range bench.ConfigurationNames() {
				fmt.Fprintln(cmd.OutOrStdout(), nm)
			}
			return nil
		},
	}
}
