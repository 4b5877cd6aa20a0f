// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/benchplot/bench"
	"github.com/go-air/benchplot/internal/config"
	"github.com/go-air/benchplot/render"
)

type rootOptsT struct {
	Config      string
	Verbose     bool
	DPI         int
	Show        bool
	PreviewSize int
}

func newRootCommand() *cobra.Command {
	opts := &rootOptsT{}
	cmd := &cobra.Command{
		Use:   "benchplot <first> <second>",
		Short: "scatter plot the runtimes of two solver configurations",
		Long: `benchplot reads ../random/<first>.time and ../random/<second>.time and
plots runtime (log scale) over number of variables for both configurations
into ../<first>_vs_<second>.png.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, e := loadConfig(cmd, opts)
			if e != nil {
				return e
			}
			return plotPair(cmd, cfg, args[0], args[1])
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Config, "config", "", "YAML settings file")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	f := cmd.Flags()
	f.IntVar(&opts.DPI, "dpi", render.DPI, "resolution of the PNG, at least 900")
	f.BoolVar(&opts.Show, "show", false, "also print a text preview of the chart")
	f.IntVar(&opts.PreviewSize, "preview-size", config.DefaultPreviewSize, "rows in the text preview")

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newSummaryCommand(opts))
	return cmd
}

// loadConfig layers the flags set on the command line over the settings
// file over the defaults, and sets up logging.
func loadConfig(cmd *cobra.Command, opts *rootOptsT) (*config.Config, error) {
	cfg, e := config.Load(opts.Config)
	if e != nil {
		return nil, e
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = &opts.Verbose
	}
	if flags.Changed("dpi") {
		cfg.DPI = opts.DPI
	}
	if flags.Changed("show") {
		cfg.Preview = &opts.Show
	}
	if flags.Changed("preview-size") {
		cfg.PreviewSize = opts.PreviewSize
	}
	if e := cfg.Validate(); e != nil {
		return nil, e
	}

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.IsVerbose() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return cfg, nil
}

func plotPair(cmd *cobra.Command, cfg *config.Config, first, second string) error {
	ds, e := bench.NewLoader(config.DataDir).Load([]string{first, second})
	if e != nil {
		return e
	}
	out := filepath.Join(config.OutputDir, render.OutputName(first, second))
	if e := render.Render(ds, first, second, out, render.WithDPI(cfg.DPI)); e != nil {
		return e
	}
	logrus.WithField("path", out).Info("wrote chart")
	if !cfg.ShowPreview() {
		return nil
	}
	s, e := render.Preview(ds, first, second, cfg.PreviewSize)
	if e != nil {
		return e
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s vs. %s\n%s", first, second, s)
	return nil
}
