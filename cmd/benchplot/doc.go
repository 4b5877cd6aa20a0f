// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command benchplot plots solver configuration runtimes against each other.
//
//	⎣ ⇨ benchplot -h
//	benchplot reads ../random/<first>.time and ../random/<second>.time and
//	plots runtime (log scale) over number of variables for both configurations
//	into ../<first>_vs_<second>.png.
//
//	Usage:
//	  benchplot <first> <second> [flags]
//	  benchplot [command]
//
//	Available Commands:
//	  list        list the configuration names of the experiment harness
//	  summary     show what would be plotted for two configurations
//
//	Flags:
//	      --config string       YAML settings file
//	      --dpi int             resolution of the PNG, at least 900 (default 900)
//	      --preview-size int    rows in the text preview (default 40)
//	      --show                also print a text preview of the chart
//	  -v, --verbose             debug logging
//
// A settings file may set any of
//
//	dpi: 900
//	preview: false
//	preview_size: 40
//	verbose: false
//
// Flags given on the command line take precedence over the settings file.
// The input and output directories and the 0.3 offset of the first
// configuration are fixed.
package main
