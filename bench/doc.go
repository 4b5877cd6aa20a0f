// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench loads solver benchmark timings for comparison plots.
//
// A timing file holds the results of one solver configuration on a
// benchmark family, one record per line:
//
//	<variables> <runtime in ms>
//
// Lines containing the word "timeout" mark runs which did not finish and
// are dropped.  The file for configuration c lives at <dir>/c.time.
//
// Package bench addresses the needs of comparing configurations by:
//
// 1. naming configurations as dataset type × base configuration.
//
// 2. loading the timing files of an ordered pair of configurations into a
// DataSet of plot ready series.
//
// 3. providing a text summary of what was loaded.
package bench
