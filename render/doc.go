// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package render draws two configurations of a bench.DataSet against each
// other: a PNG scatter plot of runtime (log scale) over number of
// variables, and a utf8 preview of the same for terminals.
//
// Both are positional: the first configuration gets the first palette
// color and the first legend entry, the second gets the second.
package render
