// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/benchplot/bench"
)

func TestSummary(t *testing.T) {
	dir := t.TempDir()
	writeTiming(t, dir, "Random_CDCLBaseline", "1 1", "2 timeout", "3 3")

	ids := []string{"Random_CDCLBaseline", "Random_DPLLBaseline"}
	ds, err := bench.LoadSeries(dir, ids)
	require.NoError(t, err)

	sum := bench.Summary(ds, ids)
	lines := strings.Split(sum, "\n")
	var cdcl, dpll string
	for _, ln := range lines {
		switch {
		case strings.Contains(ln, "Random_CDCLBaseline"):
			cdcl = ln
		case strings.Contains(ln, "Random_DPLLBaseline"):
			dpll = ln
		}
	}
	require.NotEmpty(t, cdcl)
	require.NotEmpty(t, dpll)
	assert.Regexp(t, `\|\s+2\s+\|\s+1\s+\|\s+3\s+\|`, cdcl)
	assert.Contains(t, dpll, "missing")
	assert.Less(t, strings.Index(sum, "CDCL"), strings.Index(sum, "DPLL"))
}
