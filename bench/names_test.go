// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-air/benchplot/bench"
)

func TestBuildConfigurationNames(t *testing.T) {
	got := bench.BuildConfigurationNames([]string{"Random", "Examples"}, []string{"A", "B", "C"})
	assert.Equal(t, []string{
		"Random_A", "Random_B", "Random_C",
		"Examples_A", "Examples_B", "Examples_C"}, got)

	assert.Empty(t, bench.BuildConfigurationNames(nil, []string{"A"}))
}

func TestConfigurationNamesStable(t *testing.T) {
	a := bench.ConfigurationNames()
	b := bench.ConfigurationNames()
	assert.Len(t, a, len(bench.DatasetTypes)*len(bench.BaseConfigurations))
	assert.Equal(t, a, b)
	assert.Equal(t, "Random_DPLLBaseline", a[0])
	assert.Contains(t, a, "Random_CDCLBaseline")
	assert.Equal(t, "Structured_CDCLWithoutLearning", a[len(a)-1])
}
