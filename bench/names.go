// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "fmt"

// DatasetTypes are the benchmark families the experiment harness runs.
var DatasetTypes = []string{"Random", "Examples", "Structured"}

// BaseConfigurations are the solver variants the harness runs on each
// benchmark family.
var BaseConfigurations = []string{
	"DPLLBaseline",
	"DPLLWithoutPure",
	"DPLLTseitin",
	"CDCLBaseline",
	"CDCLTseitin",
	"CDCLWithoutLearning"}

// BuildConfigurationNames gives the names "<type>_<base>" for each type in
// types and base in baseNames, ordered by type and then by base.
func BuildConfigurationNames(types, baseNames []string) []string {
	res := make([]string, 0, len(types)*len(baseNames))
	for _, t := range types {
		for _, b := range baseNames {
			res = append(res, fmt.Sprintf("%s_%s", t, b))
		}
	}
	return res
}

// ConfigurationNames gives the configuration names of the harness.
func ConfigurationNames() []string {
	return BuildConfigurationNames(DatasetTypes, BaseConfigurations)
}
