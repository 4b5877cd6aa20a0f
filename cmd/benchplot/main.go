// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"
)

func main() {
	if e := newRootCommand().Execute(); e != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %s\n", e)
		os.Exit(1)
	}
}
