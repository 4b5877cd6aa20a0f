// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import "fmt"

// LookupError is returned when a configuration to draw has no series in
// the data set, usually because its timing file was missing.
type LookupError struct {
	Config string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no timing data for configuration %q", e.Config)
}

// EncodingError is returned when the chart cannot be written to Path.
type EncodingError struct {
	Path string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("writing chart %s: %s", e.Path, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
