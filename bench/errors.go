// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import "fmt"

// MalformedRecordError is returned when a non-empty, non-timeout line of a
// timing file does not hold two numeric fields.
type MalformedRecordError struct {
	Path   string // timing file
	LineNo int    // 1-based line number in Path
	Line   string // offending line content
	Err    error  // underlying parse error, if any
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: malformed record %q: %s", e.Path, e.LineNo, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: malformed record %q", e.Path, e.LineNo, e.Line)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
