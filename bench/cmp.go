// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Summary produces a summary of the configurations ids in ds, one row per
// configuration in the order of ids.  Configurations without a timing
// file are listed as missing.
func Summary(ds DataSet, ids []string) string {
	hdr := `
-------------------------------------------------------------------------------------------------
| Config                       | points   | timeouts | lines    | file                            |
-------------------------------------------------------------------------------------------------`
	rSum := `| %-28s | %-8d | %-8d | %-8d | %-31s |
-------------------------------------------------------------------------------------------------`
	rMiss := `| %-28s | %-8s | %-8s | %-8s | %-31s |
-------------------------------------------------------------------------------------------------`
	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, hdr)
	for _, id := range ids {
		nm := rtrunc(id, 28)
		s, ok := ds[id]
		if !ok {
			parts = append(parts, fmt.Sprintf(rMiss, nm, "-", "-", "-", "missing"))
			continue
		}
		parts = append(parts, fmt.Sprintf(rSum, nm, s.Len(), s.Timeouts, s.Lines, rtrunc(s.Path, 31)))
	}
	return strings.Join(parts, "\n")
}

// rtrunc keeps the last n runes of s.
func rtrunc(s string, n int) string {
	ct := utf8.RuneCountInString(s)
	j := 0
	for i := range s {
		if j >= ct-n {
			return s[i:]
		}
		j++
	}
	return s
}
