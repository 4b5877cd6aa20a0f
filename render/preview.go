// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-air/benchplot/bench"
)

// Preview returns a utf8 scatter plot of first and second in ds with 2n
// columns and n rows, making up for the width/height ratio of most
// monospaced fonts.  Rows are runtimes on a log scale, columns are
// numbers of variables.
//
// Points of first are drawn as ★, points of second as ☆.  Where both
// fall in the same cell, second is shown.
func Preview(ds bench.DataSet, first, second string, n int) (string, error) {
	a, b, e := lookupPair(ds, first, second)
	if e != nil {
		return "", e
	}
	if n < 2 {
		n = 2
	}
	M := n*(2*n+1) - 1
	buf := make([]byte, M)
	for i := range buf {
		buf[i] = byte(' ')
	}
	for i := 2 * n; i < M; i += 2*n + 1 {
		buf[i] = byte('\n')
	}
	var idx = func(x, y int) int {
		return (n-1)*(2*n+1) - (y * (2*n + 1)) + 2*x
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, s := range []*bench.Series{a, b} {
		for i, x := range s.X {
			if s.Y[i] <= 0 {
				continue
			}
			ly := math.Log10(s.Y[i])
			xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
			yMin, yMax = math.Min(yMin, ly), math.Max(yMax, ly)
		}
	}
	var cell = func(v, lo, hi float64) int {
		if hi <= lo {
			return 0
		}
		return int((v - lo) / (hi - lo) * float64(n-1))
	}
	for k, s := range []*bench.Series{a, b} {
		tick := byte('+')
		if k == 1 {
			tick = byte('-')
		}
		for i, x := range s.X {
			if s.Y[i] <= 0 {
				continue
			}
			buf[idx(cell(x, xMin, xMax), cell(math.Log10(s.Y[i]), yMin, yMax))] = tick
		}
	}
	res := strings.Replace(string(buf), "+", "★", -1)
	res = strings.Replace(res, "-", "☆", -1)

	top, bot := "-", "-"
	if yMin <= yMax {
		top = fmt.Sprintf("%.2fms", math.Pow(10, yMax))
		bot = fmt.Sprintf("%.2fms", math.Pow(10, yMin))
	}
	w := len(top)
	if len(bot) > w {
		w = len(bot)
	}
	pad := strings.Repeat(" ", w)
	lines := strings.Split(res, "\n")
	for i, ln := range lines {
		lbl := pad
		switch i {
		case 0:
			lbl = fmt.Sprintf("%*s", w, top)
		case len(lines) - 1:
			lbl = fmt.Sprintf("%*s", w, bot)
		}
		lines[i] = fmt.Sprintf("%s|%s", lbl, ln)
	}
	lines = append(lines, fmt.Sprintf("%s %s", pad, strings.Repeat("-", 2*n)))
	if xMin <= xMax {
		lo := fmt.Sprintf("%.0f", xMin)
		lines = append(lines, fmt.Sprintf("%s %s%*.0f", pad, lo, 2*n-len(lo), xMax))
	}
	legend := fmt.Sprintf("\t%s - %s\n\t%s - %s\n", "★", first, "☆", second)
	return fmt.Sprintf("%s\n%s", strings.Join(lines, "\n"), legend), nil
}
