// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// Ext is the file extension of timing files.
	Ext = ".time"

	// TimeoutSentinel marks a run which did not complete.
	TimeoutSentinel = "timeout"

	// Jitter is added to the variable counts of the first configuration
	// of a pair so that markers at equal x do not overlap.
	Jitter = 0.3

	// MaxVars bounds the variable count of a record.
	MaxVars = math.MaxInt32
)

// Type Record is one line of a timing file.
type Record struct {
	Vars    int     // number of variables in the instance
	Runtime float64 // runtime in ms
}

// Type Series holds the plot points of one configuration.
//
// X[i], Y[i] is the point for the i'th record of the timing file.
type Series struct {
	Name     string
	Path     string    // timing file the series was read from
	Offset   float64   // jitter added to each x
	X        []float64 // variable counts plus Offset
	Y        []float64 // runtimes
	Lines    int       // non-empty lines read
	Timeouts int       // lines dropped as timeouts
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.X)
}

// Type DataSet maps configuration names to series.
type DataSet map[string]*Series

// Type Loader reads timing files from a directory.
type Loader struct {
	Dir    string  // directory containing <config>.time files
	Jitter float64 // offset for the first configuration requested
}

// NewLoader creates a loader for dir using the default Jitter.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir, Jitter: Jitter}
}

// LoadSeries loads the timing files for ids from baseDir.  See
// Loader.Load.
func LoadSeries(baseDir string, ids []string) (DataSet, error) {
	return NewLoader(baseDir).Load(ids)
}

// Load reads the timing file of each configuration in ids, in order.
//
// Configurations whose timing file does not exist are skipped and have no
// entry in the result.  The first configuration in ids has l.Jitter added
// to each of its x values, the others are not shifted.  Load fails on the
// first malformed record.
func (l *Loader) Load(ids []string) (DataSet, error) {
	ds := make(DataSet, len(ids))
	shift := l.Jitter
	for _, id := range ids {
		p := SeriesPath(l.Dir, id)
		s, e := readSeries(p, shift)
		shift = 0
		if e != nil {
			if errors.Is(e, fs.ErrNotExist) {
				logrus.WithFields(logrus.Fields{"config": id, "path": p}).Debug("no timing file, skipping")
				continue
			}
			return nil, e
		}
		s.Name = id
		logrus.WithFields(logrus.Fields{
			"config":   id,
			"path":     p,
			"points":   s.Len(),
			"timeouts": s.Timeouts}).Debug("loaded timing file")
		ds[id] = s
	}
	return ds, nil
}

// SeriesPath gives the path of the timing file of config in dir.
func SeriesPath(dir, config string) string {
	return filepath.Join(dir, config+Ext)
}

func readSeries(p string, shift float64) (*Series, error) {
	buf, e := os.ReadFile(p)
	if e != nil {
		if errors.Is(e, fs.ErrNotExist) {
			return nil, e
		}
		return nil, errors.Wrapf(e, "reading timing file %s", p)
	}
	s := &Series{Path: p, Offset: shift}
	for i, ln := range strings.Split(string(buf), "\n") {
		ln = strings.TrimSuffix(ln, "\r")
		if ln == "" {
			continue
		}
		s.Lines++
		if strings.Contains(ln, TimeoutSentinel) {
			s.Timeouts++
			continue
		}
		r, e := ParseRecord(ln)
		if e != nil {
			return nil, &MalformedRecordError{Path: p, LineNo: i + 1, Line: ln, Err: e}
		}
		s.X = append(s.X, float64(r.Vars)+shift)
		s.Y = append(s.Y, r.Runtime)
	}
	return s, nil
}

// ParseRecord parses a "<variables> <runtime>" line.  The variable count
// may be written as a float and is truncated toward zero; it must lie in
// [0, MaxVars].  The runtime must not be negative.  Fields after the
// second are ignored.
func ParseRecord(line string) (Record, error) {
	var r Record
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return r, errors.Errorf("want 2 fields, got %d", len(fields))
	}
	v, e := parseFinite(fields[0])
	if e != nil {
		return r, errors.Wrap(e, "variables")
	}
	if v < 0 || v > MaxVars {
		return r, errors.Errorf("variables %s out of range [0, %d]", fields[0], MaxVars)
	}
	t, e := parseFinite(fields[1])
	if e != nil {
		return r, errors.Wrap(e, "runtime")
	}
	if t < 0 {
		return r, errors.Errorf("negative runtime %s", fields[1])
	}
	r.Vars = int(v)
	r.Runtime = t
	return r, nil
}

func parseFinite(tok string) (float64, error) {
	f, e := strconv.ParseFloat(tok, 64)
	if e != nil {
		return 0, e
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("%q is not a finite number", tok)
	}
	return f, nil
}
