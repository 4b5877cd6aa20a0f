// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/go-air/benchplot/bench"
)

const (
	// DPI is the default resolution of exported charts.
	DPI = 900

	// Width and Height are the default chart dimensions.
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch

	xLabel = "Number of variables in CNF"
	yLabel = "Avg. runtime of 15 runs in [ms]. First 5 dropped."
)

// Type Palette gives the colors of the first and second configuration.
type Palette [2]color.Color

// DefaultPalette is firebrick for the first configuration and teal for the
// second.
var DefaultPalette = Palette{colornames.Firebrick, colornames.Teal}

type options struct {
	dpi     int
	w, h    vg.Length
	palette Palette
}

// Option configures Render.
type Option func(*options)

// WithDPI sets the resolution of the PNG.
func WithDPI(dpi int) Option {
	return func(o *options) { o.dpi = dpi }
}

// WithSize sets the dimensions of the chart.
func WithSize(w, h vg.Length) Option {
	return func(o *options) { o.w, o.h = w, h }
}

// WithPalette sets the series colors.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// OutputName gives the file name of the chart comparing first and second.
func OutputName(first, second string) string {
	return fmt.Sprintf("%s_vs_%s.png", first, second)
}

// Render draws the series first and second of ds on one chart and writes
// it as a PNG to outputPath.
//
// Render returns a *LookupError if either configuration is absent from ds
// and an *EncodingError if the image cannot be written.  The file at
// outputPath is replaced only once the image is completely encoded.
func Render(ds bench.DataSet, first, second, outputPath string, opts ...Option) error {
	o := &options{dpi: DPI, w: Width, h: Height, palette: DefaultPalette}
	for _, opt := range opts {
		opt(o)
	}
	if o.dpi <= 0 {
		return errors.Errorf("invalid dpi %d", o.dpi)
	}
	a, b, e := lookupPair(ds, first, second)
	if e != nil {
		return e
	}
	ch, e := newChart(first, second, a, b, o.palette)
	if e != nil {
		return e
	}
	c := vgimg.NewWith(vgimg.UseWH(o.w, o.h), vgimg.UseDPI(o.dpi))
	ch.plot.Draw(draw.New(c))
	if e := writePNG(outputPath, vgimg.PngCanvas{Canvas: c}); e != nil {
		return &EncodingError{Path: outputPath, Err: e}
	}
	logrus.WithFields(logrus.Fields{"path": outputPath, "dpi": o.dpi}).Debug("wrote chart")
	return nil
}

func lookupPair(ds bench.DataSet, first, second string) (*bench.Series, *bench.Series, error) {
	a, ok := ds[first]
	if !ok {
		return nil, nil, &LookupError{Config: first}
	}
	b, ok := ds[second]
	if !ok {
		return nil, nil, &LookupError{Config: second}
	}
	return a, b, nil
}

// Type chart is a plot together with its series, in the order they were
// added to the plot and its legend.
type chart struct {
	plot   *plot.Plot
	labels [2]string
	series [2]*plotter.Scatter
}

func newChart(first, second string, a, b *bench.Series, pal Palette) (*chart, error) {
	p := plot.New()
	ch := &chart{plot: p, labels: [2]string{first, second}}
	p.Title.Text = fmt.Sprintf("%s vs. %s", first, second)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = true

	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, s := range [2]*bench.Series{a, b} {
		xys := points(ch.labels[i], s)
		for _, xy := range xys {
			ymin = math.Min(ymin, xy.Y)
			ymax = math.Max(ymax, xy.Y)
		}
		sc, e := plotter.NewScatter(xys)
		if e != nil {
			return nil, errors.Wrapf(e, "series %s", ch.labels[i])
		}
		sc.GlyphStyle.Shape = draw.RingGlyph{}
		sc.GlyphStyle.Color = pal[i]
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(ch.labels[i], patch{pal[i]})
		ch.series[i] = sc
	}
	switch {
	case ymin > ymax:
		ymin, ymax = 1, 10
	case ymin == ymax:
		ymin, ymax = ymin/2, ymax*2
	}
	p.Y.Min, p.Y.Max = ymin, ymax
	return ch, nil
}

// points gives the plottable points of s.  Runtimes which are not positive
// have no place on a log axis and are left out.
func points(name string, s *bench.Series) plotter.XYs {
	xys := make(plotter.XYs, 0, s.Len())
	dropped := 0
	for i, x := range s.X {
		y := s.Y[i]
		if y <= 0 {
			dropped++
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	if dropped != 0 {
		logrus.WithFields(logrus.Fields{"config": name, "points": dropped}).Warn("non-positive runtimes left out of log scale chart")
	}
	return xys
}

// patch is a solid color legend thumbnail.
type patch struct {
	color color.Color
}

func (p patch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y}}
	c.FillPolygon(p.color, pts)
}

func writePNG(p string, png vgimg.PngCanvas) error {
	f, e := os.CreateTemp(filepath.Dir(p), ".benchplot-*.png")
	if e != nil {
		return e
	}
	tmp := f.Name()
	if e := f.Chmod(0644); e != nil {
		f.Close()
		os.Remove(tmp)
		return e
	}
	if _, e := png.WriteTo(f); e != nil {
		f.Close()
		os.Remove(tmp)
		return e
	}
	if e := f.Close(); e != nil {
		os.Remove(tmp)
		return e
	}
	if e := os.Rename(tmp, p); e != nil {
		os.Remove(tmp)
		return e
	}
	return nil
}
