// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package render_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/benchplot/bench"
	"github.com/go-air/benchplot/render"
)

func pair() bench.DataSet {
	return bench.DataSet{
		"A": &bench.Series{Name: "A", X: []float64{10.3, 20.3, 40.3}, Y: []float64{5.2, 7.8, 9.1}},
		"B": &bench.Series{Name: "B", X: []float64{10, 20, 30}, Y: []float64{1.5, 70, 900}}}
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "Random_CDCLBaseline_vs_Random_DPLLBaseline.png",
		render.OutputName("Random_CDCLBaseline", "Random_DPLLBaseline"))
}

func TestRenderWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), render.OutputName("A", "B"))
	require.NoError(t, render.Render(pair(), "A", "B", out, render.WithDPI(30)))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.InDelta(t, 6.4*30, cfg.Width, 1)
	assert.InDelta(t, 4.8*30, cfg.Height, 1)
}

func TestRenderDPIScales(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "small.png")
	require.NoError(t, render.Render(pair(), "A", "B", out, render.WithDPI(20), render.WithSize(2*72, 72)))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.InDelta(t, 40, cfg.Width, 1)
	assert.InDelta(t, 20, cfg.Height, 1)
}

func TestRenderLookupFailure(t *testing.T) {
	ds := pair()
	delete(ds, "B")
	out := filepath.Join(t.TempDir(), "x.png")

	err := render.Render(ds, "A", "B", out, render.WithDPI(30))
	var le *render.LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "B", le.Config)
	assert.Contains(t, err.Error(), `"B"`)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))

	err = render.Render(ds, "C", "A", out, render.WithDPI(30))
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "C", le.Config)
}

func TestRenderMissingFileEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(bench.SeriesPath(dir, "A"), []byte("1 1\n"), 0644))
	ds, err := bench.LoadSeries(dir, []string{"A", "B"})
	require.NoError(t, err)
	require.Len(t, ds, 1)

	err = render.Render(ds, "A", "B", filepath.Join(dir, "out.png"), render.WithDPI(30))
	var le *render.LookupError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "B", le.Config)
}

func TestRenderEncodingFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "no", "such", "dir", "x.png")
	err := render.Render(pair(), "A", "B", out, render.WithDPI(30))
	var ee *render.EncodingError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, out, ee.Path)
	assert.Contains(t, err.Error(), out)
}

func TestRenderNoPartialFiles(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "x.png")
	require.NoError(t, render.Render(pair(), "A", "B", out, render.WithDPI(30)))
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, "x.png", ents[0].Name())
}

func TestRenderDegenerateSeries(t *testing.T) {
	ds := bench.DataSet{
		"A": &bench.Series{X: []float64{1.3}, Y: []float64{0.5}},
		"B": &bench.Series{X: []float64{1, 2}, Y: []float64{0, 0.5}}}
	out := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, render.Render(ds, "A", "B", out, render.WithDPI(20)))

	empty := bench.DataSet{"A": &bench.Series{}, "B": &bench.Series{}}
	require.NoError(t, render.Render(empty, "A", "B", out, render.WithDPI(20)))
}

func TestRenderBadDPI(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	assert.Error(t, render.Render(pair(), "A", "B", out, render.WithDPI(0)))
}

func TestRenderCustomPalette(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	pal := render.Palette{color.Black, color.Gray{Y: 128}}
	require.NoError(t, render.Render(pair(), "A", "B", out, render.WithDPI(20), render.WithPalette(pal)))
}
