// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the settings of the benchplot command.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-air/benchplot/render"
)

// Timing files are read from DataDir and charts written to OutputDir, both
// relative to the working directory.
const (
	DataDir   = "../random"
	OutputDir = ".."
)

// DefaultPreviewSize is the number of rows of the text preview.
const DefaultPreviewSize = 40

// Type Config gives the settings of one benchplot invocation.  Paths and
// the jitter of the first configuration are fixed and not part of it.
type Config struct {
	DPI         int   `yaml:"dpi,omitempty"`
	Preview     *bool `yaml:"preview,omitempty"`
	PreviewSize int   `yaml:"preview_size,omitempty"`
	Verbose     *bool `yaml:"verbose,omitempty"`
}

// New returns a Config with all defaults set.
func New() *Config {
	return &Config{
		DPI:         render.DPI,
		Preview:     boolPtr(false),
		PreviewSize: DefaultPreviewSize,
		Verbose:     boolPtr(false)}
}

// Load reads the YAML file at path over the defaults.  An empty path gives
// the defaults.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	data, e := os.ReadFile(path)
	if e != nil {
		return nil, errors.Wrapf(e, "reading config %s", path)
	}
	var fileCfg Config
	if e := yaml.Unmarshal(data, &fileCfg); e != nil {
		return nil, errors.Wrapf(e, "parsing config %s", path)
	}
	merge(cfg, &fileCfg)
	if e := cfg.Validate(); e != nil {
		return nil, errors.Wrapf(e, "config %s", path)
	}
	return cfg, nil
}

// Validate checks that c can drive a run.
func (c *Config) Validate() error {
	if c.DPI < render.DPI {
		return errors.Errorf("dpi must be at least %d, got %d", render.DPI, c.DPI)
	}
	if c.PreviewSize < 2 {
		return errors.Errorf("preview_size must be at least 2, got %d", c.PreviewSize)
	}
	return nil
}

// ShowPreview reports whether the text preview is printed.
func (c *Config) ShowPreview() bool {
	return c.Preview != nil && *c.Preview
}

// IsVerbose reports whether debug logging is on.
func (c *Config) IsVerbose() bool {
	return c.Verbose != nil && *c.Verbose
}

// merge overlays the values set in src onto dst.
func merge(dst, src *Config) {
	if src.DPI != 0 {
		dst.DPI = src.DPI
	}
	if src.Preview != nil {
		dst.Preview = src.Preview
	}
	if src.PreviewSize != 0 {
		dst.PreviewSize = src.PreviewSize
	}
	if src.Verbose != nil {
		dst.Verbose = src.Verbose
	}
}

func boolPtr(b bool) *bool {
	return &b
}
