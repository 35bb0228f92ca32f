package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Canvas size used when neither the config file nor the flags set one.
const (
	DefaultWidth  = 600
	DefaultHeight = 400
)

// Config holds the render settings shared by single and batch runs.
type Config struct {
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Format  string `json:"format" yaml:"format"`
	Scale   int    `json:"scale" yaml:"scale"`
	Workers int    `json:"workers" yaml:"workers"`

	// OutputDir is where batch runs write images and the manifest.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Load reads a config file. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON. Fields not set in the file keep their zero
// values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values mean "not given".
type Flags struct {
	Width     int
	Height    int
	Format    string
	Scale     int
	Workers   int
	OutputDir string
}

// Resolve applies flags over the file values, then fills in defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// ParseSize reads a width or height given on the command line.
// Anything that is not a positive integer yields 0, which Resolve replaces
// with the default.
func ParseSize(s string) int {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 31)
	if err != nil || n == 0 {
		return 0
	}
	return int(n)
}
