package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Plot       PlotConfig       `yaml:"plot"`
	Window     WindowConfig     `yaml:"window"`
	Reduction  ReductionConfig  `yaml:"reduction"`
	Decimation DecimationConfig `yaml:"decimation"`
	Workers    int              `yaml:"workers"` // Concurrent trace reductions (0 = one per CPU)
}

// PlotConfig describes the device-space drawing area.
type PlotConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
}

// WindowConfig selects the visible model-space window.
type WindowConfig struct {
	Auto   bool    `yaml:"auto"`   // Fit the window to the data
	Margin float64 `yaml:"margin"` // Fraction of the data span added around auto-fitted y values
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`
}

// ReductionConfig controls point elision.
type ReductionConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Tolerance float64 `yaml:"tolerance"` // Device units
}

// DecimationConfig controls the optional stride decimation pre-pass.
type DecimationConfig struct {
	MaxPoints int `yaml:"max_points"` // 0 = disabled
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Plot: PlotConfig{
			Width:        1200,
			Height:       800,
			MarginLeft:   60,
			MarginRight:  20,
			MarginTop:    20,
			MarginBottom: 40,
		},
		Window: WindowConfig{
			Auto:   true,
			Margin: 0.1,
		},
		Reduction: ReductionConfig{
			Enabled:   true,
			Tolerance: 0.001, // Well below one pixel
		},
		Decimation: DecimationConfig{
			MaxPoints: 0,
		},
		Workers: 0,
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults, and fields absent from the file keep their default values.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a YAML configuration from r on top of the defaults.
// Unknown keys are rejected so a misspelled setting is not silently ignored.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close config file: %w", cerr)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

// ensureDefaults ensures that all required fields have default values if missing.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Plot.Width <= 0 {
		c.Plot.Width = def.Plot.Width
	}
	if c.Plot.Height <= 0 {
		c.Plot.Height = def.Plot.Height
	}

	if !c.Window.Auto && c.Window.XMin == c.Window.XMax {
		// A fixed window needs an x-range; fall back to fitting the data.
		c.Window.Auto = true
	}
	if c.Window.Margin < 0 {
		c.Window.Margin = def.Window.Margin
	}

	if c.Reduction.Tolerance < 0 {
		c.Reduction.Tolerance = def.Reduction.Tolerance
	}

	if c.Decimation.MaxPoints < 0 {
		c.Decimation.MaxPoints = def.Decimation.MaxPoints
	}
	if c.Workers < 0 {
		c.Workers = def.Workers
	}
}
