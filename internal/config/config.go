// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads the YAML configuration of the gasket binaries.
//
// Every field is optional; a missing file section keeps the value from
// Default. Unknown keys are rejected so typos do not go unnoticed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gasket/draw"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// AdvanceKeys lists the key names accepted by window.advance_key.
var AdvanceKeys = []string{"space", "enter", "n", "right", "tab"}

// Config is the root of the configuration file.
type Config struct {
	Canvas     int     `yaml:"canvas"`
	Split      float64 `yaml:"split"`
	Tolerance  float64 `yaml:"tolerance"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxCircles int     `yaml:"max_circles"`
	Steps      int     `yaml:"steps"`
	Style      Style   `yaml:"style"`
	Window     Window  `yaml:"window"`
}

// Style mirrors draw.Style with colours as hex strings.
type Style struct {
	Background     string  `yaml:"background"`
	Stroke         string  `yaml:"stroke"`
	Fill           string  `yaml:"fill"`
	LineWidth      float64 `yaml:"line_width"`
	Labels         bool    `yaml:"labels"`
	LabelMinRadius float64 `yaml:"label_min_radius"`
	FontSize       float64 `yaml:"font_size"`
}

// Window configures the interactive viewer.
type Window struct {
	Title      string `yaml:"title"`
	TPS        int    `yaml:"tps"`
	AdvanceKey string `yaml:"advance_key"`
}

// Default returns the built-in configuration: a 960 pixel canvas with the
// classic seed and default tolerances.
func Default() Config {
	return Config{
		Canvas:    960,
		Split:     0.5,
		Tolerance: gasket.DefaultToleranceRatio,
		MinRadius: gasket.DefaultMinRadiusRatio,
		Steps:     6,
		Style: Style{
			Background:     "#ffffff",
			Stroke:         "#000000",
			Fill:           "#00000000",
			LineWidth:      1,
			LabelMinRadius: 12,
			FontSize:       12,
		},
		Window: Window{
			Title:      "Apollonian Gasket",
			TPS:        60,
			AdvanceKey: "space",
		},
	}
}

// Load reads and validates the file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas > 0, "canvas must be positive, got %d", c.Canvas)
	check(c.Split > 0 && c.Split < 1, "split must be in (0, 1), got %v", c.Split)
	check(c.Tolerance > 0 && finite(c.Tolerance), "tolerance must be positive and finite, got %v", c.Tolerance)
	check(c.MinRadius > 0 && finite(c.MinRadius), "min_radius must be positive and finite, got %v", c.MinRadius)
	check(c.MaxCircles >= 0, "max_circles must not be negative, got %d", c.MaxCircles)
	check(c.Steps >= 0, "steps must not be negative, got %d", c.Steps)
	check(c.Style.LineWidth >= 0 && finite(c.Style.LineWidth), "style.line_width must be finite and not negative, got %v", c.Style.LineWidth)
	check(c.Style.LabelMinRadius >= 0 && finite(c.Style.LabelMinRadius), "style.label_min_radius must be finite and not negative, got %v", c.Style.LabelMinRadius)
	check(c.Style.FontSize > 0 && finite(c.Style.FontSize), "style.font_size must be positive and finite, got %v", c.Style.FontSize)
	check(c.Window.TPS > 0, "window.tps must be positive, got %d", c.Window.TPS)
	check(slices.Contains(AdvanceKeys, c.Window.AdvanceKey),
		"window.advance_key %q is not one of %v", c.Window.AdvanceKey, AdvanceKeys)

	colors := []struct{ name, value string }{
		{"style.background", c.Style.Background},
		{"style.stroke", c.Style.Stroke},
		{"style.fill", c.Style.Fill},
	}
	for _, col := range colors {
		if _, err := draw.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.name, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Seed returns the canvas seed for the configured size and split.
func (c Config) Seed() (gasket.Triplet, error) {
	half := float64(c.Canvas) / 2
	return gasket.NewSeed(gasket.Pt(half, half), half, c.Split)
}

// PackingOptions converts the tolerances and cap into gasket options.
func (c Config) PackingOptions() []gasket.Option {
	return []gasket.Option{
		gasket.WithToleranceRatio(c.Tolerance),
		gasket.WithMinRadiusRatio(c.MinRadius),
		gasket.WithMaxCircles(c.MaxCircles),
	}
}

// NewPacking creates a packing from the configured seed and options.
func (c Config) NewPacking(opts ...gasket.Option) (*gasket.Packing, error) {
	seed, err := c.Seed()
	if err != nil {
		return nil, err
	}
	return gasket.New(seed, append(c.PackingOptions(), opts...)...)
}

// DrawStyle converts the style section. Colours are assumed valid, which
// Validate guarantees for configs returned by Load and Parse.
func (c Config) DrawStyle() draw.Style {
	s := draw.DefaultStyle()
	s.Background, _ = draw.ParseColor(c.Style.Background)
	s.Stroke, _ = draw.ParseColor(c.Style.Stroke)
	s.Fill, _ = draw.ParseColor(c.Style.Fill)
	s.LabelColor = s.Stroke
	s.LineWidth = c.Style.LineWidth
	s.Labels = c.Style.Labels
	s.LabelMinRadius = c.Style.LabelMinRadius
	s.FontSize = c.Style.FontSize
	return s
}
