// seehuhn.de/go/sketch - a freehand drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the drawing hosts.
//
// Settings are stored in TOML:
//
//	[canvas]
//	width = 800
//	height = 600
//	background = "#ffffff"
//
//	[brush]
//	color = "#000000"
//	width = 5
//	min_width = 1
//	max_width = 100
//	indicator_outline = 1
//
//	[log]
//	level = "info"
//
// Missing keys keep their [Default] values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/sketch"
)

// Config holds the settings of a drawing host.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Brush  Brush  `toml:"brush"`
	Log    Log    `toml:"log"`
}

// Canvas describes the drawing area.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// Brush holds the initial brush and the range of the width control.
type Brush struct {
	Color            string  `toml:"color"`
	Width            float64 `toml:"width"`
	MinWidth         float64 `toml:"min_width"`
	MaxWidth         float64 `toml:"max_width"`
	IndicatorOutline float64 `toml:"indicator_outline"`
}

// Log configures diagnostic output.
type Log struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Canvas: Canvas{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
		},
		Brush: Brush{
			Color:            "#000000",
			Width:            sketch.DefaultWidth,
			MinWidth:         sketch.DefaultMinWidth,
			MaxWidth:         sketch.DefaultMaxWidth,
			IndicatorOutline: sketch.DefaultOutline,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML settings on top of the defaults and validates the
// result.  Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the settings for consistency.  All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %dx%d is not positive",
			c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := sketch.ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas background: %w", err))
	}
	if _, err := sketch.ParseColor(c.Brush.Color); err != nil {
		errs = append(errs, fmt.Errorf("brush color: %w", err))
	}
	b := c.Brush
	for _, f := range []struct {
		key string
		val float64
	}{
		{"width", b.Width},
		{"min_width", b.MinWidth},
		{"max_width", b.MaxWidth},
		{"indicator_outline", b.IndicatorOutline},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			errs = append(errs, fmt.Errorf("brush %s %g is not finite", f.key, f.val))
		}
	}
	switch {
	case math.IsNaN(b.MinWidth) || math.IsNaN(b.MaxWidth) || math.IsNaN(b.Width):
		// reported above
	case b.MinWidth <= 0:
		errs = append(errs, fmt.Errorf("brush min_width %g is not positive", b.MinWidth))
	case b.MaxWidth < b.MinWidth:
		errs = append(errs, fmt.Errorf("brush width range %g..%g is empty", b.MinWidth, b.MaxWidth))
	case b.Width < b.MinWidth || b.Width > b.MaxWidth:
		errs = append(errs, fmt.Errorf("brush width %g outside %g..%g", b.Width, b.MinWidth, b.MaxWidth))
	}
	if b.IndicatorOutline <= 0 {
		errs = append(errs, fmt.Errorf("brush indicator_outline %g is not positive", b.IndicatorOutline))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// RouterOptions converts the brush settings into options for
// [sketch.NewRouter].
func (c *Config) RouterOptions() ([]sketch.Option, error) {
	fg, err := sketch.ParseColor(c.Brush.Color)
	if err != nil {
		return nil, err
	}
	bg, err := sketch.ParseColor(c.Canvas.Background)
	if err != nil {
		return nil, err
	}
	return []sketch.Option{
		sketch.WithColor(fg),
		sketch.WithBackground(bg),
		sketch.WithWidthRange(c.Brush.MinWidth, c.Brush.MaxWidth),
		sketch.WithWidth(c.Brush.Width),
		sketch.WithIndicatorOutline(c.Brush.IndicatorOutline),
	}, nil
}

// SlogLevel returns the configured log level.  Invalid levels map to
// [slog.LevelInfo].
func (c *Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
