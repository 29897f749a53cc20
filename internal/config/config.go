// Package config provides YAML-based configuration loading for the
// game's display and layout tunables. Values out of range are silently
// clamped to sane bounds rather than rejected.
package config

import (
	"time"

	"github.com/mkarpushin/tile2048/internal/layout"
	"github.com/mkarpushin/tile2048/internal/render"
)

// headerRows is the fixed header region height: title, score and
// status, controls, separator.
const headerRows = 4

// Config contains all runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// DisplayConfig defines the cosmetic rendering options.
type DisplayConfig struct {
	// Background toggles colored tile backgrounds.
	Background bool `yaml:"background"`
	// HeaderBackground toggles the header background bar.
	HeaderBackground bool `yaml:"header_background"`
	// RowDelay is an optional pause per painted cell row, in seconds.
	RowDelay float64 `yaml:"row_delay"`
}

// LayoutConfig defines the geometry tunables fed to the layout solver.
type LayoutConfig struct {
	// WidthPct is the percentage of the terminal width reserved for
	// the board.
	WidthPct int `yaml:"width_pct"`
	// Aspect is the desired cell-height-to-width ratio.
	Aspect float64 `yaml:"aspect"`
	// Padding is the outer padding around the board, in cells.
	Padding int `yaml:"padding"`
	// Gap is the spacing between adjacent cells, in cells.
	Gap int `yaml:"gap"`
}

// Clamp bounds for the tunables.
const (
	minWidthPct = 10
	maxWidthPct = 100
	minAspect   = 0.1
	maxAspect   = 2.0
	maxPadding  = 10
	maxGap      = 10
	maxRowDelay = 1.0
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			Background:       true,
			HeaderBackground: true,
			RowDelay:         0,
		},
		Layout: LayoutConfig{
			WidthPct: 60,
			Aspect:   0.4,
			Padding:  1,
			Gap:      1,
		},
	}
}

// Clamp silently pulls out-of-range values back into their bounds.
func (c *Config) Clamp() {
	c.Layout.WidthPct = clampInt(c.Layout.WidthPct, minWidthPct, maxWidthPct)
	c.Layout.Aspect = clampFloat(c.Layout.Aspect, minAspect, maxAspect)
	c.Layout.Padding = clampInt(c.Layout.Padding, 0, maxPadding)
	c.Layout.Gap = clampInt(c.Layout.Gap, 0, maxGap)
	c.Display.RowDelay = clampFloat(c.Display.RowDelay, 0, maxRowDelay)
}

// Tunables converts the layout section into solver inputs.
func (c Config) Tunables() layout.Tunables {
	return layout.Tunables{
		WidthPct:   c.Layout.WidthPct,
		Aspect:     c.Layout.Aspect,
		Padding:    c.Layout.Padding,
		Gap:        c.Layout.Gap,
		HeaderRows: headerRows,
	}
}

// RenderOptions converts the display section into renderer options.
func (c Config) RenderOptions() render.Options {
	return render.Options{
		Background:       c.Display.Background,
		HeaderBackground: c.Display.HeaderBackground,
		RowDelay:         time.Duration(c.Display.RowDelay * float64(time.Second)),
	}
}

// clampInt restricts a value to be within [min, max].
func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// clampFloat restricts a float64 value to be within [min, max].
func clampFloat(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
