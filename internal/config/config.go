// Package config provides YAML-based configuration loading and presets for
// the bounce arena.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// BounceConfig contains all configuration for a bounce run.
type BounceConfig struct {
	Population PopulationConfig `yaml:"population"`
	Shapes     ShapesConfig     `yaml:"shapes"`
	Motion     MotionConfig     `yaml:"motion"`
	Rules      RulesConfig      `yaml:"rules"`
	Timing     TimingConfig     `yaml:"timing"`
	Arena      ArenaConfig      `yaml:"arena"`
}

// PopulationConfig defines how many shapes of each kind start in the arena.
type PopulationConfig struct {
	Circles int `yaml:"circles"`
	Rects   int `yaml:"rects"`
}

// ShapesConfig defines the fixed shape dimensions and starting color.
type ShapesConfig struct {
	CircleRadius float64 `yaml:"circle_radius"`
	RectWidth    float64 `yaml:"rect_width"`
	RectHeight   float64 `yaml:"rect_height"`
	DefaultColor string  `yaml:"default_color"` // "#rrggbb"
}

// MotionConfig defines initial velocities.
type MotionConfig struct {
	MaxSpeed float64 `yaml:"max_speed"` // Per axis, in arena units per tick
}

// RulesConfig defines the collision rules.
type RulesConfig struct {
	RemoveAfter int `yaml:"remove_after"` // Collisions before a shape is removed
}

// TimingConfig defines the fixed tick and the requested render rate.
type TimingConfig struct {
	TickLengthMS float64 `yaml:"tick_length_ms"`
	FrameRate    int     `yaml:"frame_rate"`
}

// ArenaConfig maps terminal cells to arena units.
type ArenaConfig struct {
	PixelsPerCol float64 `yaml:"pixels_per_col"`
	PixelsPerRow float64 `yaml:"pixels_per_row"`
}

// ShapeColor returns the parsed starting color.
func (c BounceConfig) ShapeColor() (core.RGB, error) {
	if c.Shapes.DefaultColor == "" {
		return core.DefaultShapeColor, nil
	}
	return core.ParseHex(c.Shapes.DefaultColor)
}

// ArenaSize returns the arena dimensions for a screen of cols x rows cells.
func (c BounceConfig) ArenaSize(cols, rows int) (float64, float64) {
	return float64(cols) * c.Arena.PixelsPerCol, float64(rows) * c.Arena.PixelsPerRow
}

// Validate checks that the configuration describes a runnable arena.
func (c BounceConfig) Validate() error {
	var errs []error

	if c.Population.Circles < 0 {
		errs = append(errs, fmt.Errorf("population.circles must not be negative, got %d", c.Population.Circles))
	}
	if c.Population.Rects < 0 {
		errs = append(errs, fmt.Errorf("population.rects must not be negative, got %d", c.Population.Rects))
	}
	if !(c.Shapes.CircleRadius > 0) {
		errs = append(errs, fmt.Errorf("shapes.circle_radius must be positive, got %v", c.Shapes.CircleRadius))
	}
	if !(c.Shapes.RectWidth > 0) || !(c.Shapes.RectHeight > 0) {
		errs = append(errs, fmt.Errorf("shapes.rect_width and rect_height must be positive, got %vx%v",
			c.Shapes.RectWidth, c.Shapes.RectHeight))
	}
	if _, err := c.ShapeColor(); err != nil {
		errs = append(errs, fmt.Errorf("shapes.default_color: %w", err))
	}
	if c.Motion.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("motion.max_speed must not be negative, got %v", c.Motion.MaxSpeed))
	}
	if c.Rules.RemoveAfter <= 0 {
		errs = append(errs, fmt.Errorf("rules.remove_after must be positive, got %d", c.Rules.RemoveAfter))
	}
	if !(c.Timing.TickLengthMS > 0) {
		errs = append(errs, fmt.Errorf("timing.tick_length_ms must be positive, got %v", c.Timing.TickLengthMS))
	}
	if c.Timing.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if !(c.Arena.PixelsPerCol > 0) || !(c.Arena.PixelsPerRow > 0) {
		errs = append(errs, fmt.Errorf("arena.pixels_per_col and pixels_per_row must be positive, got %vx%v",
			c.Arena.PixelsPerCol, c.Arena.PixelsPerRow))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
