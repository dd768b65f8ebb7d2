package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// DefaultBounceConfig returns the default configuration: 100 circles of
// radius 20 and 100 30x30 rectangles, velocities within ±3 per axis,
// removal after 3 collisions and a 15ms tick.
func DefaultBounceConfig() BounceConfig {
	return BounceConfig{
		Population: PopulationConfig{
			Circles: 100,
			Rects:   100,
		},
		Shapes: ShapesConfig{
			CircleRadius: 20,
			RectWidth:    30,
			RectHeight:   30,
			DefaultColor: "#0000FF",
		},
		Motion: MotionConfig{
			MaxSpeed: 3,
		},
		Rules: RulesConfig{
			RemoveAfter: 3,
		},
		Timing: TimingConfig{
			TickLengthMS: 15,
			FrameRate:    60,
		},
		Arena: ArenaConfig{
			PixelsPerCol: 8,
			PixelsPerRow: 16,
		},
	}
}
