package core

// RuntimeConfig contains host parameters passed to a scene at initialization.
// Scenes use this to derive the arena from the display surface and to seed
// their random source.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Render frames per second requested from the host (default 60)
	Seed      int64 // RNG seed for placement, velocities and colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}
