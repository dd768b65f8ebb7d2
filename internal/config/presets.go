package config

import "fmt"

// Preset represents a named tweak of the base configuration.
type Preset string

const (
	PresetNone    Preset = ""
	PresetDense   Preset = "dense"
	PresetSparse  Preset = "sparse"
	PresetCalm    Preset = "calm"
	PresetFrantic Preset = "frantic"
)

// Presets lists the named presets in display order.
func Presets() []Preset {
	return []Preset{PresetDense, PresetSparse, PresetCalm, PresetFrantic}
}

// ParsePreset validates a preset name. The empty string selects no preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(name)
	if p == PresetNone {
		return p, nil
	}
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return PresetNone, fmt.Errorf("config: unknown preset %q", name)
}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *BounceConfig, preset Preset) {
	switch preset {
	case PresetDense:
		cfg.Population.Circles = 150
		cfg.Population.Rects = 150
	case PresetSparse:
		cfg.Population.Circles = 25
		cfg.Population.Rects = 25
	case PresetCalm:
		cfg.Motion.MaxSpeed = 1
		cfg.Rules.RemoveAfter = 5
	case PresetFrantic:
		cfg.Motion.MaxSpeed = 6
		cfg.Timing.TickLengthMS = 10
	}
}
