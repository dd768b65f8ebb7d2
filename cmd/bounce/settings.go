package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

// settings is the effective configuration for one command.
type settings struct {
	Config config.BounceConfig
	Source string
	Preset config.Preset
}

// loadSettings loads the config file, applies the preset and an optional
// frame rate override, then validates the result.
func loadSettings(path, presetName string, fps int) (settings, error) {
	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return settings{}, err
	}

	cfg, source, err := config.LoadBounce(path)
	if err != nil {
		return settings{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if fps > 0 {
		cfg.Timing.FrameRate = fps
	}

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	return settings{Config: cfg, Source: source, Preset: preset}, nil
}

// createScene resolves a scene ID, defaulting to the mixed arena.
func createScene(args []string, cfg config.BounceConfig) (registry.Scene, error) {
	id := "bounce"
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown scene %q (run 'bounce list' to see available scenes)", id)
	}
	return registry.Create(id, cfg)
}

// logSettings records the effective settings at startup.
func logSettings(logger *log.Logger, s settings) {
	cfg := s.Config
	logger.Info("config loaded",
		"source", s.Source,
		"preset", string(s.Preset),
		"circles", cfg.Population.Circles,
		"rects", cfg.Population.Rects,
		"max_speed", cfg.Motion.MaxSpeed,
		"remove_after", cfg.Rules.RemoveAfter,
		"tick_ms", cfg.Timing.TickLengthMS,
		"fps", cfg.Timing.FrameRate,
	)
}
