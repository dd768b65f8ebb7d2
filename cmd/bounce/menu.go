package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/logging"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a scene from a menu",
	Long: `Start bounce in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a scene.
Quitting a scene returns to the menu.

Examples:
  bounce menu
  bounce menu --preset dense`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s, err := loadSettings(flagConfig, flagPreset, 0)
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()
	logSettings(logger, s)

	cfg := terminalConfig(s.Config.Timing.FrameRate)

	// Menu loop; a failed scene is reported on the next menu screen
	notice := ""
	for {
		result, err := tui.RunMenu(cfg, notice)
		if err != nil {
			logger.Error("menu failed", "err", err)
			break
		}
		cfg = result.Config
		notice = ""
		if result.Quit {
			break
		}

		scene, err := registry.Create(result.SceneID, s.Config)
		if err != nil {
			logger.Error("create scene", "scene", result.SceneID, "err", err)
			notice = err.Error()
			continue
		}

		// Fresh seed per run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(scene, cfg, logger); err != nil {
			logger.Error("scene ended", "scene", result.SceneID, "err", err)
			notice = err.Error()
		}
	}
}
