package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/logging"
	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var flagFPS int

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Run a scene full-screen",
	Long: `Fill the terminal with a scene. The arena is sized from the terminal
when the scene starts; resizing rescales the view.

Controls:
  R          - Repopulate with a fresh seed
  D          - Toggle the FPS / figure count overlay
  ?          - Toggle key help
  Q/Ctrl+C   - Quit

Examples:
  bounce run
  bounce run bounce_boxes
  bounce run --preset frantic --fps 30
  bounce run --seed 42 --log-file ./bounce.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "Render frame rate (0 = use config)")
}

// terminalConfig builds the runtime config from the current terminal.
func terminalConfig(frameRate int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FrameRate = frameRate
	cfg.Seed = flagSeed
	return cfg
}

func runRun(cmd *cobra.Command, args []string) {
	if err := runScene(args); err != nil {
		fail("%v", err)
	}
}

// runScene runs one full-screen session. The log file is closed before it
// returns so a failing command still flushes it.
func runScene(args []string) error {
	s, err := loadSettings(flagConfig, flagPreset, flagFPS)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	logSettings(logger, s)

	scene, err := createScene(args, s.Config)
	if err != nil {
		logger.Error("create scene", "err", err)
		return err
	}

	if err := tui.Run(scene, terminalConfig(s.Config.Timing.FrameRate), logger); err != nil {
		logger.Error("session ended", "err", err)
		return err
	}
	return nil
}
