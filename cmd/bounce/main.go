// bounce is a terminal arena of circles and rectangles that bounce off the
// walls and each other until they wear out.
//
// Usage:
//
//	bounce list              - List available scenes
//	bounce run [scene]       - Run a scene full-screen
//	bounce menu              - Pick a scene interactively
//	bounce sim [scene]       - Run a scene headless and print a summary
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible arena
//	--config <path>      - Load settings from a YAML file
//	--preset <name>      - Apply a preset: dense, sparse, calm, frantic
//	--log-level <level>  - debug, info, warn, error (default: info)
//	--log-file <path>    - Log file for full-screen sessions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-bounce/internal/games/bounce"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - shapes colliding in your terminal",
	Long: `Bounce fills the terminal with circles and rectangles that move at a
fixed simulation rate. Every hit against a wall or another shape recolors
the shape; after three hits it disappears.

Available commands:
  list     - Show all available scenes
  run      - Run a scene full-screen
  menu     - Interactive scene picker
  sim      - Headless run with a printed summary

Examples:
  bounce run
  bounce run bounce_circles --preset sparse
  bounce sim --frames 600 --snapshot
  bounce run --config ./my-bounce.yaml --log-file /tmp/bounce.log`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: dense, sparse, calm, frantic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for full-screen sessions (default: none)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
