package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/logging"
	"github.com/vovakirdan/tui-bounce/internal/registry"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

var (
	flagFrames   int
	flagWidth    int
	flagHeight   int
	flagSimFPS   int
	flagSnapshot bool
	flagOverlay  bool
)

var simCmd = &cobra.Command{
	Use:   "sim [scene]",
	Short: "Run a scene headless and print a summary",
	Long: `Run a scene against a virtual frame clock without taking over the
terminal. Frames are spaced exactly 1000/fps milliseconds apart, so a run
with a fixed --seed is fully reproducible. Without --seed the run
uses seed 1.

Examples:
  bounce sim
  bounce sim --frames 1200 --seed 7
  bounce sim bounce_circles --width 120 --height 40 --snapshot`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to run")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Virtual screen width in cells")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Virtual screen height in cells")
	simCmd.Flags().IntVar(&flagSimFPS, "fps", 0, "Virtual frame rate (0 = use config)")
	simCmd.Flags().BoolVar(&flagSnapshot, "snapshot", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagOverlay, "overlay", false, "Draw the FPS / figure count overlay")
}

// headlessRun is the outcome of a virtual-clock run.
type headlessRun struct {
	Totals   sim.Totals
	Arena    sim.Arena
	EmptyAt  int // frame at which the arena emptied, 0 if it never did
	Snapshot string
}

// runHeadless drives scene through frames virtual frames on screen.
func runHeadless(scene registry.Scene, rc core.RuntimeConfig, frames int, overlay bool) (headlessRun, error) {
	screen := core.NewScreen(rc.ScreenW, rc.ScreenH)
	if err := scene.Reset(rc, screen, 0); err != nil {
		return headlessRun{}, err
	}
	scene.SetDiagnostics(overlay)

	var out headlessRun
	step := 1000 / float64(rc.FrameRate)
	for i := 1; i <= frames; i++ {
		res := scene.Frame(float64(i) * step)
		if res.Live == 0 && out.EmptyAt == 0 {
			out.EmptyAt = i
		}
	}
	out.Totals = scene.Totals()
	out.Snapshot = screen.String()
	if a, ok := scene.(interface{ Arena() sim.Arena }); ok {
		out.Arena = a.Arena()
	}
	return out, nil
}

// summaryTable renders the run summary.
func summaryTable(id string, seed int64, run headlessRun) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	emptied := "no"
	if run.EmptyAt > 0 {
		emptied = fmt.Sprintf("frame %d", run.EmptyAt)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Metric", "Value").
		Row("scene", id).
		Row("seed", strconv.FormatInt(seed, 10)).
		Row("arena", fmt.Sprintf("%.0f x %.0f", run.Arena.W, run.Arena.H)).
		Row("frames", strconv.Itoa(run.Totals.Frames)).
		Row("ticks", strconv.Itoa(run.Totals.Ticks)).
		Row("wall hits", strconv.Itoa(run.Totals.WallHits)).
		Row("pair hits", strconv.Itoa(run.Totals.PairHits)).
		Row("removed", strconv.Itoa(run.Totals.Removed)).
		Row("live", strconv.Itoa(run.Totals.Live)).
		Row("emptied", emptied)

	return t.String()
}

func runSim(cmd *cobra.Command, args []string) {
	s, err := loadSettings(flagConfig, flagPreset, flagSimFPS)
	if err != nil {
		fail("%v", err)
	}

	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fail("%v", err)
	}
	logSettings(logger, s)

	if flagFrames <= 0 || flagWidth <= 0 || flagHeight <= 0 {
		fail("--frames, --width and --height must be positive")
	}

	scene, err := createScene(args, s.Config)
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	rc := core.RuntimeConfig{
		ScreenW:   flagWidth,
		ScreenH:   flagHeight,
		FrameRate: s.Config.Timing.FrameRate,
		Seed:      seed,
	}

	run, err := runHeadless(scene, rc, flagFrames, flagOverlay)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("run finished",
		"scene", scene.ID(),
		"frames", run.Totals.Frames,
		"ticks", run.Totals.Ticks,
		"live", run.Totals.Live,
	)

	if flagSnapshot {
		fmt.Println(run.Snapshot)
		fmt.Println()
	}
	fmt.Println(summaryTable(scene.ID(), seed, run))
}
