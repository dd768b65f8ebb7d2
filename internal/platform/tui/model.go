package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

// Model is the Bubble Tea model hosting a bounce scene.
type Model struct {
	scene  registry.Scene
	screen *core.Screen
	config core.RuntimeConfig
	logger *log.Logger
	keys   *KeyMapper
	help   help.Model

	start       time.Time // origin of the millisecond frame timeline
	diagnostics bool
	showHelp    bool
	emptied     bool // arena-empty already logged for this run
	quitting    bool
	err         error
}

// NewModel creates a model for the given scene and resets it at time zero.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		scene:       scene,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:      cfg,
		logger:      logger,
		keys:        NewKeyMapper(),
		help:        help.New(),
		start:       time.Now(),
		diagnostics: true,
	}
	m.help.Width = cfg.ScreenW

	if err := scene.Reset(cfg, m.screen, 0); err != nil {
		return Model{}, err
	}
	m.logger.Info("scene ready",
		"scene", scene.ID(),
		"seed", cfg.Seed,
		"cols", cfg.ScreenW,
		"rows", cfg.ScreenH,
		"fps", cfg.FrameRate,
	)
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// millis converts a wall-clock instant to the scene's millisecond timeline.
func (m Model) millis(t time.Time) float64 {
	return float64(t.Sub(m.start)) / float64(time.Millisecond)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.config.Seed = time.Now().UnixNano()
		if err := m.scene.Reset(m.config, m.screen, m.millis(time.Now())); err != nil {
			m.logger.Error("restart failed", "err", err)
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.scene.SetDiagnostics(m.diagnostics)
		m.emptied = false
		m.logger.Info("arena repopulated", "seed", m.config.Seed)

	case core.ActionToggleDiagnostics:
		m.diagnostics = !m.diagnostics
		m.scene.SetDiagnostics(m.diagnostics)

	case core.ActionToggleHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// handleResize processes window resize events. The arena keeps its size;
// the renderer rescales it onto the new screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.logger.Info("resize", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleFrame drives one scheduler frame and re-arms the frame loop.
func (m Model) handleFrame(t time.Time) (tea.Model, tea.Cmd) {
	res := m.scene.Frame(m.millis(t))

	if res.Ticks > 0 {
		m.logger.Debug("frame",
			"ticks", res.Ticks,
			"wall_hits", res.WallHits,
			"pair_hits", res.PairHits,
			"live", res.Live,
		)
	}
	if res.Removed > 0 {
		m.logger.Debug("shapes removed", "removed", res.Removed, "live", res.Live)
	}
	if res.Live == 0 && !m.emptied {
		m.emptied = true
		totals := m.scene.Totals()
		m.logger.Info("arena empty",
			"ticks", totals.Ticks,
			"frames", totals.Frames,
			"removed", totals.Removed,
		)
	}

	return m, frameCmd(m.config.FrameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := RenderScreen(m.screen)
	if !m.showHelp {
		return out
	}

	// Help replaces the bottom row of the arena
	lines := strings.Split(out, "\n")
	lines[len(lines)-1] = m.help.View(m.keys.Keys())
	return strings.Join(lines, "\n")
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the given scene.
func Run(scene registry.Scene, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(scene, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
