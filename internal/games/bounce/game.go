// Package bounce implements the shape arena scene: circles and rectangles
// bouncing off the walls and each other until each has taken enough hits.
package bounce

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/registry"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

// Scene IDs.
const (
	IDMixed   = "bounce"
	IDCircles = "bounce_circles"
	IDBoxes   = "bounce_boxes"
)

// Game implements the bounce arena scene.
type Game struct {
	id    string
	title string
	cfg   config.BounceConfig

	runtime  core.RuntimeConfig
	world    *sim.World
	sched    *sim.Scheduler
	renderer *ScreenRenderer
	overlay  *Overlay

	diagnostics bool
	totals      sim.Totals
}

// New creates a scene with the given identity and configuration.
// Nothing is simulated until Reset.
func New(id, title string, cfg config.BounceConfig) *Game {
	return &Game{
		id:          id,
		title:       title,
		cfg:         cfg,
		diagnostics: true,
	}
}

// ID returns the unique identifier for this scene.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this scene.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the scene was created with.
func (g *Game) Config() config.BounceConfig {
	return g.cfg
}

// Reset populates a fresh arena derived from the screen size and starts
// the simulation clock at now.
func (g *Game) Reset(runtime core.RuntimeConfig, dst *core.Screen, now float64) error {
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	color, err := g.cfg.ShapeColor()
	if err != nil {
		return err
	}

	w, h := g.cfg.ArenaSize(runtime.ScreenW, runtime.ScreenH)
	arena := sim.Arena{W: w, H: h}
	rng := rand.New(rand.NewSource(runtime.Seed))

	shapes, err := sim.Populate(g.population(), arena, rng)
	if err != nil {
		return fmt.Errorf("bounce: populate %s: %w", g.id, err)
	}
	for i := range shapes {
		shapes[i].Color = color
	}

	world, err := sim.NewWorld(arena, g.cfg.Rules.RemoveAfter, sim.NewRandomPalette(rng), shapes)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	renderer := NewScreenRenderer(dst, arena)
	sched, err := sim.NewScheduler(world, g.cfg.Timing.TickLengthMS, now, renderer)
	if err != nil {
		return fmt.Errorf("bounce: %w", err)
	}

	g.runtime = runtime
	g.world = world
	g.sched = sched
	g.renderer = renderer
	g.overlay = NewOverlay(dst)
	g.totals = sim.Totals{}
	g.SetDiagnostics(g.diagnostics)
	return nil
}

// population converts the configuration into the simulation's terms.
func (g *Game) population() sim.Population {
	return sim.Population{
		Circles:      g.cfg.Population.Circles,
		Rects:        g.cfg.Population.Rects,
		CircleRadius: g.cfg.Shapes.CircleRadius,
		RectW:        g.cfg.Shapes.RectWidth,
		RectH:        g.cfg.Shapes.RectHeight,
		MaxSpeed:     g.cfg.Motion.MaxSpeed,
	}
}

// Frame runs every tick elapsed up to now and paints the arena.
// Before the first Reset it does nothing.
func (g *Game) Frame(now float64) sim.FrameResult {
	if g.sched == nil {
		return sim.FrameResult{}
	}
	res := g.sched.Frame(now)
	g.totals.Add(res)
	return res
}

// SetDiagnostics shows or hides the FPS and figure count overlay.
func (g *Game) SetDiagnostics(on bool) {
	g.diagnostics = on
	if g.sched == nil {
		return
	}
	if on {
		g.sched.SetDiagnostics(g.overlay)
	} else {
		g.sched.SetDiagnostics(nil)
	}
}

// Diagnostics reports whether the overlay is shown.
func (g *Game) Diagnostics() bool {
	return g.diagnostics
}

// Totals returns running counters since the last Reset.
func (g *Game) Totals() sim.Totals {
	return g.totals
}

// Arena returns the current arena bounds, zero before Reset.
func (g *Game) Arena() sim.Arena {
	if g.world == nil {
		return sim.Arena{}
	}
	return g.world.Arena()
}

// Counts returns the number of live circles and rectangles.
func (g *Game) Counts() (circles, rects int) {
	if g.world == nil {
		return 0, 0
	}
	return g.world.Counts()
}

func init() {
	registry.Register(IDMixed, func(cfg config.BounceConfig) registry.Scene {
		return New(IDMixed, "Bounce Arena", cfg)
	})
	registry.Register(IDCircles, func(cfg config.BounceConfig) registry.Scene {
		cfg.Population.Rects = 0
		return New(IDCircles, "Bounce Arena (circles only)", cfg)
	})
	registry.Register(IDBoxes, func(cfg config.BounceConfig) registry.Scene {
		cfg.Population.Circles = 0
		return New(IDBoxes, "Bounce Arena (rectangles only)", cfg)
	})
}
