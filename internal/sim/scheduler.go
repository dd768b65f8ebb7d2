package sim

import (
	"fmt"
	"math"
)

// DefaultTickLength is the simulated duration of one tick in milliseconds.
const DefaultTickLength = 15.0

// Renderer paints the live shapes. Implementations must clear their surface
// before painting and must not modify the slice or its shapes.
type Renderer interface {
	Render(shapes []Shape)
}

// Diagnostics displays the frame rate estimate and live shape count.
// It is purely observational.
type Diagnostics interface {
	Report(fps, live int)
}

// Clock tracks simulated time against host frame timestamps.
// All values are in milliseconds on the host's timeline.
type Clock struct {
	TickLength float64 // Fixed duration of one tick
	LastTick   float64 // Simulated time; advanced only by whole ticks
	LastRender float64 // Timestamp of the previous frame
}

// FrameResult summarizes one frame: every tick it ran plus the render.
type FrameResult struct {
	Ticks    int // Ticks run this frame
	WallHits int
	PairHits int
	Removed  int
	Live     int // Shapes live at render time
	FPS      int // Frame rate estimate from the previous frame
}

// Scheduler decouples the host's frame cadence from the fixed tick length.
// On each frame it replays as many whole ticks as have elapsed since the
// last one, then renders once.
type Scheduler struct {
	world       *World
	clock       Clock
	renderer    Renderer
	diagnostics Diagnostics
}

// NewScheduler creates a scheduler whose clock starts at now.
func NewScheduler(world *World, tickLength, now float64, r Renderer) (*Scheduler, error) {
	if world == nil {
		return nil, fmt.Errorf("sim: scheduler requires a world")
	}
	if !(tickLength > 0) {
		return nil, fmt.Errorf("sim: tick length must be positive, got %v", tickLength)
	}
	return &Scheduler{
		world: world,
		clock: Clock{
			TickLength: tickLength,
			LastTick:   now,
			LastRender: now,
		},
		renderer: r,
	}, nil
}

// SetDiagnostics attaches a diagnostics sink, or detaches it when d is nil.
func (s *Scheduler) SetDiagnostics(d Diagnostics) {
	s.diagnostics = d
}

// Clock returns a copy of the scheduler's clock.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// World returns the world being driven.
func (s *Scheduler) World() *World {
	return s.world
}

// Frame handles one host frame at timestamp tFrame. It runs every whole tick
// that has elapsed, advancing the clock by exactly one tick length per step
// so leftover time carries into the next frame, then renders the result.
func (s *Scheduler) Frame(tFrame float64) FrameResult {
	var res FrameResult

	for range s.pendingTicks(tFrame) {
		s.clock.LastTick += s.clock.TickLength
		step := s.world.Step()
		res.Ticks++
		res.WallHits += step.WallHits
		res.PairHits += step.PairHits
		res.Removed += step.Removed
	}

	res.Live = s.world.Len()
	res.FPS = framesPerSecond(tFrame - s.clock.LastRender)

	if s.renderer != nil {
		s.renderer.Render(s.world.Shapes())
	}
	if s.diagnostics != nil {
		s.diagnostics.Report(res.FPS, res.Live)
	}

	s.clock.LastRender = tFrame
	return res
}

// pendingTicks returns how many whole ticks fit between the last tick and
// tFrame. Nothing runs until strictly more than one tick length has passed.
func (s *Scheduler) pendingTicks(tFrame float64) int {
	elapsed := tFrame - s.clock.LastTick
	if elapsed <= s.clock.TickLength {
		return 0
	}
	return int(math.Floor(elapsed / s.clock.TickLength))
}

func framesPerSecond(deltaMillis float64) int {
	if deltaMillis <= 0 {
		return 0
	}
	return int(math.Round(1000 / deltaMillis))
}

// Totals accumulates frame results over a run.
type Totals struct {
	Frames   int
	Ticks    int
	WallHits int
	PairHits int
	Removed  int
	Live     int
}

// Add folds one frame into the totals.
func (t *Totals) Add(f FrameResult) {
	t.Frames++
	t.Ticks += f.Ticks
	t.WallHits += f.WallHits
	t.PairHits += f.PairHits
	t.Removed += f.Removed
	t.Live = f.Live
}
