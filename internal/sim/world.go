package sim

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrArenaTooSmall is returned when the arena cannot fully contain the
// configured shapes.
var ErrArenaTooSmall = errors.New("sim: arena too small")

// DefaultRemoveAfter is the collision count at which a shape leaves the arena.
const DefaultRemoveAfter = 3

// Arena is the bounded area shapes move in, in arena units.
type Arena struct {
	W, H float64
}

// StepResult summarizes one simulation tick.
type StepResult struct {
	Tick     int // Tick number, starting at 1
	WallHits int // Wall collision events this tick
	PairHits int // Overlapping pairs resolved this tick
	Removed  int // Shapes removed at the end of this tick
	Live     int // Shapes remaining after removal
}

// World owns the live shape collection and advances it one tick at a time.
type World struct {
	shapes      []Shape
	arena       Arena
	removeAfter int
	palette     Palette
	tick        int
}

// NewWorld creates a world over the given shapes. Shapes are assigned IDs
// 1..n in order and must each pass Validate. The arena must exceed twice
// the largest shape extent on both axes.
func NewWorld(arena Arena, removeAfter int, palette Palette, shapes []Shape) (*World, error) {
	if removeAfter <= 0 {
		return nil, fmt.Errorf("sim: remove threshold must be positive, got %d", removeAfter)
	}
	if palette == nil {
		return nil, errors.New("sim: palette is required")
	}

	maxExtent := 0.0
	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		ex, ey := s.Extent()
		maxExtent = max(maxExtent, ex, ey)
	}
	if err := checkArena(arena, maxExtent); err != nil {
		return nil, err
	}

	owned := make([]Shape, len(shapes))
	copy(owned, shapes)
	for i := range owned {
		owned[i].ID = i + 1
	}

	return &World{
		shapes:      owned,
		arena:       arena,
		removeAfter: removeAfter,
		palette:     palette,
	}, nil
}

func checkArena(arena Arena, maxExtent float64) error {
	if !(arena.W > 2*maxExtent) || !(arena.H > 2*maxExtent) || !(arena.W > 0) || !(arena.H > 0) {
		return fmt.Errorf("%w: %vx%v must exceed %v on both axes", ErrArenaTooSmall, arena.W, arena.H, 2*maxExtent)
	}
	return nil
}

// Step advances the world by exactly one tick: integrate positions, resolve
// wall collisions, resolve pairwise collisions, then remove shapes that
// reached the threshold.
func (w *World) Step() StepResult {
	w.tick++
	res := StepResult{Tick: w.tick}

	for i := range w.shapes {
		s := &w.shapes[i]
		s.Pos = s.Pos.Add(s.Vel)
	}

	for i := range w.shapes {
		res.WallHits += w.resolveWalls(&w.shapes[i])
	}

	for i := 0; i < len(w.shapes); i++ {
		for j := i + 1; j < len(w.shapes); j++ {
			if Overlaps(w.shapes[i], w.shapes[j]) {
				w.resolvePair(&w.shapes[i], &w.shapes[j])
				res.PairHits++
			}
		}
	}

	res.Removed = w.compact()
	res.Live = len(w.shapes)
	return res
}

// Shapes returns the live shapes in scan order. The slice is owned by the
// world and must not be modified; it is only valid until the next Step.
func (w *World) Shapes() []Shape {
	return w.shapes
}

// Len returns the number of live shapes.
func (w *World) Len() int {
	return len(w.shapes)
}

// Counts returns the number of live circles and rectangles.
func (w *World) Counts() (circles, rects int) {
	for _, s := range w.shapes {
		switch s.Kind {
		case KindCircle:
			circles++
		case KindRect:
			rects++
		}
	}
	return circles, rects
}

// Arena returns the arena bounds.
func (w *World) Arena() Arena {
	return w.arena
}

// Tick returns the number of ticks run so far.
func (w *World) Tick() int {
	return w.tick
}

// Population describes the initial shapes to place in an arena.
type Population struct {
	Circles      int
	Rects        int
	CircleRadius float64
	RectW, RectH float64
	MaxSpeed     float64 // Each velocity component is drawn from [-MaxSpeed, MaxSpeed)
}

// DefaultPopulation returns 100 circles of radius 20 and 100 30x30
// rectangles moving at up to 3 units per tick on each axis.
func DefaultPopulation() Population {
	return Population{
		Circles:      100,
		Rects:        100,
		CircleRadius: 20,
		RectW:        30,
		RectH:        30,
		MaxSpeed:     3,
	}
}

// Populate places the population uniformly at random so that every shape
// starts fully inside the arena, circles first.
func Populate(p Population, arena Arena, rng *rand.Rand) ([]Shape, error) {
	if p.Circles < 0 || p.Rects < 0 {
		return nil, fmt.Errorf("sim: negative population %d circles, %d rects", p.Circles, p.Rects)
	}
	if p.MaxSpeed < 0 {
		return nil, fmt.Errorf("sim: negative max speed %v", p.MaxSpeed)
	}

	maxExtent := 0.0
	if p.Circles > 0 {
		if !(p.CircleRadius > 0) {
			return nil, fmt.Errorf("%w: circle radius %v", ErrInvalidDimension, p.CircleRadius)
		}
		maxExtent = 2 * p.CircleRadius
	}
	if p.Rects > 0 {
		if !(p.RectW > 0) || !(p.RectH > 0) {
			return nil, fmt.Errorf("%w: rect size %vx%v", ErrInvalidDimension, p.RectW, p.RectH)
		}
		maxExtent = max(maxExtent, p.RectW, p.RectH)
	}
	if err := checkArena(arena, maxExtent); err != nil {
		return nil, err
	}

	velocity := func() (float64, float64) {
		return rng.Float64()*2*p.MaxSpeed - p.MaxSpeed, rng.Float64()*2*p.MaxSpeed - p.MaxSpeed
	}

	shapes := make([]Shape, 0, p.Circles+p.Rects)
	for range p.Circles {
		r := p.CircleRadius
		x := rng.Float64()*(arena.W-2*r) + r
		y := rng.Float64()*(arena.H-2*r) + r
		c, err := NewCircle(x, y, r)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, c.WithVelocity(velocity()))
	}
	for range p.Rects {
		x := rng.Float64() * (arena.W - p.RectW)
		y := rng.Float64() * (arena.H - p.RectH)
		r, err := NewRect(x, y, p.RectW, p.RectH)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, r.WithVelocity(velocity()))
	}
	return shapes, nil
}
