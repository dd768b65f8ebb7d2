package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Palette supplies the color a shape takes on after each collision.
type Palette interface {
	Next() core.RGB
}

// RandomPalette draws uniformly distributed 24-bit colors from a seeded source.
type RandomPalette struct {
	rng *rand.Rand
}

// NewRandomPalette creates a palette backed by rng.
func NewRandomPalette(rng *rand.Rand) *RandomPalette {
	return &RandomPalette{rng: rng}
}

// Next returns a fresh random color.
func (p *RandomPalette) Next() core.RGB {
	return core.RGB{
		R: uint8(p.rng.Intn(256)),
		G: uint8(p.rng.Intn(256)),
		B: uint8(p.rng.Intn(256)),
	}
}

// hit records one collision event on s.
func (w *World) hit(s *Shape) {
	s.Collisions++
	s.Color = w.palette.Next()
}

// resolveWalls bounces s off any arena edge it touches or crosses, counting
// each axis as a separate collision event. Returns the number of events.
func (w *World) resolveWalls(s *Shape) int {
	ex, ey := s.Extent()
	hits := 0

	if s.Pos.X <= 0 || s.Pos.X+ex >= w.arena.W {
		s.Vel.X = -s.Vel.X
		w.hit(s)
		hits++
	}
	if s.Pos.Y <= 0 || s.Pos.Y+ey >= w.arena.H {
		s.Vel.Y = -s.Vel.Y
		w.hit(s)
		hits++
	}
	return hits
}

// resolvePair reverses both shapes and records a collision on each.
func (w *World) resolvePair(a, b *Shape) {
	a.Vel = a.Vel.Neg()
	b.Vel = b.Vel.Neg()
	w.hit(a)
	w.hit(b)
}

// compact drops every shape whose collision count reached the removal
// threshold, preserving the order of the rest. Returns how many were removed.
func (w *World) compact() int {
	kept := w.shapes[:0]
	for _, s := range w.shapes {
		if s.Collisions < w.removeAfter {
			kept = append(kept, s)
		}
	}
	removed := len(w.shapes) - len(kept)
	clear(w.shapes[len(kept):])
	w.shapes = kept
	return removed
}
