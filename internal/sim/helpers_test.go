package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// sequencePalette hands out a distinct color on every call.
type sequencePalette struct {
	n int
}

func (p *sequencePalette) Next() core.RGB {
	p.n++
	return core.RGB{R: uint8(p.n), G: uint8(p.n >> 8), B: 0x80}
}

func mustCircle(t *testing.T, x, y, r, vx, vy float64) Shape {
	t.Helper()
	s, err := NewCircle(x, y, r)
	if err != nil {
		t.Fatalf("NewCircle(%v, %v, %v): %v", x, y, r, err)
	}
	return s.WithVelocity(vx, vy)
}

func mustRect(t *testing.T, x, y, w, h, vx, vy float64) Shape {
	t.Helper()
	s, err := NewRect(x, y, w, h)
	if err != nil {
		t.Fatalf("NewRect(%v, %v, %v, %v): %v", x, y, w, h, err)
	}
	return s.WithVelocity(vx, vy)
}

func mustWorld(t *testing.T, arena Arena, shapes ...Shape) *World {
	t.Helper()
	w, err := NewWorld(arena, DefaultRemoveAfter, &sequencePalette{}, shapes)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}
