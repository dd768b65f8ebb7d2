package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

func TestNewShapeRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		make func() (Shape, error)
	}{
		{"zero radius", func() (Shape, error) { return NewCircle(10, 10, 0) }},
		{"negative radius", func() (Shape, error) { return NewCircle(10, 10, -1) }},
		{"NaN radius", func() (Shape, error) { return NewCircle(10, 10, math.NaN()) }},
		{"zero width", func() (Shape, error) { return NewRect(0, 0, 0, 10) }},
		{"negative height", func() (Shape, error) { return NewRect(0, 0, 10, -5) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.make()
			if !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
		})
	}
}

func TestNewShapeDefaults(t *testing.T) {
	c, err := NewCircle(5, 6, 20)
	if err != nil {
		t.Fatalf("NewCircle: %v", err)
	}
	if c.Kind != KindCircle || c.Collisions != 0 || c.Color != core.DefaultShapeColor {
		t.Errorf("unexpected new circle: %+v", c)
	}
	if c.Vel != (core.Vec{}) {
		t.Errorf("new circle should be stationary, got %v", c.Vel)
	}

	r, err := NewRect(1, 2, 30, 40)
	if err != nil {
		t.Fatalf("NewRect: %v", err)
	}
	if r.Kind != KindRect || r.Collisions != 0 || r.Color != core.DefaultShapeColor {
		t.Errorf("unexpected new rect: %+v", r)
	}
}

func TestShapeExtent(t *testing.T) {
	c := mustCircle(t, 50, 50, 20, 0, 0)
	if ex, ey := c.Extent(); ex != 40 || ey != 40 {
		t.Errorf("circle Extent() = (%v, %v), expected (40, 40)", ex, ey)
	}

	r := mustRect(t, 0, 0, 30, 10, 0, 0)
	if ex, ey := r.Extent(); ex != 30 || ey != 10 {
		t.Errorf("rect Extent() = (%v, %v), expected (30, 10)", ex, ey)
	}
}

func TestShapeContains(t *testing.T) {
	c := mustCircle(t, 50, 50, 10, 0, 0)
	if !c.Contains(core.V(50, 60)) {
		t.Error("circle should contain a point on its edge")
	}
	if c.Contains(core.V(58, 58)) {
		t.Error("circle should not contain a point outside its radius")
	}

	r := mustRect(t, 10, 10, 20, 10, 0, 0)
	if !r.Contains(core.V(30, 20)) {
		t.Error("rect should contain its bottom-right corner")
	}
	if r.Contains(core.V(31, 15)) {
		t.Error("rect should not contain a point right of its edge")
	}
}

func TestShapeCenterAndBox(t *testing.T) {
	r := mustRect(t, 10, 20, 30, 40, 0, 0)
	if got := r.Center(); got != core.V(25, 40) {
		t.Errorf("rect Center() = %v, expected (25, 40)", got)
	}
	minX, minY, maxX, maxY := r.Box()
	if minX != 10 || minY != 20 || maxX != 40 || maxY != 60 {
		t.Errorf("rect Box() = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}

	c := mustCircle(t, 10, 20, 5, 0, 0)
	if got := c.Center(); got != core.V(10, 20) {
		t.Errorf("circle Center() = %v, expected (10, 20)", got)
	}
	minX, minY, maxX, maxY = c.Box()
	if minX != 5 || minY != 15 || maxX != 15 || maxY != 25 {
		t.Errorf("circle Box() = (%v, %v, %v, %v)", minX, minY, maxX, maxY)
	}
}

func TestKindString(t *testing.T) {
	if KindCircle.String() != "circle" || KindRect.String() != "rect" {
		t.Error("unexpected kind names")
	}
	if Kind(0).String() != "unknown" {
		t.Error("zero kind should be unknown")
	}
}
