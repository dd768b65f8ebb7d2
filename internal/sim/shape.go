// Package sim implements the fixed-timestep shape arena: the shape model,
// pairwise collision detection, collision response and the stepper and
// scheduler that drive them. It has no UI dependencies; rendering is
// consumed through the Renderer interface.
package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// ErrInvalidDimension is returned when a shape is constructed with a
// non-positive radius, width or height.
var ErrInvalidDimension = errors.New("sim: invalid shape dimension")

// Kind tags the variant carried by a Shape.
type Kind uint8

const (
	KindCircle Kind = iota + 1
	KindRect
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Shape is a circle or an axis-aligned rectangle moving in the arena.
//
// For circles Pos is the center and Radius is set. For rectangles Pos is the
// top-left corner and W, H are set. Dimensions never change after
// construction; only Pos, Vel, Collisions and Color mutate.
type Shape struct {
	ID   int
	Kind Kind

	Pos core.Vec
	Vel core.Vec

	Radius float64 // circles only
	W, H   float64 // rectangles only

	Collisions int
	Color      core.RGB
}

// NewCircle creates a stationary circle centered at (x, y).
func NewCircle(x, y, radius float64) (Shape, error) {
	if !(radius > 0) {
		return Shape{}, fmt.Errorf("%w: circle radius %v", ErrInvalidDimension, radius)
	}
	return Shape{
		Kind:   KindCircle,
		Pos:    core.V(x, y),
		Radius: radius,
		Color:  core.DefaultShapeColor,
	}, nil
}

// NewRect creates a stationary rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h float64) (Shape, error) {
	if !(w > 0) || !(h > 0) {
		return Shape{}, fmt.Errorf("%w: rect size %vx%v", ErrInvalidDimension, w, h)
	}
	return Shape{
		Kind:  KindRect,
		Pos:   core.V(x, y),
		W:     w,
		H:     h,
		Color: core.DefaultShapeColor,
	}, nil
}

// Validate reports whether the shape has a known kind and positive
// dimensions, wrapping ErrInvalidDimension otherwise.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindCircle:
		if !(s.Radius > 0) {
			return fmt.Errorf("%w: circle radius %v", ErrInvalidDimension, s.Radius)
		}
	case KindRect:
		if !(s.W > 0) || !(s.H > 0) {
			return fmt.Errorf("%w: rect size %vx%v", ErrInvalidDimension, s.W, s.H)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidDimension, s.Kind)
	}
	return nil
}

// WithVelocity returns a copy of the shape moving at (vx, vy) per tick.
func (s Shape) WithVelocity(vx, vy float64) Shape {
	s.Vel = core.V(vx, vy)
	return s
}

// Extent returns the size used by the wall check on each axis:
// the diameter for circles, width and height for rectangles.
func (s Shape) Extent() (float64, float64) {
	switch s.Kind {
	case KindCircle:
		return 2 * s.Radius, 2 * s.Radius
	case KindRect:
		return s.W, s.H
	default:
		panic(fmt.Sprintf("sim: unhandled shape kind %d", s.Kind))
	}
}

// Contains reports whether the arena point p lies inside the shape.
// Used by renderers to rasterize shapes.
func (s Shape) Contains(p core.Vec) bool {
	switch s.Kind {
	case KindCircle:
		d := p.Sub(s.Pos)
		return d.X*d.X+d.Y*d.Y <= s.Radius*s.Radius
	case KindRect:
		return p.X >= s.Pos.X && p.X <= s.Pos.X+s.W &&
			p.Y >= s.Pos.Y && p.Y <= s.Pos.Y+s.H
	default:
		panic(fmt.Sprintf("sim: unhandled shape kind %d", s.Kind))
	}
}

// Center returns the geometric center of the shape.
func (s Shape) Center() core.Vec {
	switch s.Kind {
	case KindCircle:
		return s.Pos
	case KindRect:
		return core.V(s.Pos.X+s.W/2, s.Pos.Y+s.H/2)
	default:
		panic(fmt.Sprintf("sim: unhandled shape kind %d", s.Kind))
	}
}

// Box returns the drawn bounding box as (minX, minY, maxX, maxY).
func (s Shape) Box() (float64, float64, float64, float64) {
	switch s.Kind {
	case KindCircle:
		return s.Pos.X - s.Radius, s.Pos.Y - s.Radius, s.Pos.X + s.Radius, s.Pos.Y + s.Radius
	case KindRect:
		return s.Pos.X, s.Pos.Y, s.Pos.X + s.W, s.Pos.Y + s.H
	default:
		panic(fmt.Sprintf("sim: unhandled shape kind %d", s.Kind))
	}
}
