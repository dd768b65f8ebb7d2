package sim

import (
	"fmt"
	"math"
)

// Overlaps reports whether two shapes overlap, dispatching on the pair of
// kinds. The result does not depend on argument order.
func Overlaps(a, b Shape) bool {
	switch a.Kind {
	case KindCircle:
		switch b.Kind {
		case KindCircle:
			return CirclesOverlap(a, b)
		case KindRect:
			return CircleRectOverlap(a, b)
		}
	case KindRect:
		switch b.Kind {
		case KindCircle:
			return CircleRectOverlap(b, a)
		case KindRect:
			return RectsOverlap(a, b)
		}
	}
	panic(fmt.Sprintf("sim: unhandled shape pair %s/%s", a.Kind, b.Kind))
}

// RectsOverlap is the axis-aligned bounding box test. Edges that touch
// count as overlapping.
func RectsOverlap(a, b Shape) bool {
	if a.Pos.X > b.Pos.X+b.W || b.Pos.X > a.Pos.X+a.W {
		return false
	}
	if a.Pos.Y > b.Pos.Y+b.H || b.Pos.Y > a.Pos.Y+a.H {
		return false
	}
	return true
}

// CirclesOverlap reports whether the distance between centers is strictly
// less than the sum of the radii. Touching circles do not overlap.
func CirclesOverlap(a, b Shape) bool {
	return a.Pos.Sub(b.Pos).Len() < a.Radius+b.Radius
}

// CircleRectOverlap tests circle c against rectangle r by comparing the
// per-axis distance between their centers with the rectangle half extents,
// falling back to the corner distance.
func CircleRectOverlap(c, r Shape) bool {
	halfW, halfH := r.W/2, r.H/2
	dx := math.Abs(c.Pos.X - r.Pos.X - halfW)
	dy := math.Abs(c.Pos.Y - r.Pos.Y - halfH)

	if dx > halfW+c.Radius || dy > halfH+c.Radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cdx := dx - halfW
	cdy := dy - halfH
	return cdx*cdx+cdy*cdy <= c.Radius*c.Radius
}
