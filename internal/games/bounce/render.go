package bounce

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

// Visual characters for rendering
const (
	CircleChar = '█'
	RectChar   = '▓'
)

// ScreenRenderer rasterizes shapes onto a Screen, scaling the arena to
// whatever size the screen currently has.
type ScreenRenderer struct {
	dst   *core.Screen
	arena sim.Arena
}

// NewScreenRenderer creates a renderer painting arena into dst.
func NewScreenRenderer(dst *core.Screen, arena sim.Arena) *ScreenRenderer {
	return &ScreenRenderer{dst: dst, arena: arena}
}

// Render clears the screen and paints every shape in its current color.
// A cell is filled when its center lies inside the shape; shapes smaller
// than a cell still mark the cell holding their center.
func (r *ScreenRenderer) Render(shapes []sim.Shape) {
	r.dst.Clear()

	cols, rows := r.dst.Width(), r.dst.Height()
	if cols <= 0 || rows <= 0 {
		return
	}
	sx := r.arena.W / float64(cols)
	sy := r.arena.H / float64(rows)

	for _, s := range shapes {
		r.paint(s, cols, rows, sx, sy)
	}
}

func (r *ScreenRenderer) paint(s sim.Shape, cols, rows int, sx, sy float64) {
	ch := glyph(s.Kind)
	st := core.Foreground(s.Color)

	minX, minY, maxX, maxY := s.Box()
	c0 := core.Max(0, int(math.Floor(minX/sx)))
	c1 := core.Min(cols-1, int(math.Floor(maxX/sx)))
	r0 := core.Max(0, int(math.Floor(minY/sy)))
	r1 := core.Min(rows-1, int(math.Floor(maxY/sy)))

	painted := false
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			center := core.V((float64(x)+0.5)*sx, (float64(y)+0.5)*sy)
			if s.Contains(center) {
				r.dst.SetStyled(x, y, ch, st)
				painted = true
			}
		}
	}

	if !painted {
		c := s.Center()
		r.dst.SetStyled(int(math.Floor(c.X/sx)), int(math.Floor(c.Y/sy)), ch, st)
	}
}

func glyph(k sim.Kind) rune {
	switch k {
	case sim.KindCircle:
		return CircleChar
	case sim.KindRect:
		return RectChar
	default:
		panic(fmt.Sprintf("bounce: unhandled shape kind %d", k))
	}
}

// Overlay draws the FPS and figure count in the top-left corner.
type Overlay struct {
	dst *core.Screen
}

// NewOverlay creates an overlay drawing into dst.
func NewOverlay(dst *core.Screen) *Overlay {
	return &Overlay{dst: dst}
}

var overlayStyle = core.Foreground(core.ColorBlack).WithBackground(core.ColorWhite)

// Report draws the current diagnostics over the arena.
func (o *Overlay) Report(fps, live int) {
	o.dst.DrawStyledText(1, 0, fmt.Sprintf(" FPS: %d ", fps), overlayStyle)
	o.dst.DrawStyledText(1, 1, fmt.Sprintf(" Figures: %d ", live), overlayStyle)
}
