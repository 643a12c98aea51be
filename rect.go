package guide

import (
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/guide/scene"
)

// Rect is a rectangular projector. The primary dimension runs from left
// to right and the cross dimension from bottom to top, unless Transposed
// swaps them.
type Rect struct {
	Region     vg.Rectangle // Region in screen coordinates.
	Transposed bool
}

// NewRect returns a projector for the region [0,w]x[0,h].
func NewRect(w, h vg.Length) *Rect {
	return &Rect{Region: vg.Rectangle{Max: vg.Point{X: w, Y: h}}}
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// CanvasAxis implements Projector.
func (r *Rect) CanvasAxis(d Dimension) CanvasAxis {
	if (d == Cross) != r.Transposed {
		return Vertical
	}
	return Horizontal
}

// Project implements Projector. Cross position 0 is the bottom edge of
// the region.
func (r *Rect) Project(primary, cross float64) vg.Point {
	x, y := primary, cross
	if r.Transposed {
		x, y = y, x
	}
	reg := CanonicRectangle(r.Region)
	size := reg.Size()
	return vg.Point{
		X: reg.Min.X + vg.Length(x)*size.X,
		Y: reg.Max.Y - vg.Length(y)*size.Y,
	}
}

func (r *Rect) layout(d Dimension) layout {
	if r.CanvasAxis(d) == Horizontal {
		return horizontal{r, d}
	}
	return vertical{r, d}
}

// horizontal draws guides of a dimension running left to right. Ticks
// point down, or up if flipped.
type horizontal struct {
	p Projector
	d Dimension
}

func (h horizontal) axis(s *scene.Scene, a axisParams, ticks []TickRecord) {
	if a.line != nil {
		s.Add(scene.Line{
			From:  at(h.p, h.d, 0, a.position),
			To:    at(h.p, h.d, 1, a.position),
			Style: *a.line,
		})
	}
	dy := 1.0
	if a.flip {
		dy = -1
	}
	for _, t := range ticks {
		mark(s, t, at(h.p, h.d, t.Position, a.position), 0, dy)
	}
}

func (h horizontal) grid(s *scene.Scene, ticks []TickRecord) {
	spans(s, h.p, h.d, ticks)
}

// vertical draws guides of a dimension running bottom to top. Ticks
// point left, or right if flipped.
type vertical struct {
	p Projector
	d Dimension
}

func (v vertical) axis(s *scene.Scene, a axisParams, ticks []TickRecord) {
	if a.line != nil {
		s.Add(scene.Line{
			From:  at(v.p, v.d, 0, a.position),
			To:    at(v.p, v.d, 1, a.position),
			Style: *a.line,
		})
	}
	dx := -1.0
	if a.flip {
		dx = 1
	}
	for _, t := range ticks {
		mark(s, t, at(v.p, v.d, t.Position, a.position), dx, 0)
	}
}

func (v vertical) grid(s *scene.Scene, ticks []TickRecord) {
	spans(s, v.p, v.d, ticks)
}
