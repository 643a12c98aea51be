package guide

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/guide/scene"
)

// Dimension is one of the two logical axes of the data space.
type Dimension int

const (
	// Auto lets a Chart infer the dimension from declaration order.
	Auto Dimension = iota
	Primary
	Cross
)

// String returns the name of d.
func (d Dimension) String() string {
	switch d {
	case Primary:
		return "primary"
	case Cross:
		return "cross"
	default:
		return "auto"
	}
}

// CanvasAxis is a physical axis of the canvas. For polar projectors
// Horizontal is the angle and Vertical the radius.
type CanvasAxis int

const (
	Horizontal CanvasAxis = iota
	Vertical
)

// A Projector converts normalized, dimension relative positions into
// screen geometry. The package provides the rectangular Rect and the
// polar Polar projector; each draws guides with its own layouts.
type Projector interface {
	// CanvasAxis returns the canvas axis d is drawn along.
	CanvasAxis(d Dimension) CanvasAxis

	// Project maps the normalized position (primary, cross) to a screen
	// point.
	Project(primary, cross float64) vg.Point

	// layout returns the strategy which draws guides of d.
	layout(d Dimension) layout
}

// A layout draws the axis and the grid of one dimension.
type layout interface {
	axis(s *scene.Scene, a axisParams, ticks []TickRecord)
	grid(s *scene.Scene, ticks []TickRecord)
}

type axisParams struct {
	position float64
	flip     bool
	line     *draw.LineStyle
}

// at projects the point which lies at along in dimension d and at across
// in the other dimension.
func at(p Projector, d Dimension, along, across float64) vg.Point {
	if d == Cross {
		return p.Project(across, along)
	}
	return p.Project(along, across)
}

// alignment returns the text alignment of a label placed in screen
// direction (dx,dy) from its anchor, so the text extends away from it.
func alignment(dx, dy float64) (draw.XAlignment, draw.YAlignment) {
	return draw.XAlignment(-0.5 + 0.5*dx), draw.YAlignment(-0.5 - 0.5*dy)
}

// mark adds the tick line and the label of t at base. (dx,dy) is the
// unit screen direction the tick points to.
func mark(s *scene.Scene, t TickRecord, base vg.Point, dx, dy float64) {
	end := base
	if t.TickLine != nil {
		l := t.TickLine.Len()
		end = vg.Point{X: base.X + l*vg.Length(dx), Y: base.Y + l*vg.Length(dy)}
		s.Add(scene.Line{From: base, To: end, Style: t.TickLine.Style})
	}
	if !t.HasLabel() {
		return
	}
	off := t.Label.offset()
	sty := t.Label.TextStyle
	sty.XAlign, sty.YAlign = alignment(dx, dy)
	s.Add(scene.Text{
		Point: vg.Point{X: end.X + off*vg.Length(dx), Y: end.Y + off*vg.Length(dy)},
		Text:  t.Text,
		Style: sty,
	})
}

// spans adds a grid line across the whole crossing dimension for every
// tick with a grid style.
func spans(s *scene.Scene, p Projector, d Dimension, ticks []TickRecord) {
	for _, t := range ticks {
		if t.Grid == nil {
			continue
		}
		s.Add(scene.Line{
			From:  at(p, d, t.Position, 0),
			To:    at(p, d, t.Position, 1),
			Style: *t.Grid,
		})
	}
}
