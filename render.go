package guide

import (
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/guide/scene"
)

// RenderAxis lays out the axis of dimension d with the projector p.
// The axis line is drawn at position in [0,1] across the other
// dimension; flip moves tick marks and labels to the other side of it.
// A nil line suppresses the axis line.
//
// The returned scene has layer offset 0.
func RenderAxis(p Projector, d Dimension, position float64, flip bool, line *draw.LineStyle, ticks []TickRecord) *scene.Scene {
	s := scene.New(scene.Axis, 0)
	p.layout(d).axis(s, axisParams{position: position, flip: flip, line: line}, ticks)
	Logger().Debug("rendered axis", "dimension", d, "primitives", s.Len())
	return s
}

// RenderGrid lays out one grid line spanning the other dimension per tick
// with a grid style.
//
// The returned scene has layer offset 0.
func RenderGrid(p Projector, d Dimension, ticks []TickRecord) *scene.Scene {
	s := scene.New(scene.Grid, 0)
	p.layout(d).grid(s, ticks)
	Logger().Debug("rendered grid", "dimension", d, "primitives", s.Len())
	return s
}
