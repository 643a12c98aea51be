package guide

import (
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/vdobler/guide/scene"
)

// Polar is a polar projector. The primary dimension maps to the angle
// and the cross dimension to the radius, unless Transposed swaps them.
// Angles are in radians, measured from the positive x axis in screen
// space, so growing angles turn clockwise on screen.
type Polar struct {
	Center                   vg.Point
	StartAngle, EndAngle     float64
	InnerRadius, OuterRadius vg.Length
	Transposed               bool
}

// NewPolar returns a full-circle projector centered in region, starting
// at the top and filling as much of region as possible.
func NewPolar(region vg.Rectangle) *Polar {
	region = CanonicRectangle(region)
	size := region.Size()
	return &Polar{
		Center:      vg.Point{X: region.Min.X + size.X/2, Y: region.Min.Y + size.Y/2},
		StartAngle:  -math.Pi / 2,
		EndAngle:    3 * math.Pi / 2,
		OuterRadius: vg.Length(math.Min(float64(size.X), float64(size.Y))) / 2,
	}
}

// AngleRange returns the start and end angle of p.
func (p *Polar) AngleRange() (start, end float64) {
	return p.StartAngle, p.EndAngle
}

// RadiusRange returns the inner and outer radius of p.
func (p *Polar) RadiusRange() (inner, outer vg.Length) {
	return p.InnerRadius, p.OuterRadius
}

func (p *Polar) angle(ratio float64) float64 {
	return p.StartAngle + ratio*(p.EndAngle-p.StartAngle)
}

func (p *Polar) radius(ratio float64) vg.Length {
	return p.InnerRadius + vg.Length(ratio)*(p.OuterRadius-p.InnerRadius)
}

func (p *Polar) point(theta float64, r vg.Length) vg.Point {
	return vg.Point{
		X: p.Center.X + r*vg.Length(math.Cos(theta)),
		Y: p.Center.Y + r*vg.Length(math.Sin(theta)),
	}
}

// CanvasAxis implements Projector: the angle dimension is Horizontal,
// the radius dimension Vertical.
func (p *Polar) CanvasAxis(d Dimension) CanvasAxis {
	if (d == Cross) != p.Transposed {
		return Vertical
	}
	return Horizontal
}

// Project implements Projector.
func (p *Polar) Project(primary, cross float64) vg.Point {
	a, r := primary, cross
	if p.Transposed {
		a, r = r, a
	}
	return p.point(p.angle(a), p.radius(r))
}

func (p *Polar) layout(d Dimension) layout {
	if p.CanvasAxis(d) == Horizontal {
		return circular{p, d}
	}
	return radial{p, d}
}

// circular draws guides of the angle dimension. The axis is an arc, ticks
// point outward, or inward if flipped.
type circular struct {
	p *Polar
	d Dimension
}

func (c circular) axis(s *scene.Scene, a axisParams, ticks []TickRecord) {
	if a.line != nil {
		s.Add(scene.Arc{
			Center: c.p.Center,
			Radius: c.p.radius(a.position),
			Start:  c.p.StartAngle,
			Sweep:  c.p.EndAngle - c.p.StartAngle,
			Style:  *a.line,
		})
	}
	sign := 1.0
	if a.flip {
		sign = -1
	}
	for _, t := range ticks {
		theta := c.p.angle(t.Position)
		dx, dy := sign*math.Cos(theta), sign*math.Sin(theta)
		mark(s, t, at(c.p, c.d, t.Position, a.position), dx, dy)
	}
}

// grid draws a radial line from the inner to the outer radius per tick.
func (c circular) grid(s *scene.Scene, ticks []TickRecord) {
	spans(s, c.p, c.d, ticks)
}

// radial draws guides of the radius dimension. The axis is a ray, ticks
// point counter-clockwise on screen, or clockwise if flipped.
type radial struct {
	p *Polar
	d Dimension
}

func (r radial) axis(s *scene.Scene, a axisParams, ticks []TickRecord) {
	if a.line != nil {
		s.Add(scene.Line{
			From:  at(r.p, r.d, 0, a.position),
			To:    at(r.p, r.d, 1, a.position),
			Style: *a.line,
		})
	}
	theta := r.p.angle(a.position)
	dx, dy := math.Sin(theta), -math.Cos(theta)
	if a.flip {
		dx, dy = -dx, -dy
	}
	for _, t := range ticks {
		mark(s, t, at(r.p, r.d, t.Position, a.position), dx, dy)
	}
}

// grid draws an arc over the full angle range per tick.
func (r radial) grid(s *scene.Scene, ticks []TickRecord) {
	for _, t := range ticks {
		if t.Grid == nil {
			continue
		}
		s.Add(scene.Arc{
			Center: r.p.Center,
			Radius: r.p.radius(t.Position),
			Start:  r.p.StartAngle,
			Sweep:  r.p.EndAngle - r.p.StartAngle,
			Style:  *t.Grid,
		})
	}
}
