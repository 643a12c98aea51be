// Package scene holds the drawable output of the guide renderers.
//
// A Scene is an ordered list of primitives (lines, arcs and text runs)
// tagged with a layer. Coordinates are screen coordinates: the origin is
// the top-left corner of the drawing area and y grows downward. Paint
// converts them to the y-up coordinates of a gonum draw.Canvas.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNonFinite is reported by Validate for primitives with NaN or
// infinite geometry.
var ErrNonFinite = errors.New("scene: non-finite geometry")

// Kind is the intrinsic layer of a scene.
type Kind int

// Intrinsic layers. Grids are painted below data, axes above it.
const (
	Grid Kind = 1000
	Axis Kind = 3000
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Grid:
		return "grid"
	case Axis:
		return "axis"
	default:
		return "unknown"
	}
}

// Primitive is a single drawable element of a scene.
type Primitive interface {
	// paint draws the primitive onto c; flip maps a screen point to a
	// canvas point.
	paint(c draw.Canvas, flip func(vg.Point) vg.Point)

	// finite reports whether all coordinates of the primitive are finite.
	finite() bool
}

func finite(x ...float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finitePoint(p vg.Point) bool { return finite(float64(p.X), float64(p.Y)) }

// Line is a straight stroked segment.
type Line struct {
	From, To vg.Point
	Style    draw.LineStyle
}

func (l Line) finite() bool { return finitePoint(l.From) && finitePoint(l.To) }

func (l Line) paint(c draw.Canvas, flip func(vg.Point) vg.Point) {
	if l.Style.Color == nil || l.Style.Width == 0 {
		return
	}
	a, b := flip(l.From), flip(l.To)
	c.StrokeLine2(l.Style, a.X, a.Y, b.X, b.Y)
}

// Arc is a stroked circular arc. Start is the angle of the first point and
// Sweep the angle covered, both in radians in screen space, so a positive
// sweep runs clockwise on screen. A sweep of 2π or more is a full circle.
type Arc struct {
	Center       vg.Point
	Radius       vg.Length
	Start, Sweep float64
	Style        draw.LineStyle
}

// Full reports whether a is a complete circle.
func (a Arc) Full() bool {
	return math.Abs(a.Sweep) >= 2*math.Pi-1e-9
}

// At returns the screen point of a at angle theta.
func (a Arc) At(theta float64) vg.Point {
	return vg.Point{
		X: a.Center.X + a.Radius*vg.Length(math.Cos(theta)),
		Y: a.Center.Y + a.Radius*vg.Length(math.Sin(theta)),
	}
}

func (a Arc) finite() bool {
	return finitePoint(a.Center) && finite(float64(a.Radius), a.Start, a.Sweep)
}

func (a Arc) paint(c draw.Canvas, flip func(vg.Point) vg.Point) {
	if a.Style.Color == nil || a.Style.Width == 0 || a.Radius <= 0 {
		return
	}
	sweep := a.Sweep
	if a.Full() {
		sweep = 2 * math.Pi
	}
	// Flipping y mirrors angles: screen angle t is canvas angle -t.
	var p vg.Path
	p.Move(flip(a.At(a.Start)))
	p.Arc(flip(a.Center), a.Radius, -a.Start, -sweep)
	c.SetLineStyle(a.Style)
	c.Stroke(p)
}

// Text is a text run anchored at Point. The alignment in Style is
// relative to Point.
type Text struct {
	Point vg.Point
	Text  string
	Style draw.TextStyle
}

func (t Text) finite() bool { return finitePoint(t.Point) }

func (t Text) paint(c draw.Canvas, flip func(vg.Point) vg.Point) {
	if t.Text == "" || t.Style.Color == nil {
		return
	}
	c.FillText(t.Style, flip(t.Point), t.Text)
}

// A Scene is the ordered output of one renderer for one render pass.
// A Scene is replaced, never patched, when its inputs change.
type Scene struct {
	Kind       Kind
	Offset     int // Offset is the configured layer index.
	Primitives []Primitive
}

// New returns an empty scene of kind k with the given layer offset.
func New(k Kind, offset int) *Scene {
	return &Scene{Kind: k, Offset: offset}
}

// Layer returns the effective draw order of s.
func (s *Scene) Layer() int {
	return int(s.Kind) + s.Offset
}

// Add appends primitives to s.
func (s *Scene) Add(p ...Primitive) {
	s.Primitives = append(s.Primitives, p...)
}

// Len returns the number of primitives in s.
func (s *Scene) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Primitives)
}

// Lines returns the Line primitives of s in order.
func (s *Scene) Lines() []Line {
	var lines []Line
	for _, p := range s.Primitives {
		if l, ok := p.(Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// Arcs returns the Arc primitives of s in order.
func (s *Scene) Arcs() []Arc {
	var arcs []Arc
	for _, p := range s.Primitives {
		if a, ok := p.(Arc); ok {
			arcs = append(arcs, a)
		}
	}
	return arcs
}

// Texts returns the Text primitives of s in order.
func (s *Scene) Texts() []Text {
	var texts []Text
	for _, p := range s.Primitives {
		if t, ok := p.(Text); ok {
			texts = append(texts, t)
		}
	}
	return texts
}

// Validate reports the first primitive of s with non-finite geometry.
// The error matches ErrNonFinite.
func (s *Scene) Validate() error {
	if s == nil {
		return nil
	}
	for i, p := range s.Primitives {
		if !p.finite() {
			return fmt.Errorf("%s primitive %d: %w", s.Kind, i, ErrNonFinite)
		}
	}
	return nil
}

// Paint draws s onto c. Screen coordinates are taken relative to the
// top-left corner of c.
func (s *Scene) Paint(c draw.Canvas) {
	flip := func(p vg.Point) vg.Point {
		return vg.Point{X: c.Min.X + p.X, Y: c.Max.Y - p.Y}
	}
	for _, p := range s.Primitives {
		p.paint(c, flip)
	}
}

// Composite paints scenes onto c ordered by layer. Scenes on the same
// layer keep their relative order. Nil scenes are skipped.
func Composite(c draw.Canvas, scenes ...*Scene) {
	ordered := make([]*Scene, 0, len(scenes))
	for _, s := range scenes {
		if s != nil {
			ordered = append(ordered, s)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Layer() < ordered[j].Layer()
	})
	for _, s := range ordered {
		s.Paint(c)
	}
}
