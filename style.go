package guide

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultTickLength is the length of a tick line with zero Length.
const DefaultTickLength = vg.Length(5)

// DefaultLabelOffset is the gap between the end of a tick line and its
// label if the label style has no Offset.
const DefaultLabelOffset = vg.Length(2)

// TickLine is the style of a tick mark.
type TickLine struct {
	Style  draw.LineStyle
	Length vg.Length // Length of the tick; 0 means DefaultTickLength. Must not be negative.
}

// Len returns the drawn length of t.
func (t *TickLine) Len() vg.Length {
	if t.Length == 0 {
		return DefaultTickLength
	}
	return t.Length
}

// LabelStyle is the style of a tick label. The alignment of the embedded
// TextStyle is chosen by the renderer from the side the label is drawn on.
type LabelStyle struct {
	draw.TextStyle
	Offset vg.Length // Gap to the tick line end; 0 means DefaultLabelOffset.
}

func (l *LabelStyle) offset() vg.Length {
	if l.Offset == 0 {
		return DefaultLabelOffset
	}
	return l.Offset
}

// A Style bundles the default look of axes and grids.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length // Height of the strip reserved for the title.

	Line     draw.LineStyle
	TickLine TickLine
	Label    LabelStyle

	Grid draw.LineStyle
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for the title which is a bit bigger,
// tick labels are a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	s := Style{}
	s.Background = color.White

	s.TitleHeight = scale(baseFontSize, 3)
	s.Title.Color = color.Black
	s.Title.Font = titleFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Line.Color = color.Gray16{0x1111}
	s.Line.Width = vg.Length(1)

	s.TickLine.Style.Color = color.Gray16{0x1111}
	s.TickLine.Style.Width = vg.Length(1)
	s.TickLine.Length = DefaultTickLength

	s.Label.Color = color.Black
	s.Label.Font = tickFont
	s.Label.Offset = DefaultLabelOffset

	s.Grid.Color = color.Gray16{0xdddd}
	s.Grid.Width = vg.Length(1)

	return s
}
