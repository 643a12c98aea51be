// Package guide draws axes and grid lines for charts built on
// gonum.org/v1/plot.
//
// Guides
//
// A guide is one axis of a chart together with its grid lines. It is
// described by a Config built from functional options:
//
//	cfg, err := guide.NewConfig(
//	    guide.WithDimension(guide.Primary),
//	    guide.WithVariable("x"),
//	    guide.WithLine(&style.Line),
//	    guide.WithTickLine(&style.TickLine),
//	    guide.WithLabel(&style.Label),
//	)
//
// Tick marks, labels and grid lines are each styled by a Styling: either
// nothing, one fixed style for all ticks or a Mapper called per tick with
// the tick's text, index and the total number of ticks. A fixed style and
// a mapper for the same element are mutually exclusive.
//
// Scales
//
// The concept of a scale is taken from ggplot2. A Scale maps data values
// of one variable to the unit interval and decides where ticks go and how
// they are labeled. Linear, logarithmic, discrete and time scales are
// provided. TrainScales sets up one scale per column of a data.Columns.
//
// Projectors
//
// A Projector turns normalized positions into screen coordinates. Rect
// is a (possibly transposed) cartesian projector, Polar maps one
// dimension to angles and the other to radii. Each projector draws its
// axes and grids in its own way:
//
//	Rect, horizontal:  line left to right, ticks down
//	Rect, vertical:    line bottom to top, ticks left
//	Polar, angle:      arc, ticks outward
//	Polar, radius:     ray, ticks counter-clockwise
//
// Flip draws ticks and labels on the opposite side.
//
// Scenes
//
// Rendering produces scene.Scene values: lists of lines, arcs and texts
// in screen coordinates. Grid scenes are painted before axis scenes. A
// Chart caches the scenes of its guides until its inputs change.
//
// Declarative configuration
//
// Axes can also be read from YAML or TOML files with ParseYAML,
// ParseTOML or LoadConfigFile. The guideplot command in cmd/guideplot
// renders such a file to an image.
package guide
