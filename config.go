package guide

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg/draw"
)

// Config is the declarative description of one axis guide and its grid.
// A Config is immutable once built by NewConfig.
type Config struct {
	// Dimension the axis belongs to. Auto is resolved by a Chart from
	// declaration order.
	Dimension Dimension

	// Variable bound to the axis. If empty the first variable bound to
	// Dimension is used.
	Variable string

	// Position of the axis line across the other dimension, in [0,1].
	Position float64

	// Flip draws tick marks and labels on the other side of the line.
	Flip bool

	// Line is the style of the axis line; nil draws no line.
	Line *draw.LineStyle

	TickLine Styling[TickLine]
	Label    Styling[LabelStyle]
	Grid     Styling[draw.LineStyle]

	// Layer and GridLayer order the axis and grid scenes among those of
	// the same kind.
	Layer     int
	GridLayer int
}

// builder collects options before the Config is validated.
type builder struct {
	cfg Config

	tickLine       *TickLine
	tickLineMapper Mapper[TickLine]
	label          *LabelStyle
	labelMapper    Mapper[LabelStyle]
	grid           *draw.LineStyle
	gridMapper     Mapper[draw.LineStyle]
}

// An Option configures an axis guide.
type Option func(*builder)

// WithDimension sets the dimension of the axis.
func WithDimension(d Dimension) Option {
	return func(b *builder) { b.cfg.Dimension = d }
}

// WithVariable binds the axis to variable.
func WithVariable(variable string) Option {
	return func(b *builder) { b.cfg.Variable = variable }
}

// WithPosition places the axis line at ratio across the other dimension.
func WithPosition(ratio float64) Option {
	return func(b *builder) { b.cfg.Position = ratio }
}

// WithFlip sets whether ticks and labels are drawn on the flipped side.
func WithFlip(flip bool) Option {
	return func(b *builder) { b.cfg.Flip = flip }
}

// WithLine sets the style of the axis line.
func WithLine(sty *draw.LineStyle) Option {
	return func(b *builder) { b.cfg.Line = sty }
}

// WithTickLine uses t for all tick marks.
func WithTickLine(t *TickLine) Option {
	return func(b *builder) { b.tickLine = t }
}

// WithTickLineMapper computes the tick mark of each tick with m.
func WithTickLineMapper(m Mapper[TickLine]) Option {
	return func(b *builder) { b.tickLineMapper = m }
}

// WithLabel uses l for all tick labels.
func WithLabel(l *LabelStyle) Option {
	return func(b *builder) { b.label = l }
}

// WithLabelMapper computes the label style of each tick with m.
func WithLabelMapper(m Mapper[LabelStyle]) Option {
	return func(b *builder) { b.labelMapper = m }
}

// WithGrid uses sty for all grid lines.
func WithGrid(sty *draw.LineStyle) Option {
	return func(b *builder) { b.grid = sty }
}

// WithGridMapper computes the grid line style of each tick with m.
func WithGridMapper(m Mapper[draw.LineStyle]) Option {
	return func(b *builder) { b.gridMapper = m }
}

// WithLayer sets the draw order of the axis among axes.
func WithLayer(n int) Option {
	return func(b *builder) { b.cfg.Layer = n }
}

// WithGridLayer sets the draw order of the grid among grids.
func WithGridLayer(n int) Option {
	return func(b *builder) { b.cfg.GridLayer = n }
}

// NewConfig builds an axis configuration from opts. It fails with a
// *ConfigError if a fixed style and a mapper are given for the same
// element, if a fixed tick line has a negative length or if the position
// is not in [0,1].
func NewConfig(opts ...Option) (*Config, error) {
	b := builder{}
	for _, o := range opts {
		o(&b)
	}

	var err error
	if b.cfg.TickLine, err = choose("tickLine", b.tickLine, b.tickLineMapper); err != nil {
		return nil, err
	}
	if b.cfg.Label, err = choose("label", b.label, b.labelMapper); err != nil {
		return nil, err
	}
	if b.cfg.Grid, err = choose("grid", b.grid, b.gridMapper); err != nil {
		return nil, err
	}

	if b.tickLine != nil && b.tickLine.Length < 0 {
		return nil, &ConfigError{Field: "tickLine", Err: fmt.Errorf("%w, got %g", ErrTickLength, b.tickLine.Length)}
	}

	p := b.cfg.Position
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, &ConfigError{Field: "position", Err: fmt.Errorf("%w, got %g", ErrPosition, p)}
	}
	if b.cfg.Dimension < Auto || b.cfg.Dimension > Cross {
		return nil, &ConfigError{Field: "dimension", Err: fmt.Errorf("unknown dimension %d", b.cfg.Dimension)}
	}

	cfg := b.cfg
	return &cfg, nil
}

// MustConfig is like NewConfig but panics on error.
func MustConfig(opts ...Option) *Config {
	cfg, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func choose[T any](field string, style *T, m Mapper[T]) (Styling[T], error) {
	switch {
	case style != nil && m != nil:
		return None[T](), &ConfigError{Field: field, Err: ErrExclusive}
	case m != nil:
		return Mapped(m), nil
	default:
		return Fixed(style), nil
	}
}
