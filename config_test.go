package guide

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, Auto, cfg.Dimension)
	assert.Equal(t, 0.0, cfg.Position)
	assert.False(t, cfg.Flip)
	assert.Nil(t, cfg.Line)
	assert.True(t, cfg.TickLine.IsNone())
	assert.True(t, cfg.Label.IsNone())
	assert.True(t, cfg.Grid.IsNone())
}

func TestNewConfigOptions(t *testing.T) {
	line := &draw.LineStyle{Color: color.Black, Width: 1}
	cfg, err := NewConfig(
		WithDimension(Cross),
		WithVariable("y"),
		WithPosition(1),
		WithFlip(true),
		WithLine(line),
		WithTickLine(&TickLine{Style: *line}),
		WithLabelMapper(func(string, int, int) *LabelStyle { return nil }),
		WithLayer(2),
		WithGridLayer(-1),
	)
	require.NoError(t, err)
	assert.Equal(t, Cross, cfg.Dimension)
	assert.Equal(t, "y", cfg.Variable)
	assert.Equal(t, 1.0, cfg.Position)
	assert.True(t, cfg.Flip)
	assert.Same(t, line, cfg.Line)
	assert.True(t, cfg.TickLine.IsFixed())
	assert.True(t, cfg.Label.IsMapped())
	assert.True(t, cfg.Grid.IsNone())
	assert.Equal(t, 2, cfg.Layer)
	assert.Equal(t, -1, cfg.GridLayer)
}

func TestNewConfigExclusive(t *testing.T) {
	grid := &draw.LineStyle{Color: color.Black, Width: 1}
	m := func(string, int, int) *draw.LineStyle { return grid }

	cfg, err := NewConfig(WithGrid(grid), WithGridMapper(m))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExclusive))

	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "grid", ce.Field)

	_, err = NewConfig(
		WithTickLine(&TickLine{}),
		WithTickLineMapper(func(string, int, int) *TickLine { return nil }),
	)
	assert.ErrorIs(t, err, ErrExclusive)

	_, err = NewConfig(
		WithLabel(&LabelStyle{}),
		WithLabelMapper(func(string, int, int) *LabelStyle { return nil }),
	)
	assert.ErrorIs(t, err, ErrExclusive)
}

func TestNewConfigPosition(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := NewConfig(WithPosition(p))
		assert.ErrorIs(t, err, ErrPosition, "position %g", p)
		var ce *ConfigError
		if assert.ErrorAs(t, err, &ce) {
			assert.Equal(t, "position", ce.Field)
		}
	}
	for _, p := range []float64{0, 0.5, 1} {
		_, err := NewConfig(WithPosition(p))
		assert.NoError(t, err, "position %g", p)
	}
}

func TestNewConfigTickLength(t *testing.T) {
	_, err := NewConfig(WithTickLine(&TickLine{Style: black, Length: -3}))
	assert.ErrorIs(t, err, ErrTickLength)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "tickLine", ce.Field)

	_, err = NewConfig(WithTickLine(&TickLine{Style: black}))
	assert.NoError(t, err)

	_, err = ParseYAML([]byte("axes:\n  - tickLine: {length: -3}\n"))
	assert.ErrorIs(t, err, ErrTickLength)
}

func TestNewConfigDimension(t *testing.T) {
	_, err := NewConfig(WithDimension(Dimension(7)))
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "dimension", ce.Field)
}

func TestMustConfig(t *testing.T) {
	assert.Panics(t, func() { MustConfig(WithPosition(2)) })
	assert.NotPanics(t, func() { MustConfig(WithPosition(0.5)) })
}
