package guide

import (
	"errors"
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
)

// fixedScale is a linear Scaler on [min,max] with the given ticks.
type fixedScale struct {
	min, max float64
	ticks    []float64
}

func (s fixedScale) Ticks() []float64            { return s.ticks }
func (s fixedScale) Convert(v float64) float64   { return v }
func (s fixedScale) Normalize(r float64) float64 { return (r - s.min) / (s.max - s.min) }
func (s fixedScale) Format(v float64) string     { return strconv.FormatFloat(v, 'g', -1, 64) }

var (
	black     = draw.LineStyle{Color: color.Black, Width: 1}
	tickStyle = TickLine{Style: black, Length: 5}
	label     = LabelStyle{TextStyle: draw.TextStyle{Color: color.Black}}
	gridStyle = draw.LineStyle{Color: color.Gray{0xdd}, Width: 1}
)

func testScales() ScaleTable {
	return ScaleTable{
		"x": fixedScale{0, 100, []float64{0, 50, 100}},
		"y": fixedScale{0, 10, []float64{0, 5, 10}},
	}
}

func TestBuildTicks(t *testing.T) {
	ticks, err := BuildTicks("x", testScales(), Fixed(&tickStyle), Fixed(&label), None[draw.LineStyle]())
	require.NoError(t, err)
	require.Len(t, ticks, 3)

	wantPos := []float64{0, 0.5, 1}
	wantText := []string{"0", "50", "100"}
	for i, tk := range ticks {
		assert.InDelta(t, wantPos[i], tk.Position, 1e-12)
		assert.Equal(t, wantText[i], tk.Text)
		assert.Same(t, &tickStyle, tk.TickLine)
		assert.Same(t, &label, tk.Label)
		assert.Nil(t, tk.Grid)
		assert.True(t, tk.HasLabel())
	}
}

func TestBuildTicksMapper(t *testing.T) {
	type call struct {
		text         string
		index, total int
	}
	var calls []call
	grid := Mapped(func(text string, index, total int) *draw.LineStyle {
		calls = append(calls, call{text, index, total})
		if index%2 == 0 {
			return &gridStyle
		}
		return nil
	})

	ticks, err := BuildTicks("y", testScales(), None[TickLine](), None[LabelStyle](), grid)
	require.NoError(t, err)
	assert.Equal(t, []call{{"0", 0, 3}, {"5", 1, 3}, {"10", 2, 3}}, calls)
	assert.NotNil(t, ticks[0].Grid)
	assert.Nil(t, ticks[1].Grid)
	assert.NotNil(t, ticks[2].Grid)
	for _, tk := range ticks {
		assert.Nil(t, tk.TickLine)
		assert.False(t, tk.HasLabel())
	}
}

func TestBuildTicksEmpty(t *testing.T) {
	scales := ScaleTable{"e": fixedScale{0, 1, nil}}
	ticks, err := BuildTicks("e", scales, Fixed(&tickStyle), Fixed(&label), Fixed(&gridStyle))
	require.NoError(t, err)
	assert.Empty(t, ticks)
}

func TestBuildTicksMissingScale(t *testing.T) {
	_, err := BuildTicks("z", testScales(), None[TickLine](), None[LabelStyle](), None[draw.LineStyle]())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingScale))

	var mse *MissingScaleError
	require.ErrorAs(t, err, &mse)
	assert.Equal(t, "z", mse.Variable)
}

func TestTickLineLen(t *testing.T) {
	assert.Equal(t, DefaultTickLength, (&TickLine{}).Len())
	assert.EqualValues(t, 3, (&TickLine{Length: 3}).Len())
}

func TestBuildTicksTickLineMapper(t *testing.T) {
	scales := ScaleTable{"v": fixedScale{0, 3, []float64{0, 1, 2, 3}}}
	odd := Mapped(func(text string, index, total int) *TickLine {
		if index%2 == 0 {
			return nil
		}
		return &tickStyle
	})

	ticks, err := BuildTicks("v", scales, odd, None[LabelStyle](), None[draw.LineStyle]())
	require.NoError(t, err)
	require.Len(t, ticks, 4)
	assert.Nil(t, ticks[0].TickLine)
	assert.Same(t, &tickStyle, ticks[1].TickLine)
	assert.Nil(t, ticks[2].TickLine)
	assert.Same(t, &tickStyle, ticks[3].TickLine)
}

func TestBuildTicksNegativeLength(t *testing.T) {
	short := Mapped(func(text string, index, total int) *TickLine {
		return &TickLine{Style: black, Length: -3}
	})
	_, err := BuildTicks("x", testScales(), short, None[LabelStyle](), None[draw.LineStyle]())
	assert.ErrorIs(t, err, ErrTickLength)
}
