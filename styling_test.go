package guide

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/vg/draw"
)

func TestStylingNone(t *testing.T) {
	var zero Styling[draw.LineStyle]
	assert.True(t, zero.IsNone())
	assert.Nil(t, zero.Resolve("a", 0, 1))

	assert.True(t, Fixed[draw.LineStyle](nil).IsNone())
	assert.True(t, Mapped[draw.LineStyle](nil).IsNone())
}

func TestStylingFixed(t *testing.T) {
	sty := &draw.LineStyle{Color: color.Black, Width: 1}
	s := Fixed(sty)
	assert.True(t, s.IsFixed())
	for i := 0; i < 3; i++ {
		assert.Same(t, sty, s.Resolve("x", i, 3))
	}
}

func TestStylingMapped(t *testing.T) {
	even := &draw.LineStyle{Color: color.Black, Width: 1}
	var calls []string
	s := Mapped(func(text string, index, total int) *draw.LineStyle {
		calls = append(calls, text)
		assert.Equal(t, 4, total)
		if index%2 == 0 {
			return even
		}
		return nil
	})
	assert.True(t, s.IsMapped())

	got := []*draw.LineStyle{}
	for i, txt := range []string{"a", "b", "c", "d"} {
		got = append(got, s.Resolve(txt, i, 4))
	}
	assert.Equal(t, []*draw.LineStyle{even, nil, even, nil}, got)
	assert.Equal(t, []string{"a", "b", "c", "d"}, calls)
}
