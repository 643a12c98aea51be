package guide

import (
	"fmt"

	"gonum.org/v1/plot/vg/draw"
)

// A TickRecord describes one tick of a guide: where it is, its text and
// the resolved styles of its tick mark, label and grid line. A nil style
// means the element is not drawn.
type TickRecord struct {
	Position float64 // Position along the axis in [0,1].
	Text     string

	TickLine *TickLine
	Label    *LabelStyle
	Grid     *draw.LineStyle
}

// HasLabel reports whether t draws a label.
func (t TickRecord) HasLabel() bool {
	return t.Label != nil && t.Text != ""
}

// BuildTicks computes the tick records for variable from its scale in
// scales. The records are in the scale's tick order. The stylings are
// resolved once all ticks are known, so mappers see the final index and
// total. A mapper yielding a tick line with negative length fails with
// ErrTickLength.
func BuildTicks(variable string, scales ScaleTable, tickLine Styling[TickLine], label Styling[LabelStyle], grid Styling[draw.LineStyle]) ([]TickRecord, error) {
	scale, err := scales.Lookup(variable)
	if err != nil {
		return nil, err
	}

	values := scale.Ticks()
	ticks := make([]TickRecord, len(values))
	for i, v := range values {
		ticks[i].Position = scale.Normalize(scale.Convert(v))
		ticks[i].Text = scale.Format(v)
	}

	total := len(ticks)
	for i := range ticks {
		text := ticks[i].Text
		ticks[i].TickLine = tickLine.Resolve(text, i, total)
		if tl := ticks[i].TickLine; tl != nil && tl.Length < 0 {
			return nil, &ConfigError{Field: "tickLine", Err: fmt.Errorf("%w, tick %d has %g", ErrTickLength, i, tl.Length)}
		}
		ticks[i].Label = label.Resolve(text, i, total)
		ticks[i].Grid = grid.Resolve(text, i, total)
	}

	Logger().Debug("built ticks", "variable", variable, "count", total)
	return ticks, nil
}
