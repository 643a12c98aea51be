package guide_test

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/guide"
)

func Example() {
	scales := guide.ScaleTable{
		"speed": guide.NewLinearScale(0, 100),
		"time":  guide.NewLinearScale(0, 10),
	}
	style := guide.DefaultStyle(12)

	chart := guide.NewChart(guide.NewRect(300, 200), scales,
		guide.MustConfig(
			guide.WithVariable("time"),
			guide.WithLine(&style.Line),
			guide.WithTickLine(&style.TickLine),
		),
		guide.MustConfig(
			guide.WithVariable("speed"),
			guide.WithLine(&style.Line),
			guide.WithTickLine(&style.TickLine),
		),
	)
	if _, err := chart.Render(); err != nil {
		fmt.Println(err)
		return
	}
	for _, g := range chart.Guides {
		fmt.Println(g.Dimension(), len(g.Ticks()), g.Axis().Layer())
	}
	// Output:
	// primary 3 3000
	// cross 3 3000
}

// Every other grid line is drawn.
func ExampleWithGridMapper() {
	grid := draw.LineStyle{Color: color.Gray{0xcc}, Width: 1}
	cfg := guide.MustConfig(
		guide.WithDimension(guide.Cross),
		guide.WithGridMapper(func(text string, index, total int) *draw.LineStyle {
			if index%2 == 1 {
				return nil
			}
			return &grid
		}),
	)

	g := guide.NewGuide(cfg)
	err := g.Update(guide.Inputs{
		Version:   1,
		Scales:    guide.ScaleTable{"y": guide.NewDiscreteScale("a", "b", "c", "d", "e")},
		Variables: map[guide.Dimension][]string{guide.Cross: {"y"}},
		Projector: guide.NewPolar(vg.Rectangle{Max: vg.Point{X: 100, Y: 100}}),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range g.Grid().Arcs() {
		fmt.Printf("%.0f ", a.Radius)
	}
	fmt.Println()
	// Output:
	// 5 25 45
}
