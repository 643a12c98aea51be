package guide

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/guide/scene"
)

// ----------------------------------------------------------------------------
// Chart

// A Chart combines the guides of one coordinate system.
type Chart struct {
	Title     string
	Style     Style
	Scales    ScaleTable
	Variables map[Dimension][]string
	Projector Projector
	Guides    []*Guide

	version uint64
}

// NewChart creates a chart drawing the guides described by cfgs with the
// projector p. Guides with an Auto dimension get one by declaration
// order: the first is Primary, the second Cross and so on, alternating.
func NewChart(p Projector, scales ScaleTable, cfgs ...*Config) *Chart {
	c := &Chart{
		Style:     DefaultStyle(12),
		Scales:    scales,
		Variables: make(map[Dimension][]string),
		Projector: p,
		version:   1,
	}
	auto := 0
	for _, cfg := range cfgs {
		g := NewGuide(cfg)
		if cfg.Dimension == Auto {
			if auto%2 == 1 {
				g.dim = Cross
			}
			auto++
		}
		c.Guides = append(c.Guides, g)
	}
	return c
}

// Bind binds vars to dimension d. Axes without a variable use the first
// variable bound to their dimension.
func (c *Chart) Bind(d Dimension, vars ...string) {
	c.Variables[d] = append(c.Variables[d], vars...)
	c.Invalidate()
}

// Invalidate marks all scenes of c as stale. It must be called after
// changing Scales, Variables or Projector directly.
func (c *Chart) Invalidate() {
	c.version++
}

func (c *Chart) inputs() Inputs {
	return Inputs{
		Version:   c.version,
		Scales:    c.Scales,
		Variables: c.Variables,
		Projector: c.Projector,
	}
}

// Render updates all guides and returns their axis and grid scenes.
// Ticks of all stale guides are built first, then axes and grids are laid
// out concurrently. If any scene has non-finite geometry the whole pass
// fails and the stale guides are invalidated.
func (c *Chart) Render() ([]*scene.Scene, error) {
	in := c.inputs()

	ticks := make([][]TickRecord, len(c.Guides))
	for i, g := range c.Guides {
		if g.current(in) {
			continue
		}
		t, err := g.buildTicks(in)
		if err != nil {
			return nil, fmt.Errorf("guide %d: %w", i, err)
		}
		ticks[i] = t
	}

	axes := make([]*scene.Scene, len(c.Guides))
	grids := make([]*scene.Scene, len(c.Guides))
	var eg errgroup.Group
	for i, g := range c.Guides {
		i, g := i, g // per-iteration copies for the goroutines below (pre-Go 1.22 semantics)
		if g.current(in) {
			axes[i], grids[i] = g.Axis(), g.Grid()
			continue
		}
		eg.Go(func() (err error) {
			axes[i], err = g.renderAxis(in.Projector, ticks[i])
			return err
		})
		eg.Go(func() (err error) {
			grids[i], err = g.renderGrid(in.Projector, ticks[i])
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		for _, g := range c.Guides {
			if !g.current(in) {
				g.invalidate()
			}
		}
		return nil, err
	}

	scenes := make([]*scene.Scene, 0, 2*len(c.Guides))
	for i, g := range c.Guides {
		if !g.current(in) {
			g.store(in.Version, ticks[i], axes[i], grids[i])
		}
		scenes = append(scenes, grids[i], axes[i])
	}
	Logger().Debug("rendered chart", "guides", len(c.Guides), "version", in.Version)
	return scenes, nil
}

// Draw renders c and paints it onto dc. If c has a title, it is drawn at
// the top and a strip of Style.TitleHeight is reserved for it. The
// projector works in screen coordinates relative to the top-left corner
// of the area below that strip.
func (c *Chart) Draw(dc draw.Canvas) error {
	scenes, err := c.Render()
	if err != nil {
		return err
	}

	if c.Style.Background != nil {
		dc.SetColor(c.Style.Background)
		dc.Fill(dc.Rectangle.Path())
	}
	if c.Title != "" {
		dc.FillText(c.Style.Title, vg.Point{X: dc.Center().X, Y: dc.Max.Y}, c.Title)
		dc.Max.Y -= c.Style.TitleHeight
	}
	scene.Composite(dc, scenes...)
	return nil
}
