package guide

import (
	"fmt"

	"github.com/vdobler/guide/scene"
)

// Inputs is a snapshot of everything a Guide depends on besides its
// Config. Callers bump Version whenever any of the inputs changes; a zero
// Version forces recomputation.
type Inputs struct {
	Version   uint64
	Scales    ScaleTable
	Variables map[Dimension][]string // Variables bound to each dimension, in order.
	Projector Projector
}

// A Guide is one axis with its grid. It keeps the scenes of the last
// render pass and recomputes them only when the inputs change.
type Guide struct {
	cfg *Config
	dim Dimension

	version uint64
	valid   bool
	ticks   []TickRecord
	axis    *scene.Scene
	grid    *scene.Scene
}

// NewGuide returns a guide for cfg. An Auto dimension becomes Primary.
func NewGuide(cfg *Config) *Guide {
	d := cfg.Dimension
	if d == Auto {
		d = Primary
	}
	return &Guide{cfg: cfg, dim: d}
}

// Config returns the configuration of g.
func (g *Guide) Config() *Config { return g.cfg }

// Dimension returns the resolved dimension of g.
func (g *Guide) Dimension() Dimension { return g.dim }

// Variable returns the variable g is bound to under in.
func (g *Guide) Variable(in Inputs) (string, error) {
	if g.cfg.Variable != "" {
		return g.cfg.Variable, nil
	}
	if vars := in.Variables[g.dim]; len(vars) > 0 {
		return vars[0], nil
	}
	return "", fmt.Errorf("guide: %s axis: %w", g.dim, ErrNoVariable)
}

// Ticks returns the tick records of the last successful Update.
func (g *Guide) Ticks() []TickRecord { return g.ticks }

// Axis returns the axis scene of the last successful Update.
func (g *Guide) Axis() *scene.Scene { return g.axis }

// Grid returns the grid scene of the last successful Update.
func (g *Guide) Grid() *scene.Scene { return g.grid }

func (g *Guide) current(in Inputs) bool {
	return g.valid && in.Version != 0 && in.Version == g.version
}

// Update recomputes ticks, axis and grid for in. A failure discards the
// previous scenes. Scenes with non-finite geometry, e.g. from a scale
// mapping ticks to NaN, fail with scene.ErrNonFinite.
func (g *Guide) Update(in Inputs) error {
	if g.current(in) {
		return nil
	}
	ticks, err := g.buildTicks(in)
	if err != nil {
		return err
	}
	axis, err := g.renderAxis(in.Projector, ticks)
	if err != nil {
		g.invalidate()
		return err
	}
	grid, err := g.renderGrid(in.Projector, ticks)
	if err != nil {
		g.invalidate()
		return err
	}
	g.store(in.Version, ticks, axis, grid)
	return nil
}

func (g *Guide) buildTicks(in Inputs) ([]TickRecord, error) {
	variable, err := g.Variable(in)
	if err == nil {
		var ticks []TickRecord
		ticks, err = BuildTicks(variable, in.Scales, g.cfg.TickLine, g.cfg.Label, g.cfg.Grid)
		if err == nil {
			return ticks, nil
		}
	}
	g.invalidate()
	return nil, err
}

func (g *Guide) invalidate() {
	g.valid, g.ticks, g.axis, g.grid = false, nil, nil, nil
}

func (g *Guide) renderAxis(p Projector, ticks []TickRecord) (*scene.Scene, error) {
	s := RenderAxis(p, g.dim, g.cfg.Position, g.cfg.Flip, g.cfg.Line, ticks)
	s.Offset = g.cfg.Layer
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("guide: %s axis: %w", g.dim, err)
	}
	return s, nil
}

func (g *Guide) renderGrid(p Projector, ticks []TickRecord) (*scene.Scene, error) {
	s := RenderGrid(p, g.dim, ticks)
	s.Offset = g.cfg.GridLayer
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("guide: %s grid: %w", g.dim, err)
	}
	return s, nil
}

func (g *Guide) store(version uint64, ticks []TickRecord, axis, grid *scene.Scene) {
	g.version, g.valid = version, true
	g.ticks, g.axis, g.grid = ticks, axis, grid
}
