package guide

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gopkg.in/yaml.v3"
)

// Declaration is the file form of the guides of a chart:
//
//	axes:
//	  - dimension: primary
//	    variable: x
//	    line: {color: black, width: 1}
//	    tickLine: {length: 4}
//	    label: {size: 9}
//	    grid: {color: "#dddddd"}
//
// A style block which is present but empty takes the values of the
// default Style. Mappers cannot be declared.
type Declaration struct {
	Axes []AxisDecl `yaml:"axes" toml:"axes"`
}

// AxisDecl declares one axis.
type AxisDecl struct {
	Dimension string        `yaml:"dimension" toml:"dimension"`
	Variable  string        `yaml:"variable" toml:"variable"`
	Position  float64       `yaml:"position" toml:"position"`
	Flip      bool          `yaml:"flip" toml:"flip"`
	Line      *StrokeDecl   `yaml:"line" toml:"line"`
	TickLine  *TickLineDecl `yaml:"tickLine" toml:"tickLine"`
	Label     *LabelDecl    `yaml:"label" toml:"label"`
	Grid      *StrokeDecl   `yaml:"grid" toml:"grid"`
	Layer     int           `yaml:"layer" toml:"layer"`
	GridLayer int           `yaml:"gridLayer" toml:"gridLayer"`
}

// StrokeDecl declares a line style.
type StrokeDecl struct {
	Color  string    `yaml:"color" toml:"color"`
	Width  float64   `yaml:"width" toml:"width"`
	Dashes []float64 `yaml:"dashes" toml:"dashes"`
}

// TickLineDecl declares a tick mark.
type TickLineDecl struct {
	Color  string    `yaml:"color" toml:"color"`
	Width  float64   `yaml:"width" toml:"width"`
	Dashes []float64 `yaml:"dashes" toml:"dashes"`
	Length float64   `yaml:"length" toml:"length"`
}

// LabelDecl declares a tick label style.
type LabelDecl struct {
	Color  string  `yaml:"color" toml:"color"`
	Font   string  `yaml:"font" toml:"font"`
	Size   float64 `yaml:"size" toml:"size"`
	Offset float64 `yaml:"offset" toml:"offset"`
}

// ParseYAML parses a YAML declaration into axis configurations using
// DefaultStyle(12) for unset style values.
func ParseYAML(b []byte) ([]*Config, error) {
	var d Declaration
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("guide: yaml: %w", err)
	}
	return d.Configs(DefaultStyle(12))
}

// ParseTOML parses a TOML declaration, using [[axes]] tables, into axis
// configurations using DefaultStyle(12) for unset style values.
func ParseTOML(b []byte) ([]*Config, error) {
	var d Declaration
	if err := toml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("guide: toml: %w", err)
	}
	return d.Configs(DefaultStyle(12))
}

// LoadConfigFile reads a YAML (.yaml, .yml) or TOML (.toml) declaration.
func LoadConfigFile(path string) ([]*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(b)
	case ".toml":
		return ParseTOML(b)
	default:
		return nil, fmt.Errorf("guide: unknown config format %q", ext)
	}
}

// Configs converts d into axis configurations. Unset style values are
// taken from def.
func (d Declaration) Configs(def Style) ([]*Config, error) {
	cfgs := make([]*Config, 0, len(d.Axes))
	for i, a := range d.Axes {
		cfg, err := a.Config(def)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i, err)
		}
		cfgs = append(cfgs, cfg)
	}
	return cfgs, nil
}

// Config converts a into an axis configuration. Unset style values are
// taken from def.
func (a AxisDecl) Config(def Style) (*Config, error) {
	dim, err := ParseDimension(a.Dimension)
	if err != nil {
		return nil, err
	}
	opts := []Option{
		WithDimension(dim),
		WithVariable(a.Variable),
		WithPosition(a.Position),
		WithFlip(a.Flip),
		WithLayer(a.Layer),
		WithGridLayer(a.GridLayer),
	}

	if a.Line != nil {
		sty, err := a.Line.style(def.Line, "line")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLine(&sty))
	}
	if a.TickLine != nil {
		t := def.TickLine
		s := StrokeDecl{Color: a.TickLine.Color, Width: a.TickLine.Width, Dashes: a.TickLine.Dashes}
		if t.Style, err = s.style(def.TickLine.Style, "tickLine"); err != nil {
			return nil, err
		}
		if a.TickLine.Length != 0 {
			t.Length = vg.Length(a.TickLine.Length)
		}
		opts = append(opts, WithTickLine(&t))
	}
	if a.Label != nil {
		l, err := a.Label.style(def.Label)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLabel(&l))
	}
	if a.Grid != nil {
		sty, err := a.Grid.style(def.Grid, "grid")
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithGrid(&sty))
	}
	return NewConfig(opts...)
}

// ParseDimension parses "primary" (or "x"), "cross" (or "y") and "auto"
// (or the empty string).
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "primary", "x":
		return Primary, nil
	case "cross", "y":
		return Cross, nil
	}
	return Auto, &ConfigError{Field: "dimension", Err: fmt.Errorf("unknown dimension %q", s)}
}

func (s StrokeDecl) style(def draw.LineStyle, field string) (draw.LineStyle, error) {
	sty := def
	if s.Color != "" {
		c, err := ParseColor(s.Color)
		if err != nil {
			return sty, &ConfigError{Field: field + ".color", Err: err}
		}
		sty.Color = c
	}
	if s.Width > 0 {
		sty.Width = vg.Length(s.Width)
	}
	if len(s.Dashes) > 0 {
		sty.Dashes = make([]vg.Length, len(s.Dashes))
		for i, d := range s.Dashes {
			sty.Dashes[i] = vg.Length(d)
		}
	}
	return sty, nil
}

func (l LabelDecl) style(def LabelStyle) (LabelStyle, error) {
	sty := def
	if l.Color != "" {
		c, err := ParseColor(l.Color)
		if err != nil {
			return sty, &ConfigError{Field: "label.color", Err: err}
		}
		sty.Color = c
	}
	if l.Font != "" || l.Size > 0 {
		name, size := def.Font.Name(), def.Font.Size
		if l.Font != "" {
			name = l.Font
		}
		if l.Size > 0 {
			size = vg.Length(l.Size)
		}
		f, err := vg.MakeFont(name, size)
		if err != nil {
			return sty, &ConfigError{Field: "label.font", Err: err}
		}
		sty.Font = f
	}
	if l.Offset > 0 {
		sty.Offset = vg.Length(l.Offset)
	}
	return sty, nil
}

// ParseColor parses a color given as #rgb, #rrggbb, #rrggbbaa or as
// an SVG color name. "none" yields a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return nil, fmt.Errorf("unknown color name %q", s)
		}
		return c, nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
