// Command guideplot renders the axes and grids declared in a YAML or TOML
// file to an image.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/guide"
	"github.com/vdobler/guide/data"
)

var (
	configPath string
	outputPath string
	dataPath   string
	title      string
	polar      bool
	transpose  bool
	width      float64
	height     float64
	margin     float64
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "guideplot",
		Short: "Render chart axes and grids",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render the axes declared in a config file to an image",
		Long: `render reads axis declarations from a YAML or TOML file, trains
scales on a CSV file (or a demo table) and writes the axes and grids
as png, jpg, svg, pdf or eps, chosen by the extension of --output.`,
		Args: cobra.NoArgs,
		RunE: run,
	}
	f := renderCmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "Axis declarations (.yaml, .yml or .toml)")
	f.StringVarP(&outputPath, "output", "o", "guides.png", "Output image")
	f.StringVar(&dataPath, "data", "", "CSV file with a header line; the first two columns are bound to the primary and cross axis")
	f.StringVar(&title, "title", "", "Chart title")
	f.BoolVar(&polar, "polar", false, "Use polar coordinates")
	f.BoolVar(&transpose, "transpose", false, "Swap the primary and cross dimension")
	f.Float64Var(&width, "width", 400, "Image width in points")
	f.Float64Var(&height, "height", 300, "Image height in points")
	f.Float64Var(&margin, "margin", 40, "Space around the plotting region in points")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log rendering steps")

	rootCmd.AddCommand(renderCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		guide.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cols, names, err := loadData()
	if err != nil {
		return err
	}
	if len(names) < 2 {
		return fmt.Errorf("need at least two data columns, got %d", len(names))
	}

	cfgs, err := loadAxes()
	if err != nil {
		return err
	}

	w, h, m := vg.Length(width), vg.Length(height), vg.Length(margin)
	region := vg.Rectangle{Min: vg.Point{X: m, Y: m}, Max: vg.Point{X: w - m, Y: h - m}}
	var p guide.Projector
	if polar {
		pp := guide.NewPolar(region)
		pp.Transposed = transpose
		p = pp
	} else {
		p = &guide.Rect{Region: region, Transposed: transpose}
	}

	chart := guide.NewChart(p, guide.TrainScales(cols), cfgs...)
	chart.Title = title
	chart.Bind(guide.Primary, names[0])
	chart.Bind(guide.Cross, names[1])

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	if err := chart.Draw(draw.New(c)); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	return out.Close()
}

func loadData() (data.Columns, []string, error) {
	if dataPath == "" {
		return demoData(), []string{"x", "y"}, nil
	}
	f, err := os.Open(dataPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return data.ReadCSV(f)
}

// loadAxes reads the config file or returns a bottom and a left axis in
// the default style.
func loadAxes() ([]*guide.Config, error) {
	if configPath != "" {
		return guide.LoadConfigFile(configPath)
	}
	style := guide.DefaultStyle(12)
	opts := []guide.Option{
		guide.WithLine(&style.Line),
		guide.WithTickLine(&style.TickLine),
		guide.WithLabel(&style.Label),
		guide.WithGrid(&style.Grid),
	}
	return []*guide.Config{
		guide.MustConfig(append(opts, guide.WithDimension(guide.Primary))...),
		guide.MustConfig(append(opts, guide.WithDimension(guide.Cross))...),
	}, nil
}

func demoData() data.Columns {
	n := 50
	x, y := make([]float64, n), make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 5
		y[i] = math.Sin(x[i])
	}
	return data.Columns{"x": x, "y": y}
}
