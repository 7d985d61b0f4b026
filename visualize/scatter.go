// Package visualize renders datasets for inspection: per-label scatter plots
// of two features and grayscale mosaics of image-like samples.
package visualize

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/mlprep/dataset"
	"github.com/YuminosukeSato/mlprep/pkg/errors"
	"github.com/YuminosukeSato/mlprep/pkg/log"
)

// Bounds fixes the visible range of both axes.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Validate reports a ValidationError for empty or non-finite ranges.
func (b Bounds) Validate() error {
	for _, v := range []float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.NewValidationError("bounds", "must be finite", b)
		}
	}
	if b.XMin >= b.XMax || b.YMin >= b.YMax {
		return errors.NewValidationError("bounds", "min must be below max", b)
	}
	return nil
}

// ParseBounds reads "xmin,xmax,ymin,ymax".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, errors.NewValidationError("bounds", "expected xmin,xmax,ymin,ymax", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, errors.NewValidationError("bounds", fmt.Sprintf("field %d is not a number", i), s)
		}
		v[i] = f
	}
	b := Bounds{XMin: v[0], XMax: v[1], YMin: v[2], YMax: v[3]}
	return b, b.Validate()
}

// PlotOption configures ScatterPlot.
type PlotOption func(*plotConfig)

type plotConfig struct {
	title         string
	width, height vg.Length
}

// WithTitle sets the plot title.
func WithTitle(title string) PlotOption {
	return func(c *plotConfig) { c.title = title }
}

// WithSize sets the output size.
func WithSize(width, height vg.Length) PlotOption {
	return func(c *plotConfig) {
		c.width = width
		c.height = height
	}
}

// ScatterPlot draws one scatter series per label inside the fixed bounds and
// writes the figure to path. The format follows the file extension
// (.png, .svg, .pdf, ...). The legend sits at the bottom, series are ordered
// by label.
func ScatterPlot(series map[string]dataset.Coordinates, b Bounds, path string, opts ...PlotOption) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if len(series) == 0 {
		return errors.NewModelError("ScatterPlot", "empty data", errors.ErrEmptyData)
	}
	cfg := plotConfig{width: 8 * vg.Inch, height: 6 * vg.Inch}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "x1"
	p.Y.Label.Text = "x2"
	p.Legend.Top = false

	labels := make([]string, 0, len(series))
	for l := range series {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	for i, label := range labels {
		c := series[label]
		if len(c.X) != len(c.Y) {
			return errors.NewDimensionError("ScatterPlot", len(c.X), len(c.Y), 0)
		}
		if len(c.X) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(c.X))
		for j := range c.X {
			xys[j].X = c.X[j]
			xys[j].Y = c.Y[j]
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return errors.Wrapf(err, "scatter series %q", label)
		}
		s.GlyphStyle.Color = plotutil.Color(i)
		s.GlyphStyle.Shape = plotutil.Shape(i)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(label, s)
	}
	p.Add(plotter.NewGrid())

	p.X.Min, p.X.Max = b.XMin, b.XMax
	p.Y.Min, p.Y.Max = b.YMin, b.YMax

	err := errors.SafeExecute("scatter plot", func() error {
		return p.Save(cfg.width, cfg.height, path)
	})
	if err != nil {
		return errors.Wrapf(err, "save %s", path)
	}

	log.GetLogger().Info("Scatter plot written",
		log.ComponentKey, "visualize",
		log.OperationKey, log.OperationRender,
		log.PhaseKey, log.PhaseVisualization,
		log.PathKey, path,
		log.ClassesKey, len(labels),
	)
	return nil
}

// BoundsOf returns the range covering every point in series, widened by pad
// times the span on each side.
func BoundsOf(series map[string]dataset.Coordinates, pad float64) (Bounds, error) {
	b := Bounds{XMin: math.Inf(1), XMax: math.Inf(-1), YMin: math.Inf(1), YMax: math.Inf(-1)}
	for _, c := range series {
		for i := range c.X {
			b.XMin = math.Min(b.XMin, c.X[i])
			b.XMax = math.Max(b.XMax, c.X[i])
		}
		for i := range c.Y {
			b.YMin = math.Min(b.YMin, c.Y[i])
			b.YMax = math.Max(b.YMax, c.Y[i])
		}
	}
	if math.IsInf(b.XMin, 0) || math.IsInf(b.YMin, 0) {
		return Bounds{}, errors.NewModelError("BoundsOf", "empty data", errors.ErrEmptyData)
	}
	widen := func(lo, hi float64) (float64, float64) {
		span := hi - lo
		if span == 0 {
			span = 1
		}
		return lo - pad*span, hi + pad*span
	}
	b.XMin, b.XMax = widen(b.XMin, b.XMax)
	b.YMin, b.YMax = widen(b.YMin, b.YMax)
	return b, nil
}
