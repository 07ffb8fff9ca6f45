// Copyright: This file is part of valid8r, released under https://github.com/valid8r/valid8r/blob/main/LICENSE

// package chart renders line and scatter charts as embeddable SVG markup.
//
// Output is a pure function of the inputs (no timestamps, no randomness), so
// reports built from the same data are byte-identical across runs.
package chart

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gonum.org/v1/gonum/floats"
)

// Config is the axis and title metadata for a chart. All fields are optional.
type Config struct {
	Title  string
	XLabel string
	XUnits string
	YLabel string
	YUnits string
}

// Series is one named sequence of (x, y) points.
type Series struct {
	Name string
	X, Y []float64
}

// Canvas size and margins, in SVG user units.
const (
	width   = 640
	height  = 400
	margin  = 56
	plotW   = width - 2*margin
	plotH   = height - 2*margin
)

var palette = []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#8c564b"}

//go:embed templates/chart.tmpl.svg
var chartTmpl string

var tmpl = template.Must(template.New("chart.tmpl.svg").Funcs(sprig.TxtFuncMap()).Parse(chartTmpl))

// Lines renders each series as a polyline on shared axes.
func Lines(cfg Config, series ...Series) (string, error) {
	return render(cfg, series, nil)
}

// Scatter renders points as dots, plus optional overlay lines (e.g. a fit).
func Scatter(cfg Config, points Series, lines ...Series) (string, error) {
	return render(cfg, lines, []Series{points})
}

type plot struct {
	Name    string
	Color   string
	Points  string // "x,y x,y ..." in SVG coordinates
	Scatter bool
}

type chartData struct {
	Config
	Width, Height, Margin int
	XAxis, YAxis          string // axis captions with units
	XMin, XMax            string
	YMin, YMax            string
	Plots                 []plot
}

func render(cfg Config, lines, dots []Series) (string, error) {
	all := append(append([]Series{}, dots...), lines...)
	var xs, ys []float64
	for _, s := range all {
		if len(s.X) != len(s.Y) {
			return "", fmt.Errorf("chart: series %q: %v x values, %v y values", s.Name, len(s.X), len(s.Y))
		}
		xs = append(xs, s.X...)
		ys = append(ys, s.Y...)
	}
	if len(xs) == 0 {
		return "", fmt.Errorf("chart: no points to render")
	}
	if floats.HasNaN(xs) || floats.HasNaN(ys) {
		return "", fmt.Errorf("chart: NaN point")
	}
	// Include the origin, like the original charts.
	xmin, xmax := min(floats.Min(xs), 0), max(floats.Max(xs), 0)
	ymin, ymax := min(floats.Min(ys), 0), max(floats.Max(ys), 0)
	if xmin == xmax {
		xmax = xmin + 1
	}
	if ymin == ymax {
		ymax = ymin + 1
	}
	toX := func(x float64) float64 { return margin + (x-xmin)/(xmax-xmin)*plotW }
	toY := func(y float64) float64 { return height - margin - (y-ymin)/(ymax-ymin)*plotH }

	d := chartData{
		Config: cfg,
		Width:  width, Height: height, Margin: margin,
		XAxis: caption(cfg.XLabel, cfg.XUnits, "x"),
		YAxis: caption(cfg.YLabel, cfg.YUnits, "y"),
		XMin: num(xmin), XMax: num(xmax),
		YMin: num(ymin), YMax: num(ymax),
	}
	for i, s := range all {
		var b strings.Builder
		for j := range s.X {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v,%v", num(toX(s.X[j])), num(toY(s.Y[j])))
		}
		d.Plots = append(d.Plots, plot{
			Name:    s.Name,
			Color:   palette[i%len(palette)],
			Points:  b.String(),
			Scatter: i < len(dots),
		})
	}
	w := &strings.Builder{}
	if err := tmpl.Execute(w, d); err != nil {
		return "", err
	}
	return w.String(), nil
}

func caption(label, units, fallback string) string {
	if label == "" {
		label = fallback
	}
	if units != "" {
		return fmt.Sprintf("%v (%v)", label, units)
	}
	return label
}

// num formats coordinates and tick labels with stable precision.
func num(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }
