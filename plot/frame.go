package plot

import (
	"fmt"

	"github.com/rodrigo-brito/ninjachart/curve"
	"github.com/rodrigo-brito/ninjachart/scale"
	"github.com/rodrigo-brito/ninjachart/tick"
)

// Style tells the renderer how to draw a metric.
type Style string

const (
	StyleLine Style = "line"
	StyleBar  Style = "bar"
	StyleArea Style = "area"
)

var palette = []string{"#2962ff", "#ff6d00", "#00c853", "#d50000", "#aa00ff", "#00b8d4", "#ffd600"}

func color(i int) string {
	return palette[i%len(palette)]
}

// Frame is everything a renderer needs to draw a chart, in output coordinates.
type Frame struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Padding    Padding     `json:"padding"`
	X          Axis        `json:"x"`
	Y          Axis        `json:"y"`
	Series     []Metric    `json:"series"`
	Indicators []Indicator `json:"indicators"`
}

// Axis describes a scale and its ticks projected on the output range.
type Axis struct {
	Kind   string     `json:"kind"`
	Field  string     `json:"field,omitempty"`
	Domain scale.Pair `json:"domain"`
	Range  scale.Pair `json:"range"`
	Ticks  []AxisTick `json:"ticks"`
}

type AxisTick struct {
	tick.Tick
	Position float64 `json:"position"`
}

// Metric is a single drawable line, area or bar set.
type Metric struct {
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Style Style      `json:"style"`
	Path  curve.Path `json:"path,omitempty"`
	SVG   string     `json:"svg,omitempty"`
	// Lower is the bottom edge of a stacked area.
	Lower curve.Path `json:"lower,omitempty"`
	Bars  []Bar      `json:"bars,omitempty"`
}

// Bar spans from Baseline to Y at X.
type Bar struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Baseline float64 `json:"baseline"`
}

// Indicator groups the metrics of a derived series. Overlays share the main y
// axis; other indicators carry their own panel axis.
type Indicator struct {
	Name    string   `json:"name"`
	Overlay bool     `json:"overlay"`
	Warmup  int      `json:"warmup"`
	Axis    *Axis    `json:"axis,omitempty"`
	Metrics []Metric `json:"metrics"`
}

// Renderer draws computed frames. Implementations own every visual concern.
//
//go:generate mockery --name Renderer --output mocks
type Renderer interface {
	DrawAxis(name string, axis Axis) error
	DrawPath(name string, style Style, path curve.Path) error
	DrawBars(name string, bars []Bar) error
}

// Draw hands the frame to a renderer: axes first, then series, then indicators.
func (f *Frame) Draw(renderer Renderer) error {
	if err := renderer.DrawAxis("x", f.X); err != nil {
		return fmt.Errorf("draw x axis: %w", err)
	}
	if err := renderer.DrawAxis("y", f.Y); err != nil {
		return fmt.Errorf("draw y axis: %w", err)
	}

	for _, metric := range f.Series {
		if err := drawMetric(renderer, metric.Name, metric); err != nil {
			return err
		}
	}

	for _, ind := range f.Indicators {
		if ind.Axis != nil {
			if err := renderer.DrawAxis(ind.Name, *ind.Axis); err != nil {
				return fmt.Errorf("draw %s axis: %w", ind.Name, err)
			}
		}
		for _, metric := range ind.Metrics {
			if err := drawMetric(renderer, ind.Name+" "+metric.Name, metric); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawMetric(renderer Renderer, name string, metric Metric) error {
	var err error
	switch metric.Style {
	case StyleBar:
		err = renderer.DrawBars(name, metric.Bars)
	default:
		if err = renderer.DrawPath(name, metric.Style, metric.Path); err == nil && metric.Lower != nil {
			err = renderer.DrawPath(name+" lower", metric.Style, metric.Lower)
		}
	}
	if err != nil {
		return fmt.Errorf("draw %s: %w", name, err)
	}
	return nil
}
