// Package plot runs the charting pipeline: derived series, scales, ticks and
// curves are computed from raw series into a Frame that a Renderer draws.
package plot

import (
	"fmt"
	"time"

	"github.com/rodrigo-brito/ninjachart/curve"
	"github.com/rodrigo-brito/ninjachart/indicator"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/scale"
)

const (
	DefaultWidth       = 800
	DefaultHeight      = 400
	DefaultPanelHeight = 120
	DefaultXTicks      = 8
	DefaultYTicks      = 10
)

// Padding is the space, in output units, between the frame border and the plot area.
type Padding struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Chart holds the configuration of a chart. It is not modified by Render, so a
// single chart can render different datasets concurrently.
type Chart struct {
	width       float64
	height      float64
	panelHeight float64
	padding     Padding

	xKind scale.Kind
	yKind scale.Kind
	yBase float64

	xTicks int
	yTicks int

	interpolation curve.Mode
	tension       float64

	indicators   []indicator.Spec
	stacked      bool
	zeroBaseline bool
	location     *time.Location
}

// Option configures a Chart in NewChart.
type Option func(*Chart)

// WithSize sets the output size of the main panel.
func WithSize(width, height float64) Option {
	return func(chart *Chart) {
		chart.width = width
		chart.height = height
	}
}

// WithPanelHeight sets the height of each non-overlay indicator panel.
func WithPanelHeight(height float64) Option {
	return func(chart *Chart) {
		chart.panelHeight = height
	}
}

// WithPadding sets the space between the chart edges and the plot area.
func WithPadding(padding Padding) Option {
	return func(chart *Chart) {
		chart.padding = padding
	}
}

// WithXScale selects the x scale kind. Default Time.
func WithXScale(kind scale.Kind) Option {
	return func(chart *Chart) {
		chart.xKind = kind
	}
}

// WithYScale selects the y scale kind. The base is only used by log scales.
func WithYScale(kind scale.Kind, base float64) Option {
	return func(chart *Chart) {
		chart.yKind = kind
		chart.yBase = base
	}
}

// WithTicks sets the requested number of ticks for each axis.
func WithTicks(x, y int) Option {
	return func(chart *Chart) {
		chart.xTicks = x
		chart.yTicks = y
	}
}

// WithInterpolation selects how line paths pass through the points. Default Linear.
func WithInterpolation(mode curve.Mode) Option {
	return func(chart *Chart) {
		chart.interpolation = mode
	}
}

// WithTension sets the cardinal curve tension in [0, 1].
func WithTension(tension float64) Option {
	return func(chart *Chart) {
		chart.tension = tension
	}
}

// WithIndicators derives the indicators from every input series.
func WithIndicators(specs ...indicator.Spec) Option {
	return func(chart *Chart) {
		chart.indicators = append(chart.indicators, specs...)
	}
}

// WithStacking stacks the input series in the given order.
func WithStacking(stacked bool) Option {
	return func(chart *Chart) {
		chart.stacked = stacked
	}
}

// WithZeroBaseline extends the y domain to include zero, as bar charts need.
func WithZeroBaseline(enabled bool) Option {
	return func(chart *Chart) {
		chart.zeroBaseline = enabled
	}
}

// WithLocation aligns time ticks in the given location. Default UTC.
func WithLocation(location *time.Location) Option {
	return func(chart *Chart) {
		chart.location = location
	}
}

// NewChart creates a chart, validating every option.
func NewChart(options ...Option) (*Chart, error) {
	chart := &Chart{
		width:         DefaultWidth,
		height:        DefaultHeight,
		panelHeight:   DefaultPanelHeight,
		padding:       Padding{Top: 10, Right: 10, Bottom: 30, Left: 50},
		xKind:         scale.Time,
		yKind:         scale.Linear,
		xTicks:        DefaultXTicks,
		yTicks:        DefaultYTicks,
		interpolation: curve.Linear,
		tension:       curve.DefaultTension,
		location:      time.UTC,
	}
	for _, option := range options {
		option(chart)
	}

	if chart.width <= 0 || chart.height <= 0 {
		return nil, &model.ParameterError{Name: "size", Value: fmt.Sprintf("%vx%v", chart.width, chart.height), Reason: "must be positive"}
	}
	if chart.panelHeight <= 0 {
		return nil, &model.ParameterError{Name: "panel_height", Value: chart.panelHeight, Reason: "must be positive"}
	}
	if chart.padding.Left+chart.padding.Right >= chart.width || chart.padding.Top+chart.padding.Bottom >= chart.height {
		return nil, &model.ParameterError{Name: "padding", Value: chart.padding, Reason: "leaves no plot area"}
	}
	if chart.tension < 0 || chart.tension > 1 {
		return nil, &model.ParameterError{Name: "tension", Value: chart.tension, Reason: "must be within [0, 1]"}
	}
	if chart.yKind == scale.Log && chart.yBase == 1 {
		return nil, &model.ParameterError{Name: "base", Value: chart.yBase, Reason: "log base cannot be 1"}
	}
	if chart.location == nil {
		chart.location = time.UTC
	}
	for _, spec := range chart.indicators {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name(), err)
		}
	}
	return chart, nil
}
