package plot

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/ninjachart/curve"
	"github.com/rodrigo-brito/ninjachart/indicator"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/scale"
	"github.com/rodrigo-brito/ninjachart/stack"
	"github.com/rodrigo-brito/ninjachart/tick"
)

// layer is one field of a series to be drawn.
type layer struct {
	name   string
	series model.Series
	field  string
	lower  string
	style  Style
}

type derived struct {
	spec   indicator.Spec
	series model.Series
	layers []layer
}

// Render computes a frame from the input series: indicators and stacking
// first, then scales over every series in play, ticks, and curves.
func (c *Chart) Render(series ...model.Series) (*Frame, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("render: %w", model.ErrInsufficientData)
	}

	indicators, err := c.derive(series)
	if err != nil {
		return nil, err
	}
	overlays := lo.Filter(indicators, func(d derived, _ int) bool { return d.spec.Overlay() })

	mainLayers := c.mainLayers(series)
	inPlay := append(append([]layer{}, mainLayers...), lo.FlatMap(overlays, func(d derived, _ int) []layer {
		return d.layers
	})...)

	xScale, err := c.xScale(mainLayers)
	if err != nil {
		return nil, err
	}
	yScale, err := c.yScale(inPlay)
	if err != nil {
		return nil, err
	}

	frame := &Frame{
		Width:      c.width,
		Height:     c.height,
		Padding:    c.padding,
		Series:     make([]Metric, 0, len(mainLayers)),
		Indicators: make([]Indicator, 0, len(indicators)),
	}
	if frame.X, err = c.axis(xScale, series[0].X(), c.xTicks); err != nil {
		return nil, err
	}
	if frame.Y, err = c.axis(yScale, series[0].Y(), c.yTicks); err != nil {
		return nil, err
	}

	for i, l := range mainLayers {
		metric, err := c.metric(l, xScale, yScale)
		if err != nil {
			return nil, err
		}
		metric.Color = color(i)
		frame.Series = append(frame.Series, metric)
	}

	colorIndex := len(mainLayers)
	for _, d := range indicators {
		panelScale := yScale
		ind := Indicator{
			Name:    d.series.Key,
			Overlay: d.spec.Overlay(),
			Warmup:  d.spec.Warmup(),
			Metrics: make([]Metric, 0, len(d.layers)),
		}
		if !d.spec.Overlay() {
			panelScale = c.panelScale(d)
			axis, err := c.axis(panelScale, d.series.Y(), panelTicks(c.yTicks))
			if err != nil {
				return nil, err
			}
			ind.Axis = &axis
		}

		for _, l := range d.layers {
			metric, err := c.metric(l, xScale, panelScale)
			if err != nil {
				return nil, err
			}
			metric.Color = color(colorIndex)
			colorIndex++
			ind.Metrics = append(ind.Metrics, metric)
		}
		frame.Indicators = append(frame.Indicators, ind)
	}
	return frame, nil
}

func (c *Chart) derive(series []model.Series) ([]derived, error) {
	result := make([]derived, 0, len(series)*len(c.indicators))
	for _, s := range series {
		for _, spec := range c.indicators {
			out, err := indicator.Compute(s, spec)
			if err != nil {
				return nil, err
			}
			result = append(result, derived{spec: spec, series: out, layers: indicatorLayers(spec, out)})
		}
	}
	return result, nil
}

func indicatorLayers(spec indicator.Spec, out model.Series) []layer {
	switch spec.Kind {
	case indicator.Bollinger:
		return []layer{
			{name: model.FieldUpper, series: out, field: model.FieldUpper, style: StyleLine},
			{name: model.FieldMiddle, series: out, field: model.FieldMiddle, style: StyleLine},
			{name: model.FieldLower, series: out, field: model.FieldLower, style: StyleLine},
		}
	case indicator.MACD:
		return []layer{
			{name: model.FieldMACD, series: out, field: model.FieldMACD, style: StyleLine},
			{name: model.FieldSignal, series: out, field: model.FieldSignal, style: StyleLine},
			{name: model.FieldHistogram, series: out, field: model.FieldHistogram, style: StyleBar},
		}
	}
	return []layer{{name: out.YField, series: out, field: out.YField, style: StyleLine}}
}

func (c *Chart) mainLayers(series []model.Series) []layer {
	if !c.stacked {
		return lo.Map(series, func(s model.Series, _ int) layer {
			return layer{name: s.Key, series: s, field: s.Y(), style: StyleLine}
		})
	}

	xField := series[0].X()
	return lo.Map(stack.Stack(series...), func(l stack.Layer, _ int) layer {
		return layer{name: l.Key, series: l.Series(xField), field: model.FieldY, lower: model.FieldBase, style: StyleArea}
	})
}

func (c *Chart) xScale(layers []layer) (*scale.Scale, error) {
	domain, ok := scale.XExtent(lo.Map(layers, func(l layer, _ int) model.Series { return l.series })...)
	if !ok {
		return nil, fmt.Errorf("x domain: %w", model.ErrInsufficientData)
	}
	if c.xKind == scale.Linear {
		domain[0], domain[1] = tick.NiceDomain(domain[0], domain[1], c.xTicks)
	}

	s, err := scale.New(c.xKind, domain, scale.Pair{c.padding.Left, c.width - c.padding.Right}, 0)
	if err != nil {
		return nil, fmt.Errorf("x scale: %w", err)
	}
	return s, nil
}

func (c *Chart) yScale(layers []layer) (*scale.Scale, error) {
	domain, ok := extent(layers)
	if !ok {
		return nil, fmt.Errorf("y domain: %w", model.ErrInsufficientData)
	}
	if c.zeroBaseline && c.yKind != scale.Log {
		domain = domain.IncludeZero()
	}
	if c.yKind != scale.Log {
		domain[0], domain[1] = tick.NiceDomain(domain[0], domain[1], c.yTicks)
	}

	s, err := scale.New(c.yKind, domain, scale.Pair{c.height - c.padding.Bottom, c.padding.Top}, c.yBase)
	if err != nil {
		return nil, fmt.Errorf("y scale: %w", err)
	}
	return s, nil
}

// panelScale builds the y scale of a non-overlay indicator. Bounded oscillators
// keep their fixed bounds; bar metrics include zero.
func (c *Chart) panelScale(d derived) *scale.Scale {
	domain, ok := extent(d.layers)
	if min, max, bounded := d.spec.Bounds(); bounded {
		domain, ok = scale.Pair{min, max}, true
	} else if ok {
		if lo.ContainsBy(d.layers, func(l layer) bool { return l.style == StyleBar }) {
			domain = domain.IncludeZero()
		}
		domain[0], domain[1] = tick.NiceDomain(domain[0], domain[1], panelTicks(c.yTicks))
	}
	if !ok {
		domain = scale.Pair{0, 1}
	}
	return scale.NewLinear(domain, scale.Pair{c.panelHeight, 0})
}

func panelTicks(count int) int {
	if count/2 < 2 {
		return 2
	}
	return count / 2
}

func extent(layers []layer) (scale.Pair, bool) {
	var (
		result scale.Pair
		found  bool
	)
	for _, l := range layers {
		for _, field := range []string{l.field, l.lower} {
			if field == "" {
				continue
			}
			e, ok := scale.Extent(field, l.series)
			if !ok {
				continue
			}
			result = scale.Union(result, e, found)
			found = true
		}
	}
	return result, found
}

func (c *Chart) axis(s *scale.Scale, field string, count int) (Axis, error) {
	axis := Axis{
		Kind:   s.Kind().String(),
		Field:  field,
		Domain: s.Domain(),
		Range:  s.Range(),
	}

	domain := s.Domain()
	lower, upper := math.Min(domain[0], domain[1]), math.Max(domain[0], domain[1])
	tolerance := (upper - lower) * 1e-9
	ticks := tick.ForScale(s, count, tick.WithLocation(c.location))
	axis.Ticks = make([]AxisTick, 0, len(ticks))
	for _, t := range ticks {
		if t.Value < lower-tolerance || t.Value > upper+tolerance {
			continue
		}
		position, err := s.Scale(t.Value)
		if err != nil {
			return Axis{}, fmt.Errorf("%s axis: %w", field, err)
		}
		axis.Ticks = append(axis.Ticks, AxisTick{Tick: t, Position: position})
	}
	return axis, nil
}

func (c *Chart) metric(l layer, xScale, yScale *scale.Scale) (Metric, error) {
	metric := Metric{Name: l.name, Style: l.style}

	points, err := project(l.series, l.field, xScale, yScale)
	if err != nil {
		return Metric{}, fmt.Errorf("%s: %w", l.name, err)
	}

	if l.style == StyleBar {
		baseline := yScale.Range()[0]
		if zero, err := yScale.Scale(0); err == nil {
			baseline = zero
		}
		metric.Bars = lo.Map(points, func(p curve.Point, _ int) Bar {
			return Bar{X: p.X, Y: p.Y, Baseline: baseline}
		})
		return metric, nil
	}

	if metric.Path, err = curve.Build(points, c.interpolation, curve.WithTension(c.tension)); err != nil {
		return Metric{}, err
	}
	metric.SVG = metric.Path.SVG()

	if l.lower != "" {
		lower, err := project(l.series, l.lower, xScale, yScale)
		if err != nil {
			return Metric{}, fmt.Errorf("%s: %w", l.name, err)
		}
		if metric.Lower, err = curve.Build(lower, c.interpolation, curve.WithTension(c.tension)); err != nil {
			return Metric{}, err
		}
	}
	return metric, nil
}

// project maps the samples of a field through the x and y scales.
func project(series model.Series, field string, xScale, yScale *scale.Scale) ([]curve.Point, error) {
	pairs := series.Pairs(field)
	points := make([]curve.Point, 0, len(pairs))
	for _, pair := range pairs {
		x, err := xScale.Scale(pair.X)
		if err != nil {
			return nil, err
		}
		y, err := yScale.Scale(pair.Value)
		if err != nil {
			return nil, err
		}
		points = append(points, curve.Point{X: x, Y: y})
	}
	return points, nil
}
