// Package stack accumulates series on top of each other for stacked area and bar charts.
package stack

import (
	"math"

	"github.com/StudioSol/set"

	"github.com/rodrigo-brito/ninjachart/model"
)

// Point is a stacked sample. Base is the lower edge of the band and Cumulative
// the upper edge; Own is the value the series contributes on its own.
type Point struct {
	X          float64 `json:"x"`
	Base       float64 `json:"base"`
	Cumulative float64 `json:"cumulative"`
	Own        float64 `json:"own"`
}

// Layer is one stacked series, in stack order.
type Layer struct {
	Key    string  `json:"key"`
	Points []Point `json:"points"`
}

// Stack piles series in the given order; the first series is the base of the stack.
// Every layer is evaluated at the x values of the base series, and a value missing
// from any series at one of those x values counts as zero.
func Stack(series ...model.Series) []Layer {
	if len(series) == 0 {
		return []Layer{}
	}

	keys := xKeys(series[0])
	running := make([]float64, len(keys))
	layers := make([]Layer, 0, len(series))
	for _, s := range series {
		lookup := valuesByX(s)
		layer := Layer{Key: s.Key, Points: make([]Point, len(keys))}
		for i, x := range keys {
			own := lookup[x]
			layer.Points[i] = Point{
				X:          x,
				Base:       running[i],
				Cumulative: running[i] + own,
				Own:        own,
			}
			running[i] += own
		}
		layers = append(layers, layer)
	}
	return layers
}

// xKeys returns the distinct x values of the series in their first-seen order.
func xKeys(base model.Series) []float64 {
	seen := set.NewLinkedHashSetINT64()
	for _, point := range base.Points {
		x, ok := point.Value(base.X())
		if !ok {
			continue
		}
		seen.Add(int64(math.Float64bits(normalize(x))))
	}

	keys := make([]float64, 0, len(base.Points))
	for bits := range seen.Iter() {
		keys = append(keys, math.Float64frombits(uint64(bits)))
	}
	return keys
}

func valuesByX(s model.Series) map[float64]float64 {
	lookup := make(map[float64]float64, len(s.Points))
	for _, pair := range s.Pairs(s.Y()) {
		lookup[normalize(pair.X)] = pair.Value
	}
	return lookup
}

// normalize folds -0 into 0 so both address the same key.
func normalize(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// Series converts the layer back into a series whose y is the cumulative value.
// The own and base fields carry the band contribution and lower edge.
func (l Layer) Series(xField string) model.Series {
	if xField == "" {
		xField = model.FieldX
	}
	points := make([]model.DataPoint, 0, len(l.Points))
	for _, p := range l.Points {
		points = append(points, model.DataPoint{
			xField:          p.X,
			model.FieldY:    p.Cumulative,
			model.FieldOwn:  p.Own,
			model.FieldBase: p.Base,
		})
	}
	return model.Series{
		Key:    l.Key,
		XField: xField,
		YField: model.FieldY,
		Points: points,
	}
}
