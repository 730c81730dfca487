package stack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/model"
)

func constant(key string, v float64, xs ...float64) model.Series {
	points := make([]model.DataPoint, 0, len(xs))
	for _, x := range xs {
		points = append(points, model.DataPoint{"x": x, "y": v})
	}
	return model.NewSeries(key, points...)
}

func TestStack_Constant(t *testing.T) {
	series := make([]model.Series, 0, 5)
	for i := 0; i < 5; i++ {
		series = append(series, constant("s", 2.5, 1, 2, 3))
	}

	layers := Stack(series...)
	require.Len(t, layers, 5)
	for k, layer := range layers {
		require.Len(t, layer.Points, 3)
		for _, p := range layer.Points {
			assert.Equal(t, float64(k+1)*2.5, p.Cumulative)
			assert.Equal(t, float64(k)*2.5, p.Base)
			assert.Equal(t, 2.5, p.Own)
		}
	}
}

func TestStack_MissingValues(t *testing.T) {
	base := constant("base", 10, 0, 1, 2)
	sparse := model.NewSeries("sparse",
		model.DataPoint{"x": 1, "y": 5},
		model.DataPoint{"x": 2},
		model.DataPoint{"x": 7, "y": 100},
	)
	top := constant("top", 1, 0, 1, 2)

	layers := Stack(base, sparse, top)
	require.Len(t, layers, 3)

	assert.Equal(t, []Point{
		{X: 0, Base: 0, Cumulative: 10, Own: 10},
		{X: 1, Base: 0, Cumulative: 10, Own: 10},
		{X: 2, Base: 0, Cumulative: 10, Own: 10},
	}, layers[0].Points)

	assert.Equal(t, []Point{
		{X: 0, Base: 10, Cumulative: 10, Own: 0},
		{X: 1, Base: 10, Cumulative: 15, Own: 5},
		{X: 2, Base: 10, Cumulative: 10, Own: 0},
	}, layers[1].Points, "x values outside the base are ignored")

	assert.Equal(t, []float64{11, 16, 11}, []float64{
		layers[2].Points[0].Cumulative,
		layers[2].Points[1].Cumulative,
		layers[2].Points[2].Cumulative,
	})
}

func TestStack_Keys(t *testing.T) {
	base := model.NewSeries("base",
		model.DataPoint{"x": 3, "y": 1},
		model.DataPoint{"x": 1, "y": 1},
		model.DataPoint{"x": 3, "y": 1},
		model.DataPoint{"y": 1},
		model.DataPoint{"x": math.Copysign(0, -1), "y": 1},
	)
	other := constant("other", 2, 0)

	layers := Stack(base, other)
	xs := make([]float64, 0)
	for _, p := range layers[1].Points {
		xs = append(xs, p.X)
	}
	assert.Equal(t, []float64{3, 1, 0}, xs, "keys keep first-seen order without duplicates")
	assert.Equal(t, 3.0, layers[1].Points[2].Cumulative, "negative zero matches zero")
}

func TestStack_Empty(t *testing.T) {
	assert.Empty(t, Stack())

	layers := Stack(model.NewSeries("empty"), constant("a", 1, 1))
	require.Len(t, layers, 2)
	assert.Empty(t, layers[1].Points)
}

func TestStack_TimeSeries(t *testing.T) {
	a := model.Series{Key: "a", XField: model.FieldTime, YField: model.FieldVolume, Points: []model.DataPoint{
		{model.FieldTime: 1000, model.FieldVolume: 4},
		{model.FieldTime: 2000, model.FieldVolume: 6},
	}}
	b := model.Series{Key: "b", XField: model.FieldTime, YField: model.FieldVolume, Points: []model.DataPoint{
		{model.FieldTime: 2000, model.FieldVolume: 1},
	}}

	layers := Stack(a, b)
	series := layers[1].Series(model.FieldTime)
	assert.Equal(t, "b", series.Key)
	assert.Equal(t, model.FieldTime, series.X())
	assert.Equal(t, []model.DataPoint{
		{model.FieldTime: 1000, "y": 4, "own": 0, "base": 4},
		{model.FieldTime: 2000, "y": 7, "own": 1, "base": 6},
	}, series.Points)

	assert.Equal(t, model.FieldX, layers[0].Series("").X())
}
