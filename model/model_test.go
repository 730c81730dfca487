package model

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataPoint_Value(t *testing.T) {
	p := DataPoint{"x": 1, "y": math.NaN()}

	v, ok := p.Value("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = p.Value("y")
	assert.False(t, ok, "NaN counts as missing")

	_, ok = p.Value("z")
	assert.False(t, ok)
}

func TestDataPoint_Clone(t *testing.T) {
	p := DataPoint{"x": 1}
	clone := p.Clone()
	clone["x"] = 2
	assert.Equal(t, 1.0, p["x"])
}

func TestMillis(t *testing.T) {
	ts := time.Date(2021, 12, 1, 10, 30, 0, 500*int(time.Microsecond), time.UTC)
	ms := Millis(ts)
	assert.InDelta(t, float64(ts.UnixMilli())+0.5, ms, 1e-6)
	assert.True(t, ts.Equal(FromMillis(ms)))

	p := DataPoint{FieldTime: ms}
	got, ok := p.Time(FieldTime)
	require.True(t, ok)
	assert.True(t, ts.Equal(got))
}

func TestSeries_Pairs(t *testing.T) {
	s := NewSeries("test",
		DataPoint{"x": 0, "y": 10},
		DataPoint{"x": 1},
		DataPoint{"y": 3},
		DataPoint{"x": 3, "y": 15},
	)

	pairs := s.Pairs("y")
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Index: 0, X: 0, Value: 10}, pairs[0])
	assert.Equal(t, Pair{Index: 3, X: 3, Value: 15}, pairs[1])
}

func TestSeries_DefaultFields(t *testing.T) {
	s := Series{Key: "raw"}
	assert.Equal(t, FieldX, s.X())
	assert.Equal(t, FieldY, s.Y())
}

func TestDataframe(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]Candle, 0)
	for i := 0; i < 5; i++ {
		candles = append(candles, Candle{
			Pair:     "BTCUSDT",
			Time:     start.Add(time.Duration(i) * time.Hour),
			Open:     float64(i),
			Close:    float64(i + 1),
			High:     float64(i + 2),
			Low:      float64(i) - 1,
			Volume:   100,
			Metadata: map[string]float64{"lsr": float64(i) / 10},
		})
	}

	df := NewDataframe("BTCUSDT", candles)
	require.Equal(t, 5, df.Len())
	assert.Equal(t, 5.0, df.Close.Last(0))
	assert.Equal(t, start.Add(4*time.Hour), df.LastUpdate)

	t.Run("sample", func(t *testing.T) {
		sample := df.Sample(2)
		assert.Equal(t, 2, sample.Len())
		assert.Equal(t, []float64{4, 5}, sample.Close.Values())
		assert.Equal(t, []float64{0.3, 0.4}, sample.Metadata["lsr"].Values())
		assert.Equal(t, 5, df.Sample(10).Len())
	})

	t.Run("series", func(t *testing.T) {
		series := df.Series("", "")
		assert.Equal(t, "BTCUSDT", series.Key)
		assert.Equal(t, FieldTime, series.XField)
		assert.Equal(t, FieldClose, series.YField)
		require.Len(t, series.Points, 5)
		assert.Equal(t, Millis(start), series.Points[0][FieldTime])
		assert.Equal(t, 1.0, series.Points[0][FieldClose])
		assert.Equal(t, 0.1, series.Points[1]["lsr"])
	})
}

func TestHeikinAshi(t *testing.T) {
	ha := NewHeikinAshi()
	first := Candle{Pair: "BTCUSDT", Open: 10, Close: 12, High: 13, Low: 9}.ToHeikinAshi(ha)
	assert.Equal(t, 11.0, first.Open)
	assert.Equal(t, 11.0, first.Close)
	assert.Equal(t, 13.0, first.High)
	assert.Equal(t, 9.0, first.Low)

	second := Candle{Pair: "BTCUSDT", Open: 12, Close: 14, High: 15, Low: 11}.ToHeikinAshi(ha)
	assert.Equal(t, 11.0, second.Open)
	assert.Equal(t, 13.0, second.Close)
}

func TestErrors(t *testing.T) {
	var err error = &ParameterError{Name: "period", Value: 0, Reason: "must be positive"}
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	assert.EqualError(t, err, "invalid parameter: period=0 must be positive")

	err = &DomainError{Value: -1, Reason: "must be positive"}
	assert.True(t, errors.Is(err, ErrInvalidDomain))
	assert.False(t, errors.Is(err, ErrInvalidParameter))
}

func TestNumDecPlaces(t *testing.T) {
	assert.Equal(t, int64(0), NumDecPlaces(10))
	assert.Equal(t, int64(2), NumDecPlaces(0.25))
	assert.Equal(t, int64(1), NumDecPlaces(-2.5))
}
