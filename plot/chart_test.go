package plot_test

import (
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/curve"
	"github.com/rodrigo-brito/ninjachart/indicator"
	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/plot"
	"github.com/rodrigo-brito/ninjachart/plot/mocks"
	"github.com/rodrigo-brito/ninjachart/scale"
	"github.com/rodrigo-brito/ninjachart/tick"
)

var start = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

func daily(key string, values ...float64) model.Series {
	points := make([]model.DataPoint, 0, len(values))
	for i, v := range values {
		points = append(points, model.DataPoint{
			model.FieldTime:  model.Millis(start.AddDate(0, 0, i)),
			model.FieldClose: v,
		})
	}
	return model.Series{Key: key, XField: model.FieldTime, YField: model.FieldClose, Points: points}
}

func linear(key string, values ...float64) model.Series {
	points := make([]model.DataPoint, 0, len(values))
	for i, v := range values {
		points = append(points, model.DataPoint{"x": float64(i), "y": v})
	}
	return model.NewSeries(key, points...)
}

func randomWalk(n int) []float64 {
	r := rand.New(rand.NewSource(1))
	values := make([]float64, n)
	price := 100.0
	for i := range values {
		price += r.NormFloat64()
		values[i] = price
	}
	return values
}

func TestChart_Render(t *testing.T) {
	chart, err := plot.NewChart(
		plot.WithSize(800, 400),
		plot.WithPadding(plot.Padding{}),
		plot.WithTicks(4, 5),
	)
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15))
	require.NoError(t, err)

	assert.Equal(t, "time", frame.X.Kind)
	assert.Equal(t, scale.Pair{0, 800}, frame.X.Range)
	assert.Equal(t, scale.Pair{9, 15}, frame.Y.Domain)
	assert.Equal(t, scale.Pair{400, 0}, frame.Y.Range)

	require.Len(t, frame.X.Ticks, 4)
	for i, tk := range frame.X.Ticks {
		assert.Equal(t, tick.Day, tk.Unit)
		assert.InDelta(t, float64(i)*800/3, tk.Position, 1e-9)
	}
	require.Len(t, frame.Y.Ticks, 6)
	assert.Equal(t, "9.0", frame.Y.Ticks[0].Label)
	assert.Equal(t, 400.0, frame.Y.Ticks[0].Position)
	assert.InDelta(t, 0, frame.Y.Ticks[5].Position, 1e-9)

	require.Len(t, frame.Series, 1)
	series := frame.Series[0]
	assert.Equal(t, "BTCUSDT", series.Name)
	assert.Equal(t, plot.StyleLine, series.Style)
	require.Len(t, series.Path, 4)
	assert.Equal(t, curve.MoveTo, series.Path[0].Op)
	assert.InDelta(t, 0, series.Path[0].End.X, 1e-9)
	assert.InDelta(t, 1000.0/3, series.Path[0].End.Y, 1e-9)
	assert.InDelta(t, 800, series.Path[3].End.X, 1e-9)
	assert.InDelta(t, 0, series.Path[3].End.Y, 1e-9)
	assert.NotEmpty(t, series.SVG)
}

func TestChart_Indicators(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewSMA(2), indicator.NewRSI(2)))
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15))
	require.NoError(t, err)
	require.Len(t, frame.Indicators, 2)

	sma := frame.Indicators[0]
	assert.Equal(t, "BTCUSDT SMA(2)", sma.Name)
	assert.True(t, sma.Overlay)
	assert.Equal(t, 1, sma.Warmup)
	assert.Nil(t, sma.Axis)
	require.Len(t, sma.Metrics, 1)
	assert.Len(t, sma.Metrics[0].Path, 3)

	rsi := frame.Indicators[1]
	assert.False(t, rsi.Overlay)
	assert.Equal(t, 2, rsi.Warmup)
	require.NotNil(t, rsi.Axis)
	assert.Equal(t, scale.Pair{0, 100}, rsi.Axis.Domain)
	assert.Equal(t, scale.Pair{plot.DefaultPanelHeight, 0}, rsi.Axis.Range)
	require.Len(t, rsi.Metrics, 1)
	assert.Len(t, rsi.Metrics[0].Path, 2)
	for _, segment := range rsi.Metrics[0].Path {
		assert.GreaterOrEqual(t, segment.End.Y, 0.0)
		assert.LessOrEqual(t, segment.End.Y, float64(plot.DefaultPanelHeight))
	}
}

func TestChart_OverlayExtendsDomain(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewBollinger(3, 3)))
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15, 11))
	require.NoError(t, err)

	bands := frame.Indicators[0]
	require.Len(t, bands.Metrics, 3)
	assert.Equal(t, []string{"upper", "middle", "lower"}, []string{bands.Metrics[0].Name, bands.Metrics[1].Name, bands.Metrics[2].Name})
	assert.Less(t, frame.Y.Domain[0], 9.0)
	assert.Greater(t, frame.Y.Domain[1], 15.0)
}

func TestChart_MACDPanel(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewMACD(3, 6, 3)))
	require.NoError(t, err)

	frame, err := chart.Render(daily("ETHUSDT", randomWalk(60)...))
	require.NoError(t, err)

	macd := frame.Indicators[0]
	require.Len(t, macd.Metrics, 3)
	histogram := macd.Metrics[2]
	assert.Equal(t, plot.StyleBar, histogram.Style)
	require.Len(t, histogram.Bars, 53)

	assert.LessOrEqual(t, macd.Axis.Domain[0], 0.0)
	assert.GreaterOrEqual(t, macd.Axis.Domain[1], 0.0)
	baseline := histogram.Bars[0].Baseline
	assert.GreaterOrEqual(t, baseline, 0.0)
	assert.LessOrEqual(t, baseline, float64(plot.DefaultPanelHeight))
	for _, bar := range histogram.Bars {
		assert.Equal(t, baseline, bar.Baseline)
	}
}

func TestChart_Stacking(t *testing.T) {
	chart, err := plot.NewChart(
		plot.WithSize(100, 100),
		plot.WithPadding(plot.Padding{}),
		plot.WithXScale(scale.Linear),
		plot.WithTicks(3, 3),
		plot.WithStacking(true),
	)
	require.NoError(t, err)

	frame, err := chart.Render(linear("a", 1, 1, 1, 1), linear("b", 2, 2, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, scale.Pair{0, 3}, frame.Y.Domain)
	require.Len(t, frame.Series, 2)
	top := frame.Series[1]
	assert.Equal(t, plot.StyleArea, top.Style)
	for _, p := range top.Path.Points() {
		assert.InDelta(t, 0, p.Y, 1e-9)
	}
	require.Len(t, top.Lower, 4)
	for _, p := range top.Lower.Points() {
		assert.InDelta(t, 200.0/3, p.Y, 1e-9)
	}
}

func TestChart_ZeroBaseline(t *testing.T) {
	chart, err := plot.NewChart(plot.WithZeroBaseline(true), plot.WithTicks(5, 5))
	require.NoError(t, err)

	frame, err := chart.Render(daily("volume", 10, 12, 15))
	require.NoError(t, err)
	assert.Equal(t, scale.Pair{0, 16}, frame.Y.Domain)
}

func TestChart_LogScale(t *testing.T) {
	chart, err := plot.NewChart(
		plot.WithSize(800, 400),
		plot.WithPadding(plot.Padding{}),
		plot.WithYScale(scale.Log, 10),
	)
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 1, 10, 100))
	require.NoError(t, err)
	assert.Equal(t, scale.Pair{1, 100}, frame.Y.Domain)
	require.Len(t, frame.Y.Ticks, 3)
	assert.Equal(t, "10", frame.Y.Ticks[1].Label)
	assert.InDelta(t, 200, frame.Y.Ticks[1].Position, 1e-9)

	_, err = chart.Render(daily("BTCUSDT", 0, 10, 100))
	assert.ErrorIs(t, err, model.ErrInvalidDomain)
}

func TestChart_Interpolation(t *testing.T) {
	chart, err := plot.NewChart(plot.WithInterpolation(curve.Monotone))
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15))
	require.NoError(t, err)
	for _, segment := range frame.Series[0].Path[1:] {
		assert.Equal(t, curve.CurveTo, segment.Op)
	}
}

func TestChart_Errors(t *testing.T) {
	chart, err := plot.NewChart()
	require.NoError(t, err)

	_, err = chart.Render()
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	_, err = chart.Render(model.NewSeries("empty"))
	assert.ErrorIs(t, err, model.ErrInsufficientData)

	for _, option := range []plot.Option{
		plot.WithTension(2),
		plot.WithSize(0, 100),
		plot.WithPanelHeight(-1),
		plot.WithPadding(plot.Padding{Left: 500, Right: 500}),
		plot.WithYScale(scale.Log, 1),
		plot.WithIndicators(indicator.NewSMA(0)),
	} {
		_, err := plot.NewChart(option)
		assert.ErrorIs(t, err, model.ErrInvalidParameter)
	}
}

func TestChart_ConcurrentRender(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewEMA(5), indicator.NewMACD(3, 6, 3)))
	require.NoError(t, err)

	series := daily("BTCUSDT", randomWalk(50)...)
	expected, err := chart.Render(series)
	require.NoError(t, err)

	var wg sync.WaitGroup
	frames := make([]*plot.Frame, 8)
	for i := range frames {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			frames[i], _ = chart.Render(series)
		}(i)
	}
	wg.Wait()

	for _, frame := range frames {
		assert.Equal(t, expected, frame)
	}
}

func TestFrame_Draw(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewSMA(2), indicator.NewMACD(1, 2, 2)))
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15))
	require.NoError(t, err)

	renderer := mocks.NewRenderer(t)
	renderer.On("DrawAxis", "x", frame.X).Return(nil).Once()
	renderer.On("DrawAxis", "y", frame.Y).Return(nil).Once()
	renderer.On("DrawAxis", "BTCUSDT MACD(1, 2, 2)", mock.Anything).Return(nil).Once()
	renderer.On("DrawPath", "BTCUSDT", plot.StyleLine, frame.Series[0].Path).Return(nil).Once()
	renderer.On("DrawPath", "BTCUSDT SMA(2) close", plot.StyleLine, mock.Anything).Return(nil).Once()
	renderer.On("DrawPath", "BTCUSDT MACD(1, 2, 2) macd", plot.StyleLine, mock.Anything).Return(nil).Once()
	renderer.On("DrawPath", "BTCUSDT MACD(1, 2, 2) signal", plot.StyleLine, mock.Anything).Return(nil).Once()
	renderer.On("DrawBars", "BTCUSDT MACD(1, 2, 2) histogram", mock.AnythingOfType("[]plot.Bar")).Return(nil).Once()

	require.NoError(t, frame.Draw(renderer))

	t.Run("renderer error", func(t *testing.T) {
		failure := errors.New("canvas closed")
		renderer := mocks.NewRenderer(t)
		renderer.On("DrawAxis", "x", mock.Anything).Return(failure).Once()

		err := frame.Draw(renderer)
		assert.ErrorIs(t, err, failure)
	})
}

func TestFrame_JSON(t *testing.T) {
	chart, err := plot.NewChart(plot.WithIndicators(indicator.NewMACD(1, 2, 2)))
	require.NoError(t, err)

	frame, err := chart.Render(daily("BTCUSDT", 10, 12, 9, 15))
	require.NoError(t, err)

	data, err := json.Marshal(frame)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"style":"bar"`)
	assert.Contains(t, content, `"unit":"day"`)
	assert.Contains(t, content, `"op":"M"`)
	assert.Contains(t, content, `"warmup":2`)
}
