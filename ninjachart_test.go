package ninjachart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo-brito/ninjachart/config"
	"github.com/rodrigo-brito/ninjachart/model"
)

func TestRender(t *testing.T) {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]Candle, 0, 30)
	for i := 0; i < 30; i++ {
		price := float64(100 + i)
		candles = append(candles, Candle{
			Pair:  "BTCUSDT",
			Time:  start.Add(time.Duration(i) * time.Hour),
			Open:  price,
			Close: price + 1,
			Low:   price - 1,
			High:  price + 2,
		})
	}
	df := model.NewDataframe("BTCUSDT", candles)

	t.Run("defaults", func(t *testing.T) {
		frame, err := Render(nil, df.Series("", model.FieldClose))
		require.NoError(t, err)
		require.Len(t, frame.Series, 1)
		assert.Equal(t, "BTCUSDT", frame.Series[0].Name)
		assert.Len(t, frame.Series[0].Path, 30)
		assert.Equal(t, "time", frame.X.Kind)
	})

	t.Run("configured indicators", func(t *testing.T) {
		cfg, err := config.Parse([]byte("indicators:\n  - type: rsi\n  - type: ema\n    period: 5\n"))
		require.NoError(t, err)

		frame, err := Render(cfg, df.Series("", model.FieldClose))
		require.NoError(t, err)
		require.Len(t, frame.Indicators, 2)
		assert.Equal(t, "BTCUSDT RSI(14)", frame.Indicators[0].Name)
		assert.False(t, frame.Indicators[0].Overlay)
		assert.True(t, frame.Indicators[1].Overlay)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		cfg := config.Default()
		cfg.Width = 0
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("no series", func(t *testing.T) {
		_, err := Render(nil)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})
}
