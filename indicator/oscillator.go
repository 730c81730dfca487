package indicator

import (
	"github.com/markcheno/go-talib"

	"github.com/rodrigo-brito/ninjachart/model"
)

// rsi uses Wilder smoothing. The first output is at index period, once period
// deltas have been seen.
func rsi(pairs []model.Pair, period int, xField, field string) []model.DataPoint {
	if len(pairs) <= period {
		return []model.DataPoint{}
	}

	points := make([]model.DataPoint, 0, len(pairs)-period)
	var avgGain, avgLoss float64
	for i := 1; i < len(pairs); i++ {
		gain, loss := 0.0, 0.0
		if delta := pairs[i].Value - pairs[i-1].Value; delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		switch {
		case i < period:
			avgGain += gain
			avgLoss += loss
			continue
		case i == period:
			avgGain = (avgGain + gain) / float64(period)
			avgLoss = (avgLoss + loss) / float64(period)
		default:
			avgGain = (avgGain*float64(period-1) + gain) / float64(period)
			avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		}

		p := point(xField, pairs[i])
		p[field] = relativeStrength(avgGain, avgLoss)
		points = append(points, p)
	}
	return points
}

func relativeStrength(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}

// macd emits points only where both the MACD line and its signal exist. The
// signal is seeded with the mean of the first signal MACD values.
func macd(pairs []model.Pair, fast, slow, signal int, xField string) []model.DataPoint {
	values := pairValues(pairs)
	fastEMA, fastOK := emaValues(values, fast)
	slowEMA, slowOK := emaValues(values, slow)

	lineIndex := make([]int, 0, len(values))
	line := make([]float64, 0, len(values))
	for i := range values {
		if fastOK[i] && slowOK[i] {
			lineIndex = append(lineIndex, i)
			line = append(line, fastEMA[i]-slowEMA[i])
		}
	}

	signalLine, signalOK := emaValues(line, signal)
	points := make([]model.DataPoint, 0, len(line))
	for j, i := range lineIndex {
		if !signalOK[j] {
			continue
		}
		p := point(xField, pairs[i])
		p[model.FieldMACD] = line[j]
		p[model.FieldSignal] = signalLine[j]
		p[model.FieldHistogram] = line[j] - signalLine[j]
		points = append(points, p)
	}
	return points
}

// atr reads high, low and close from every point carrying all three.
func atr(series model.Series, period int) []model.DataPoint {
	xField := series.X()
	var (
		index             []model.Pair
		high, low, closes []float64
	)
	for i, candle := range series.Points {
		x, okX := candle.Value(xField)
		h, okH := candle.Value(model.FieldHigh)
		l, okL := candle.Value(model.FieldLow)
		c, okC := candle.Value(model.FieldClose)
		if !okX || !okH || !okL || !okC {
			continue
		}
		index = append(index, model.Pair{Index: i, X: x, Value: c})
		high = append(high, h)
		low = append(low, l)
		closes = append(closes, c)
	}

	if len(index) <= period {
		return []model.DataPoint{}
	}

	values := talib.Atr(high, low, closes, period)
	points := make([]model.DataPoint, 0, len(index)-period)
	for i := period; i < len(index); i++ {
		p := point(xField, index[i])
		p[model.FieldATR] = values[i]
		points = append(points, p)
	}
	return points
}
