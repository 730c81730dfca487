package indicator

import (
	"github.com/markcheno/go-talib"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/rodrigo-brito/ninjachart/model"
)

// sma averages every trailing window on its own, so a large value leaves no
// residue in later windows.
func sma(pairs []model.Pair, period int, xField, field string) []model.DataPoint {
	if len(pairs) < period {
		return []model.DataPoint{}
	}

	values := pairValues(pairs)
	points := make([]model.DataPoint, 0, len(pairs)-period+1)
	for i := period - 1; i < len(pairs); i++ {
		p := point(xField, pairs[i])
		p[field] = stat.Mean(values[i-period+1:i+1], nil)
		points = append(points, p)
	}
	return points
}

// emaValues returns the EMA at every index from period-1 on, seeded with the
// SMA of the first period values. Earlier indices are reported as not ok.
func emaValues(values []float64, period int) ([]float64, []bool) {
	ok := make([]bool, len(values))
	if len(values) < period {
		return make([]float64, len(values)), ok
	}

	result := talib.Ema(values, period)
	for i := period - 1; i < len(values); i++ {
		ok[i] = true
	}
	return result, ok
}

func ema(pairs []model.Pair, period int, xField, field string) []model.DataPoint {
	values, ok := emaValues(pairValues(pairs), period)
	points := make([]model.DataPoint, 0, len(pairs))
	for i, pair := range pairs {
		if !ok[i] {
			continue
		}
		p := point(xField, pair)
		p[field] = values[i]
		points = append(points, p)
	}
	return points
}

func wma(pairs []model.Pair, period int, xField, field string) []model.DataPoint {
	if len(pairs) < period {
		return []model.DataPoint{}
	}

	values := talib.Wma(pairValues(pairs), period)
	points := make([]model.DataPoint, 0, len(pairs)-period+1)
	for i := period - 1; i < len(pairs); i++ {
		p := point(xField, pairs[i])
		p[field] = values[i]
		points = append(points, p)
	}
	return points
}

// bollinger uses the population standard deviation of each trailing window.
func bollinger(pairs []model.Pair, period int, deviations float64, xField string) []model.DataPoint {
	if len(pairs) < period {
		return []model.DataPoint{}
	}

	values := pairValues(pairs)
	points := make([]model.DataPoint, 0, len(pairs)-period+1)
	for i := period - 1; i < len(pairs); i++ {
		mean, std := stat.PopMeanStdDev(values[i-period+1:i+1], nil)
		p := point(xField, pairs[i])
		p[model.FieldMiddle] = mean
		p[model.FieldUpper] = mean + deviations*std
		p[model.FieldLower] = mean - deviations*std
		points = append(points, p)
	}
	return points
}

func pairValues(pairs []model.Pair) []float64 {
	return lo.Map(pairs, func(pair model.Pair, _ int) float64 {
		return pair.Value
	})
}
