package scale

import (
	"math"

	"github.com/samber/lo"

	"github.com/rodrigo-brito/ninjachart/model"
)

// Extent returns the [min, max] of a field over every series in play.
// Each series contributes the samples that carry both its x field and the field.
// It reports false when no sample exists.
func Extent(field string, series ...model.Series) (Pair, bool) {
	values := lo.FlatMap(series, func(s model.Series, _ int) []float64 {
		f := field
		if f == "" {
			f = s.Y()
		}
		return lo.Map(s.Pairs(f), func(p model.Pair, _ int) float64 {
			return p.Value
		})
	})
	values = lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsInf(v, 0)
	})
	if len(values) == 0 {
		return Pair{}, false
	}
	return Pair{lo.Min(values), lo.Max(values)}, true
}

// XExtent returns the extent of the x field of every series.
func XExtent(series ...model.Series) (Pair, bool) {
	var (
		extent Pair
		found  bool
	)
	for _, s := range series {
		e, ok := Extent(s.X(), s)
		if !ok {
			continue
		}
		extent = Union(extent, e, found)
		found = true
	}
	return extent, found
}

// Union merges two extents. When hasA is false only b is considered.
func Union(a, b Pair, hasA bool) Pair {
	if !hasA {
		return b
	}
	return Pair{math.Min(a[0], b[0]), math.Max(a[1], b[1])}
}

// Pad widens the pair by a fraction of its span on both sides.
func (p Pair) Pad(fraction float64) Pair {
	padding := p.Span() * fraction
	return Pair{p[0] - padding, p[1] + padding}
}

// IncludeZero extends the pair so that it contains zero, as bar charts need a zero baseline.
func (p Pair) IncludeZero() Pair {
	return Pair{math.Min(p[0], 0), math.Max(p[1], 0)}
}
