// Package tick chooses axis tick positions: "nice" numeric domains on the
// {1, 2, 5}×10^k ladder and calendar-aligned time ticks.
//
// None of the planners fail; degenerate inputs always yield at least one tick.
package tick

import (
	"math"
	"strconv"
	"time"

	"github.com/rodrigo-brito/ninjachart/model"
	"github.com/rodrigo-brito/ninjachart/scale"
)

// Tick is a chosen domain value with its label. Time ticks also carry the
// instant and the calendar unit they are aligned to.
type Tick struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"-"`
	Unit  Unit      `json:"unit,omitempty"`
	Label string    `json:"label"`
}

// NiceDomain widens [min, max] to multiples of a step from the {1, 2, 5}×10^k ladder.
// A degenerate domain (min == max) becomes [min-1, max+1].
func NiceDomain(min, max float64, count int) (float64, float64) {
	if count <= 0 {
		count = 1
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min - 1, max + 1
	}
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	// the span itself can overflow for finite bounds
	if math.IsInf(max-min, 0) {
		return min, max
	}

	step := niceStep(min, max, count)
	niceMin, niceMax := math.Floor(min/step)*step, math.Ceil(max/step)*step
	// guard against the product rounding past the bound
	if niceMin > min {
		niceMin -= step
	}
	if niceMax < max {
		niceMax += step
	}
	if math.IsInf(niceMin, 0) || math.IsInf(niceMax, 0) {
		return min, max
	}
	return niceMin, niceMax
}

func niceStep(min, max float64, count int) float64 {
	span := max - min
	step := math.Pow(10, math.Floor(math.Log10(span/float64(count))))
	ratio := span / (float64(count) * step)
	if ratio >= 5 {
		step *= 5
	} else if ratio >= 2 {
		step *= 2
	}
	return step
}

// Numeric returns count+1 evenly spaced ticks over the nice domain of [min, max].
func Numeric(min, max float64, count int) []Tick {
	if count <= 0 {
		count = 1
	}
	niceMin, niceMax := NiceDomain(min, max, count)
	if math.IsInf(niceMin, 0) || math.IsInf(niceMax, 0) || math.IsNaN(niceMin) || math.IsNaN(niceMax) {
		return []Tick{numericTick(min, 0)}
	}

	if math.IsInf(niceMax-niceMin, 0) {
		return []Tick{numericTick(niceMin, 0), numericTick(niceMax, 0)}
	}

	interval := (niceMax - niceMin) / float64(count)
	precision := labelPrecision(interval, niceMin)

	ticks := make([]Tick, 0, count+1)
	for i := 0; i <= count; i++ {
		ticks = append(ticks, numericTick(niceMin+float64(i)*interval, precision))
	}
	return ticks
}

// Log returns ticks at the powers of base inside [min, max]. With fewer than
// two powers in range it falls back to Numeric.
func Log(min, max, base float64, count int) []Tick {
	if min > max {
		min, max = max, min
	}
	if base <= 0 || base == 1 {
		base = scale.DefaultLogBase
	}
	if min <= 0 {
		return Numeric(min, max, count)
	}

	logBase := math.Log(base)
	first := math.Ceil(math.Log(min)/logBase - 1e-9)
	last := math.Floor(math.Log(max)/logBase + 1e-9)
	if last-first < 1 || last-first > 1000 {
		return Numeric(min, max, count)
	}

	ticks := make([]Tick, 0, int(last-first)+1)
	for e := first; e <= last; e++ {
		value := math.Pow(base, e)
		precision := 0
		if e < 0 {
			precision = labelPrecision(value, 0)
		}
		ticks = append(ticks, numericTick(value, precision))
	}
	return ticks
}

// ForScale plans ticks for the current domain of a scale, dispatching on its kind.
func ForScale(s *scale.Scale, count int, options ...Option) []Tick {
	domain := s.Domain()
	switch s.Kind() {
	case scale.Time:
		start, end := s.TimeDomain()
		return Time(start, end, count, options...)
	case scale.Log:
		return Log(domain[0], domain[1], s.Base(), count)
	}
	return Numeric(domain[0], domain[1], count)
}

func numericTick(v float64, precision int) Tick {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return Tick{
		Value: v,
		Label: strconv.FormatFloat(v, 'f', precision, 64),
	}
}

// labelPrecision returns enough decimal places to print both the interval and
// the origin without floating point noise.
func labelPrecision(values ...float64) int {
	precision := 0
	for _, v := range values {
		rounded := math.Round(v*1e10) / 1e10
		if p := int(model.NumDecPlaces(rounded)); p > precision {
			precision = p
		}
	}
	return precision
}
