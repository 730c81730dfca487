package model

import (
	"math"
	"time"
)

// Common field names. Indicator and stack outputs reuse the same DataPoint shape,
// so renderers can treat raw and derived series uniformly.
const (
	FieldX      = "x"
	FieldY      = "y"
	FieldTime   = "time"
	FieldOpen   = "open"
	FieldHigh   = "high"
	FieldLow    = "low"
	FieldClose  = "close"
	FieldVolume = "volume"

	FieldSource    = "source"
	FieldMiddle    = "middle"
	FieldUpper     = "upper"
	FieldLower     = "lower"
	FieldMACD      = "macd"
	FieldSignal    = "signal"
	FieldHistogram = "histogram"
	FieldATR       = "atr"

	FieldOwn  = "own"
	FieldBase = "base"
)

// DataPoint is a set of named numeric fields. Temporal fields hold epoch milliseconds,
// see Millis and FromMillis.
type DataPoint map[string]float64

// Value returns the field value. A missing field or a NaN value reports false.
func (p DataPoint) Value(field string) (float64, bool) {
	v, ok := p[field]
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Time returns a temporal field as time.Time in UTC.
func (p DataPoint) Time(field string) (time.Time, bool) {
	v, ok := p.Value(field)
	if !ok {
		return time.Time{}, false
	}
	return FromMillis(v), true
}

// Clone returns a copy that can be modified without touching the receiver.
func (p DataPoint) Clone() DataPoint {
	clone := make(DataPoint, len(p))
	for k, v := range p {
		clone[k] = v
	}
	return clone
}

// Millis converts an instant to epoch milliseconds.
func Millis(t time.Time) float64 {
	return float64(t.Unix())*1000 + float64(t.Nanosecond())/float64(time.Millisecond)
}

// FromMillis converts epoch milliseconds, possibly fractional, back to an instant in UTC.
func FromMillis(ms float64) time.Time {
	sec := math.Floor(ms / 1000)
	nsec := math.Round((ms - sec*1000) * float64(time.Millisecond))
	return time.Unix(int64(sec), int64(nsec)).UTC()
}

// Series is an ordered sequence of points with an identifying key and the
// names of its x and y fields. Points are expected to be ordered along XField;
// nothing in this module re-sorts them.
type Series struct {
	Key    string
	XField string
	YField string
	Points []DataPoint
}

// NewSeries creates a series with the default x and y field names.
func NewSeries(key string, points ...DataPoint) Series {
	return Series{
		Key:    key,
		XField: FieldX,
		YField: FieldY,
		Points: points,
	}
}

// X returns the x field name, defaulting to "x".
func (s Series) X() string {
	if s.XField == "" {
		return FieldX
	}
	return s.XField
}

// Y returns the y field name, defaulting to "y".
func (s Series) Y() string {
	if s.YField == "" {
		return FieldY
	}
	return s.YField
}

// Len returns the number of points
func (s Series) Len() int {
	return len(s.Points)
}

// Pair is an (x, value) sample extracted from a series.
type Pair struct {
	Index int
	X     float64
	Value float64
}

// Pairs returns the samples of points carrying both the x field and the given field,
// in series order. Points missing either are omitted.
func (s Series) Pairs(field string) []Pair {
	xField := s.X()
	pairs := make([]Pair, 0, len(s.Points))
	for i, point := range s.Points {
		x, ok := point.Value(xField)
		if !ok {
			continue
		}
		v, ok := point.Value(field)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Index: i, X: x, Value: v})
	}
	return pairs
}
