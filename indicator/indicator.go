// Package indicator derives technical indicator series from price series.
//
// Every indicator is a pure function of its input: outputs are new series in the
// same DataPoint shape as the input, and indices without enough history are left
// out rather than zero-filled.
package indicator

import (
	"fmt"
	"math"
	"strings"

	"github.com/rodrigo-brito/ninjachart/model"
)

// Kind selects the indicator computed by a Spec.
type Kind int

const (
	SMA Kind = iota + 1
	EMA
	Bollinger
	RSI
	MACD
	WMA
	ATR
)

var kindNames = map[Kind]string{
	SMA:       "sma",
	EMA:       "ema",
	Bollinger: "bollinger",
	RSI:       "rsi",
	MACD:      "macd",
	WMA:       "wma",
	ATR:       "atr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind reads an indicator name such as "sma" or "bb".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "bb" || name == "bbands" {
		return Bollinger, nil
	}
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, &model.ParameterError{Name: "type", Value: name, Reason: "unknown indicator"}
}

// Spec describes an indicator and its parameters. Field is the windowed input
// field; when empty the series y field is used. ATR always reads high, low and close.
type Spec struct {
	Kind       Kind
	Field      string
	Period     int
	Deviations float64
	Fast       int
	Slow       int
	Signal     int
}

// NewSMA is the simple moving average over period points.
func NewSMA(period int) Spec {
	return Spec{Kind: SMA, Period: period}
}

// NewEMA is the exponential moving average seeded with the SMA of the first period points.
func NewEMA(period int) Spec {
	return Spec{Kind: EMA, Period: period}
}

// NewWMA is the linearly weighted moving average.
func NewWMA(period int) Spec {
	return Spec{Kind: WMA, Period: period}
}

// NewBollinger is an SMA band of deviations population standard deviations.
func NewBollinger(period int, deviations float64) Spec {
	return Spec{Kind: Bollinger, Period: period, Deviations: deviations}
}

// NewRSI is the relative strength index with Wilder smoothing.
func NewRSI(period int) Spec {
	return Spec{Kind: RSI, Period: period}
}

// NewMACD is the fast EMA minus the slow EMA, with a signal EMA of that difference.
func NewMACD(fast, slow, signal int) Spec {
	return Spec{Kind: MACD, Fast: fast, Slow: slow, Signal: signal}
}

// NewATR is the average true range over high, low and close.
func NewATR(period int) Spec {
	return Spec{Kind: ATR, Period: period}
}

// WithField returns a copy windowed over another field.
func (s Spec) WithField(field string) Spec {
	s.Field = field
	return s
}

// Name is the display name, e.g. "SMA(20)" or "MACD(12, 26, 9)".
func (s Spec) Name() string {
	switch s.Kind {
	case Bollinger:
		return fmt.Sprintf("BB(%d, %v)", s.Period, s.Deviations)
	case MACD:
		return fmt.Sprintf("MACD(%d, %d, %d)", s.Fast, s.Slow, s.Signal)
	}
	return fmt.Sprintf("%s(%d)", strings.ToUpper(s.Kind.String()), s.Period)
}

// Warmup is the number of leading input points that produce no output.
func (s Spec) Warmup() int {
	switch s.Kind {
	case RSI, ATR:
		return s.Period
	case MACD:
		return max(s.Fast, s.Slow) + s.Signal - 2
	}
	return s.Period - 1
}

// Overlay reports whether the indicator shares the price axis.
func (s Spec) Overlay() bool {
	switch s.Kind {
	case SMA, EMA, WMA, Bollinger:
		return true
	}
	return false
}

// Bounds returns the fixed value range of bounded oscillators.
func (s Spec) Bounds() (float64, float64, bool) {
	if s.Kind == RSI {
		return 0, 100, true
	}
	return 0, 0, false
}

// Validate checks the parameters of the indicator kind.
func (s Spec) Validate() error {
	switch s.Kind {
	case SMA, EMA, WMA, RSI, ATR:
		return positive("period", s.Period)
	case Bollinger:
		if err := positive("period", s.Period); err != nil {
			return err
		}
		if !(s.Deviations > 0) || math.IsInf(s.Deviations, 0) {
			return &model.ParameterError{Name: "deviations", Value: s.Deviations, Reason: "must be positive"}
		}
		return nil
	case MACD:
		if err := positive("fast", s.Fast); err != nil {
			return err
		}
		if err := positive("slow", s.Slow); err != nil {
			return err
		}
		return positive("signal", s.Signal)
	}
	return &model.ParameterError{Name: "type", Value: int(s.Kind), Reason: "unknown indicator"}
}

func positive(name string, value int) error {
	if value <= 0 {
		return &model.ParameterError{Name: name, Value: value, Reason: "must be a positive integer"}
	}
	return nil
}

// Compute derives the indicator series. Output points carry the input x field,
// the indicator values and the input value under "source".
func Compute(series model.Series, spec Spec) (model.Series, error) {
	if err := spec.Validate(); err != nil {
		return model.Series{}, fmt.Errorf("%s: %w", spec.Name(), err)
	}

	field := spec.Field
	if field == "" {
		field = series.Y()
	}

	out := model.Series{
		Key:    seriesKey(series.Key, spec),
		XField: series.X(),
		YField: field,
	}

	switch spec.Kind {
	case SMA:
		out.Points = sma(series.Pairs(field), spec.Period, out.XField, field)
	case EMA:
		out.Points = ema(series.Pairs(field), spec.Period, out.XField, field)
	case WMA:
		out.Points = wma(series.Pairs(field), spec.Period, out.XField, field)
	case Bollinger:
		out.YField = model.FieldMiddle
		out.Points = bollinger(series.Pairs(field), spec.Period, spec.Deviations, out.XField)
	case RSI:
		out.Points = rsi(series.Pairs(field), spec.Period, out.XField, field)
	case MACD:
		out.YField = model.FieldMACD
		out.Points = macd(series.Pairs(field), spec.Fast, spec.Slow, spec.Signal, out.XField)
	case ATR:
		out.YField = model.FieldATR
		out.Points = atr(series, spec.Period)
	}
	return out, nil
}

// ComputeAll derives one series per spec, stopping at the first invalid spec.
func ComputeAll(series model.Series, specs ...Spec) ([]model.Series, error) {
	result := make([]model.Series, 0, len(specs))
	for _, spec := range specs {
		out, err := Compute(series, spec)
		if err != nil {
			return nil, err
		}
		result = append(result, out)
	}
	return result, nil
}

func seriesKey(key string, spec Spec) string {
	if key == "" {
		return spec.Name()
	}
	return key + " " + spec.Name()
}

func point(xField string, pair model.Pair) model.DataPoint {
	return model.DataPoint{
		xField:            pair.X,
		model.FieldSource: pair.Value,
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
