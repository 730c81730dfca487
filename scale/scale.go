// Package scale maps data domains onto output ranges and back.
//
// A Scale is a tagged union over three kinds: Linear, Time (linear over epoch
// milliseconds) and Log. Domain and range are always replaced as a whole.
package scale

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rodrigo-brito/ninjachart/model"
)

// DefaultLogBase is used when a log scale is created with a non-positive base.
const DefaultLogBase = 10

// Kind is the mapping a Scale applies.
type Kind int

const (
	Linear Kind = iota
	Time
	Log
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Time:
		return "time"
	case Log:
		return "log"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves "linear", "time" or "log". An empty name means linear.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return Linear, nil
	case "time":
		return Time, nil
	case "log":
		return Log, nil
	}
	return Linear, &model.ParameterError{Name: "scale", Value: name, Reason: "must be linear, time or log"}
}

// Pair is an ordered [min, max] pair used for domains and ranges.
type Pair [2]float64

// Span returns Pair[1] - Pair[0]
func (p Pair) Span() float64 {
	return p[1] - p[0]
}

// Scale maps a domain onto a range. Create one with New, NewLinear, NewTime
// or NewLog.
type Scale struct {
	kind   Kind
	domain Pair
	rng    Pair
	base   float64
}

// NewLinear creates a linear scale.
func NewLinear(domain, rng Pair) *Scale {
	return &Scale{kind: Linear, domain: domain, rng: rng}
}

// NewTime creates a time scale over [start, end].
func NewTime(start, end time.Time, rng Pair) *Scale {
	return &Scale{
		kind:   Time,
		domain: Pair{model.Millis(start), model.Millis(end)},
		rng:    rng,
	}
}

// NewLog creates a logarithmic scale. Both domain bounds must be strictly positive.
func NewLog(domain, rng Pair, base float64) (*Scale, error) {
	if base <= 0 {
		base = DefaultLogBase
	}
	if base == 1 {
		return nil, &model.ParameterError{Name: "base", Value: base, Reason: "must not be 1"}
	}

	s := &Scale{kind: Log, rng: rng, base: base}
	if err := s.SetDomain(domain); err != nil {
		return nil, err
	}
	return s, nil
}

// New creates a scale of the given kind. For Time, the domain is in epoch milliseconds.
func New(kind Kind, domain, rng Pair, base float64) (*Scale, error) {
	switch kind {
	case Linear:
		return NewLinear(domain, rng), nil
	case Time:
		return &Scale{kind: Time, domain: domain, rng: rng}, nil
	case Log:
		return NewLog(domain, rng, base)
	}
	return nil, &model.ParameterError{Name: "kind", Value: kind, Reason: "unknown scale kind"}
}

func (s *Scale) Kind() Kind {
	return s.kind
}

func (s *Scale) Domain() Pair {
	return s.domain
}

func (s *Scale) Range() Pair {
	return s.rng
}

// Base returns the logarithm base, zero for non-log scales.
func (s *Scale) Base() float64 {
	return s.base
}

// TimeDomain returns the domain as instants.
func (s *Scale) TimeDomain() (time.Time, time.Time) {
	return model.FromMillis(s.domain[0]), model.FromMillis(s.domain[1])
}

// SetDomain replaces the domain. Log scales reject non-positive bounds and keep the old domain.
func (s *Scale) SetDomain(domain Pair) error {
	if s.kind == Log {
		for _, v := range domain {
			if v <= 0 || math.IsNaN(v) {
				return &model.DomainError{Value: v, Reason: "log domain bound must be positive"}
			}
		}
	}
	s.domain = domain
	return nil
}

// SetTimeDomain replaces the domain with [start, end] in epoch milliseconds.
func (s *Scale) SetTimeDomain(start, end time.Time) {
	s.domain = Pair{model.Millis(start), model.Millis(end)}
}

// SetRange replaces the range.
func (s *Scale) SetRange(rng Pair) {
	s.rng = rng
}

// Scale maps a domain value to a range coordinate. Time scales take epoch milliseconds.
func (s *Scale) Scale(v float64) (float64, error) {
	if s.kind != Log {
		return interpolate(v, s.domain, s.rng), nil
	}

	if v <= 0 || math.IsNaN(v) {
		return 0, &model.DomainError{Value: v, Reason: "log scale requires a positive value"}
	}
	return interpolate(s.log(v), Pair{s.log(s.domain[0]), s.log(s.domain[1])}, s.rng), nil
}

// Invert maps a range coordinate back to a domain value.
func (s *Scale) Invert(c float64) (float64, error) {
	if s.kind != Log {
		return interpolate(c, s.rng, s.domain), nil
	}

	if s.domain[0] <= 0 || s.domain[1] <= 0 {
		return 0, &model.DomainError{Value: math.Min(s.domain[0], s.domain[1]), Reason: "log domain bound must be positive"}
	}
	exp := interpolate(c, s.rng, Pair{s.log(s.domain[0]), s.log(s.domain[1])})
	return math.Pow(s.base, exp), nil
}

// ScaleTime maps an instant. Non-time scales receive the instant as epoch milliseconds.
func (s *Scale) ScaleTime(t time.Time) (float64, error) {
	return s.Scale(model.Millis(t))
}

// InvertTime maps a range coordinate back to an instant.
func (s *Scale) InvertTime(c float64) (time.Time, error) {
	ms, err := s.Invert(c)
	if err != nil {
		return time.Time{}, err
	}
	return model.FromMillis(ms), nil
}

func (s *Scale) log(v float64) float64 {
	if s.base == 10 {
		return math.Log10(v)
	}
	return math.Log(v) / math.Log(s.base)
}

// interpolate maps v from one pair onto another; a degenerate source collapses onto to[0].
func interpolate(v float64, from, to Pair) float64 {
	if from[0] == from[1] {
		return to[0]
	}
	return to[0] + (v-from[0])*(to[1]-to[0])/(from[1]-from[0])
}
