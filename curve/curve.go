// Package curve turns scaled points into drawable path segments.
//
// Inputs are already in output-range coordinates. The builder does not know what
// the points mean and only falls back to straight lines when a smooth mode has
// fewer than three points to work with.
package curve

import (
	"fmt"
	"math"
	"strings"

	"github.com/rodrigo-brito/ninjachart/model"
)

// DefaultTension is the cardinal spline tension used when none is given.
const DefaultTension = 0.5

// Mode is the interpolation used between consecutive points.
type Mode int

const (
	Linear Mode = iota
	Step
	Cardinal
	Monotone
)

var modeNames = map[Mode]string{
	Linear:   "linear",
	Step:     "step",
	Cardinal: "cardinal",
	Monotone: "monotone",
}

func (m Mode) String() string {
	return modeNames[m]
}

// ParseMode reads a mode name. An empty name is Linear.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Linear, nil
	}
	for mode, modeName := range modeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return Linear, &model.ParameterError{Name: "interpolation", Value: name, Reason: "unknown mode"}
}

// Point is a position on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Op is the drawing operation of a segment.
type Op int

const (
	MoveTo Op = iota
	LineTo
	CurveTo
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CurveTo:
		return "C"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// MarshalText renders the operation as its SVG command letter.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Segment is a single drawing command. CP1 and CP2 are only set for CurveTo.
type Segment struct {
	Op  Op     `json:"op"`
	CP1 *Point `json:"cp1,omitempty"`
	CP2 *Point `json:"cp2,omitempty"`
	End Point  `json:"end"`
}

type options struct {
	tension float64
}

// Option configures Build.
type Option func(*options)

// WithTension sets the cardinal spline tension. Valid values are in [0, 1].
func WithTension(tension float64) Option {
	return func(o *options) {
		o.tension = tension
	}
}

// Build returns the path through points using the given mode. The path always
// starts with a MoveTo the first point. An empty input gives an empty path.
func Build(points []Point, mode Mode, opts ...Option) (Path, error) {
	o := options{tension: DefaultTension}
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.tension) || o.tension < 0 || o.tension > 1 {
		return nil, &model.ParameterError{Name: "tension", Value: o.tension, Reason: "must be within [0, 1]"}
	}

	if len(points) == 0 {
		return Path{}, nil
	}

	switch mode {
	case Linear:
		return linear(points), nil
	case Step:
		return step(points), nil
	case Cardinal:
		if len(points) < 3 {
			return linear(points), nil
		}
		return cardinal(points, o.tension), nil
	case Monotone:
		if len(points) < 3 {
			return linear(points), nil
		}
		return monotone(points), nil
	}
	return nil, &model.ParameterError{Name: "interpolation", Value: int(mode), Reason: "unknown mode"}
}

func moveTo(p Point) Segment {
	return Segment{Op: MoveTo, End: p}
}

func lineTo(p Point) Segment {
	return Segment{Op: LineTo, End: p}
}

func curveTo(cp1, cp2, end Point) Segment {
	return Segment{Op: CurveTo, CP1: &cp1, CP2: &cp2, End: end}
}

func linear(points []Point) Path {
	path := make(Path, 0, len(points))
	path = append(path, moveTo(points[0]))
	for _, p := range points[1:] {
		path = append(path, lineTo(p))
	}
	return path
}

// step draws a staircase: horizontal at the previous y, then vertical.
func step(points []Point) Path {
	path := make(Path, 0, 2*len(points)-1)
	path = append(path, moveTo(points[0]))
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		path = append(path,
			lineTo(Point{X: cur.X, Y: prev.Y}),
			lineTo(cur),
		)
	}
	return path
}
