package curve

import (
	"strconv"
	"strings"
)

// Path is an ordered list of segments starting with a MoveTo.
type Path []Segment

// SVG returns the path as SVG path data, e.g. "M0,10 L5,3 C...".
func (p Path) SVG() string {
	var b strings.Builder
	for i, segment := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(segment.Op.String())
		if segment.Op == CurveTo {
			writePoint(&b, *segment.CP1)
			b.WriteByte(' ')
			writePoint(&b, *segment.CP2)
			b.WriteByte(' ')
		}
		writePoint(&b, segment.End)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}

// Points returns the end point of every segment.
func (p Path) Points() []Point {
	points := make([]Point, 0, len(p))
	for _, segment := range p {
		points = append(points, segment.End)
	}
	return points
}

// Sample flattens the path into points. Every Bézier segment is evaluated at
// steps evenly spaced parameters; straight segments contribute their end point.
func (p Path) Sample(steps int) []Point {
	if steps < 1 {
		steps = 1
	}

	points := make([]Point, 0, len(p)*steps)
	var current Point
	for _, segment := range p {
		switch segment.Op {
		case MoveTo, LineTo:
			points = append(points, segment.End)
		case CurveTo:
			for i := 1; i <= steps; i++ {
				points = append(points, bezier(current, *segment.CP1, *segment.CP2, segment.End, float64(i)/float64(steps)))
			}
		}
		current = segment.End
	}
	return points
}

func bezier(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
