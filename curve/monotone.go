package curve

// monotone implements Fritsch-Carlson monotone cubic interpolation. Interior
// tangents are the harmonic mean of the adjacent secants, or zero when the
// secants disagree in sign, so monotone data never overshoots.
func monotone(points []Point) Path {
	n := len(points)

	slopes := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dx := points[i+1].X - points[i].X
		if dx != 0 {
			slopes[i] = (points[i+1].Y - points[i].Y) / dx
		}
	}

	tangents := make([]float64, n)
	tangents[0] = slopes[0]
	tangents[n-1] = slopes[n-2]
	for i := 1; i < n-1; i++ {
		a, b := slopes[i-1], slopes[i]
		if a == 0 || b == 0 || (a > 0) != (b > 0) {
			continue
		}
		tangents[i] = 2 * a * b / (a + b)
	}

	path := make(Path, 0, n)
	path = append(path, moveTo(points[0]))
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		third := (p1.X - p0.X) / 3
		cp1 := Point{X: p0.X + third, Y: p0.Y + third*tangents[i]}
		cp2 := Point{X: p1.X - third, Y: p1.Y - third*tangents[i+1]}
		path = append(path, curveTo(cp1, cp2, p1))
	}
	return path
}
