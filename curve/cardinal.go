package curve

// cardinal builds one cubic Bézier per consecutive pair. The tangent at p[i] is
// t*(p[i+1]-p[i-1]); the end points act as their own outer neighbours.
func cardinal(points []Point, tension float64) Path {
	n := len(points)
	at := func(i int) Point {
		if i < 0 {
			return points[0]
		}
		if i >= n {
			return points[n-1]
		}
		return points[i]
	}

	path := make(Path, 0, n)
	path = append(path, moveTo(points[0]))
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		cp1 := Point{
			X: p1.X + tension*(p2.X-p0.X),
			Y: p1.Y + tension*(p2.Y-p0.Y),
		}
		cp2 := Point{
			X: p2.X - tension*(p3.X-p1.X),
			Y: p2.Y - tension*(p3.Y-p1.Y),
		}
		path = append(path, curveTo(cp1, cp2, p2))
	}
	return path
}
