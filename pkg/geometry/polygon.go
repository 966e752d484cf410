package geometry

// PairsToPoints converts a flat vertex list [x0 y0 x1 y1 ...] into points.
// A trailing unpaired value is ignored.
func PairsToPoints(pairs []float64) []Point2D {
	pts := make([]Point2D, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		pts = append(pts, Point2D{X: pairs[i], Y: pairs[i+1]})
	}
	return pts
}

// PointsToPairs converts points into a flat vertex list.
func PointsToPairs(points []Point2D) []float64 {
	pairs := make([]float64, 0, 2*len(points))
	for _, p := range points {
		pairs = append(pairs, p.X, p.Y)
	}
	return pairs
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}
