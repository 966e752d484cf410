package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndexOutOfRange is returned by SetVertex when the vertex index does not
// address a vertex pair in the point list.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// NormalizeRect builds a rectangle from two opposite corners in any drag
// direction. The result always has the minimum corner as origin and
// non-negative dimensions.
func NormalizeRect(x1, y1, x2, y2 float64) Rect {
	return Rect{
		X:      math.Min(x1, x2),
		Y:      math.Min(y1, y2),
		Width:  math.Abs(x2 - x1),
		Height: math.Abs(y2 - y1),
	}
}

// CircleRadius returns the radius of a circle centered at (cx, cy) passing
// through (px, py). Zero when the pointer sits on the center.
func CircleRadius(cx, cy, px, py float64) float64 {
	dx := px - cx
	dy := py - cy
	return math.Sqrt(dx*dx + dy*dy)
}

// TranslatePolygon returns a copy of the flat vertex list [x0 y0 x1 y1 ...]
// with every vertex shifted by (dx, dy).
func TranslatePolygon(points []float64, dx, dy float64) []float64 {
	out := make([]float64, len(points))
	for i := 0; i+1 < len(points); i += 2 {
		out[i] = points[i] + dx
		out[i+1] = points[i+1] + dy
	}
	return out
}

// SetVertex returns a copy of the flat vertex list with the vertex pair at
// index replaced by (x, y). Index addresses pairs, not slice positions.
func SetVertex(points []float64, index int, x, y float64) ([]float64, error) {
	if index < 0 || index >= len(points)/2 {
		return nil, fmt.Errorf("%w: %d with %d vertices", ErrIndexOutOfRange, index, len(points)/2)
	}
	out := make([]float64, len(points))
	copy(out, points)
	out[2*index] = x
	out[2*index+1] = y
	return out, nil
}

// ApplyAffineToRect rebuilds a rectangle from a finished interactive
// transform: dimensions are scaled, the origin moves to the translated
// position, and the rotation angle (radians) is carried on the result.
func ApplyAffineToRect(r Rect, scaleX, scaleY, tx, ty float64) Rect {
	return Rect{
		X:      tx,
		Y:      ty,
		Width:  r.Width * scaleX,
		Height: r.Height * scaleY,
	}
}

// ApplyAffineToCircle rebuilds a circle from a finished interactive
// transform. A non-uniform scale is collapsed to the average of the two
// factors; this is an approximation, not an ellipse fit.
func ApplyAffineToCircle(c Circle, scaleX, scaleY, tx, ty float64) Circle {
	return Circle{
		CX: tx,
		CY: ty,
		R:  c.R * (scaleX + scaleY) / 2,
	}
}

// RoundCoord rounds a coordinate half away from zero to the nearest integer.
func RoundCoord(v float64) int {
	return int(math.Round(v))
}
