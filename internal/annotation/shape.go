// Package annotation defines the shape data model for booth annotations.
package annotation

import (
	"github.com/google/uuid"

	"booth-mapper/pkg/geometry"
)

// Kind identifies the geometry variant of a shape.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "poly"
	default:
		return "unknown"
	}
}

// Shape is a committed booth annotation. Exactly one geometry variant is
// populated, selected by Kind. Shapes are created by the editor on session
// commit and mutated only through the editor.
type Shape struct {
	ID      string
	Name    string
	BoothNo string
	Kind    Kind

	Rect    geometry.Rect   // KindRect; Width, Height never negative
	Circle  geometry.Circle // KindCircle; R never negative
	Polygon []float64       // KindPolygon; flat pairs, at least 2 vertices

	// Rotation is the persisted rotation angle in radians for rectangle
	// shapes. Kept on the shape rather than derived from a transient view
	// transform so a re-render reproduces the rotated appearance.
	Rotation float64
}

// NewRectShape creates a rectangle shape with a fresh unique id.
func NewRectShape(r geometry.Rect) *Shape {
	return &Shape{ID: uuid.NewString(), Kind: KindRect, Rect: r}
}

// NewCircleShape creates a circle shape with a fresh unique id.
func NewCircleShape(c geometry.Circle) *Shape {
	return &Shape{ID: uuid.NewString(), Kind: KindCircle, Circle: c}
}

// NewPolygonShape creates a polygon shape with a fresh unique id. The vertex
// list is copied.
func NewPolygonShape(points []float64) *Shape {
	pts := make([]float64, len(points))
	copy(pts, points)
	return &Shape{ID: uuid.NewString(), Kind: KindPolygon, Polygon: pts}
}

// HitTest returns true if the point (x, y) falls within the shape.
func (s *Shape) HitTest(x, y float64) bool {
	p := geometry.Point2D{X: x, Y: y}
	switch s.Kind {
	case KindRect:
		return s.Rect.Contains(p)
	case KindCircle:
		return s.Circle.Contains(p)
	case KindPolygon:
		return geometry.PointInPolygon(p, geometry.PairsToPoints(s.Polygon))
	default:
		return false
	}
}

// Bounds returns the axis-aligned bounding rectangle of the shape.
func (s *Shape) Bounds() geometry.Rect {
	switch s.Kind {
	case KindRect:
		return s.Rect
	case KindCircle:
		return s.Circle.Bounds()
	case KindPolygon:
		return geometry.BoundingBox(geometry.PairsToPoints(s.Polygon))
	default:
		return geometry.Rect{}
	}
}

// VertexCount returns the number of polygon vertices, zero for other kinds.
func (s *Shape) VertexCount() int {
	if s.Kind != KindPolygon {
		return 0
	}
	return len(s.Polygon) / 2
}

// Clone returns a deep copy of the shape.
func (s *Shape) Clone() *Shape {
	dup := *s
	if s.Polygon != nil {
		dup.Polygon = make([]float64, len(s.Polygon))
		copy(dup.Polygon, s.Polygon)
	}
	return &dup
}
