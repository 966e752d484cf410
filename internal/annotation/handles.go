package annotation

import (
	"booth-mapper/pkg/geometry"
)

// HandleKind identifies what dragging a handle does.
type HandleKind int

const (
	HandleResize HandleKind = iota // corner/edge of a rect
	HandleRadius                   // circle radius
	HandleVertex                   // polygon vertex
	HandleRotate                   // rect rotation grip
)

// Handle describes one draggable control point for a selected shape. Handles
// are derived per render from the shape geometry; nothing is stored on the
// shape itself.
type Handle struct {
	Kind        HandleKind
	Pos         geometry.Point2D
	VertexIndex int // valid for HandleVertex
}

// rotateGripOffset is how far the rotation grip sits above a rect's top edge,
// in image pixels.
const rotateGripOffset = 24

// HandlesFor computes the handle descriptors for a shape. The result is
// freshly allocated on every call.
func HandlesFor(s *Shape) []Handle {
	if s == nil {
		return nil
	}
	switch s.Kind {
	case KindRect:
		r := s.Rect
		return []Handle{
			{Kind: HandleResize, Pos: geometry.Point2D{X: r.X, Y: r.Y}},
			{Kind: HandleResize, Pos: geometry.Point2D{X: r.X + r.Width, Y: r.Y}},
			{Kind: HandleResize, Pos: geometry.Point2D{X: r.X, Y: r.Y + r.Height}},
			{Kind: HandleResize, Pos: geometry.Point2D{X: r.X + r.Width, Y: r.Y + r.Height}},
			{Kind: HandleRotate, Pos: geometry.Point2D{X: r.X + r.Width/2, Y: r.Y - rotateGripOffset}},
		}
	case KindCircle:
		c := s.Circle
		return []Handle{
			{Kind: HandleRadius, Pos: geometry.Point2D{X: c.CX + c.R, Y: c.CY}},
		}
	case KindPolygon:
		handles := make([]Handle, 0, len(s.Polygon)/2)
		for i := 0; i+1 < len(s.Polygon); i += 2 {
			handles = append(handles, Handle{
				Kind:        HandleVertex,
				Pos:         geometry.Point2D{X: s.Polygon[i], Y: s.Polygon[i+1]},
				VertexIndex: i / 2,
			})
		}
		return handles
	default:
		return nil
	}
}
