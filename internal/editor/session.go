package editor

import (
	"booth-mapper/pkg/geometry"
)

// Tool is the active drawing/interaction tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRect
	ToolCircle
	ToolPolygon
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRect:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// ParseTool maps a tool name to its Tool value. Reports false for names it
// does not recognize.
func ParseTool(name string) (Tool, bool) {
	switch name {
	case "select":
		return ToolSelect, true
	case "rect":
		return ToolRect, true
	case "circle":
		return ToolCircle, true
	case "polygon":
		return ToolPolygon, true
	default:
		return ToolSelect, false
	}
}

// State is the drawing state machine state.
type State int

const (
	// Idle accepts selection and the start of a new drawing session.
	Idle State = iota
	// DrawingBox is a drag in progress for a rect or circle.
	DrawingBox
	// CreatingPolygon collects vertices click by click.
	CreatingPolygon
)

// Session is the transient in-progress shape between drawing-start and
// commit/cancel. It is not part of the annotation set and is destroyed on
// either outcome.
type Session struct {
	Tool Tool

	// Anchor and live end point for DrawingBox sessions.
	StartX, StartY float64
	EndX, EndY     float64

	// Collected vertices for CreatingPolygon sessions, flat pairs.
	Vertices []float64
}

// PreviewRect returns the normalized rectangle a ToolRect session would
// commit right now.
func (s *Session) PreviewRect() geometry.Rect {
	return geometry.NormalizeRect(s.StartX, s.StartY, s.EndX, s.EndY)
}

// PreviewCircle returns the circle a ToolCircle session would commit right
// now.
func (s *Session) PreviewCircle() geometry.Circle {
	return geometry.Circle{
		CX: s.StartX,
		CY: s.StartY,
		R:  geometry.CircleRadius(s.StartX, s.StartY, s.EndX, s.EndY),
	}
}
