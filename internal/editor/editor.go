// Package editor implements the drawing state machine and the selection and
// edit controller for booth annotations. All methods are synchronous and run
// to completion inside a single input event; the editor owns the annotation
// set and is its only mutator.
package editor

import (
	"fmt"

	"booth-mapper/internal/annotation"
	"booth-mapper/pkg/geometry"
)

// EventType identifies editor change notifications.
type EventType int

const (
	EventShapesChanged EventType = iota
	EventSelectionChanged
	EventSessionChanged
	EventToolChanged
)

// Listener is called after the editor state changes.
type Listener func()

// Editor owns the annotation set, the current selection, and the transient
// drawing session.
type Editor struct {
	set       *annotation.Set
	selection string
	tool      Tool
	state     State
	session   *Session

	// Drawing is disabled until an image is loaded.
	imageLoaded bool

	listeners map[EventType][]Listener
}

// New creates an editor with an empty annotation set.
func New() *Editor {
	return &Editor{
		set:       annotation.NewSet(),
		tool:      ToolSelect,
		state:     Idle,
		listeners: make(map[EventType][]Listener),
	}
}

// On registers a listener for the given event type.
func (e *Editor) On(event EventType, fn Listener) {
	e.listeners[event] = append(e.listeners[event], fn)
}

func (e *Editor) emit(event EventType) {
	for _, fn := range e.listeners[event] {
		fn()
	}
}

// Set returns the annotation set for rendering. Callers must not mutate it.
func (e *Editor) Set() *annotation.Set {
	return e.set
}

// Selection returns the selected shape id, or "" when nothing is selected.
func (e *Editor) Selection() string {
	// Selection is derived state; validate against membership so a stale id
	// never leaks out.
	if e.selection != "" && !e.set.Contains(e.selection) {
		e.selection = ""
	}
	return e.selection
}

// SelectedShape returns the selected shape, or nil.
func (e *Editor) SelectedShape() *annotation.Shape {
	if id := e.Selection(); id != "" {
		return e.set.Get(id)
	}
	return nil
}

// Session returns the in-progress drawing session for live preview, or nil.
func (e *Editor) Session() *Session {
	return e.session
}

// MachineState returns the current drawing state machine state.
func (e *Editor) MachineState() State {
	return e.state
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetImageLoaded enables or disables drawing. With no image loaded all
// pointer-down events are no-ops.
func (e *Editor) SetImageLoaded(loaded bool) {
	e.imageLoaded = loaded
}

// PointerDown handles a pointer press at image coordinates (x, y).
func (e *Editor) PointerDown(x, y float64) {
	if !e.imageLoaded {
		return
	}

	switch e.state {
	case Idle:
		switch e.tool {
		case ToolRect, ToolCircle:
			e.session = &Session{Tool: e.tool, StartX: x, StartY: y, EndX: x, EndY: y}
			e.state = DrawingBox
			e.setSelection("")
			e.emit(EventSessionChanged)
		case ToolPolygon:
			e.session = &Session{Tool: ToolPolygon, Vertices: []float64{x, y}}
			e.state = CreatingPolygon
			e.setSelection("")
			e.emit(EventSessionChanged)
		case ToolSelect:
			if hit := e.set.HitTest(x, y); hit != nil {
				e.Select(hit.ID)
			} else {
				e.setSelection("")
			}
		}
	case CreatingPolygon:
		e.session.Vertices = append(e.session.Vertices, x, y)
		e.emit(EventSessionChanged)
	case DrawingBox:
		// A second press while dragging should not happen with a sane view
		// adapter; treat it as a move.
		e.PointerMove(x, y)
	}
}

// PointerMove handles pointer motion. Only meaningful while a box session is
// in progress.
func (e *Editor) PointerMove(x, y float64) {
	if e.state != DrawingBox {
		return
	}
	e.session.EndX = x
	e.session.EndY = y
	e.emit(EventSessionChanged)
}

// PointerUp commits a box session. The rect is normalized so dimensions are
// never negative regardless of drag direction; the circle is committed as-is.
func (e *Editor) PointerUp() {
	if e.state != DrawingBox {
		return
	}

	var shape *annotation.Shape
	switch e.session.Tool {
	case ToolRect:
		shape = annotation.NewRectShape(e.session.PreviewRect())
	case ToolCircle:
		shape = annotation.NewCircleShape(e.session.PreviewCircle())
	}

	e.session = nil
	e.state = Idle
	if shape != nil {
		e.set.Append(shape)
		e.emit(EventShapesChanged)
	}
	e.emit(EventSessionChanged)
}

// DoubleClick finishes an in-progress polygon.
func (e *Editor) DoubleClick() {
	e.finishPolygon()
}

// KeyEscape cancels a box session without committing, finishes an in-progress
// polygon, or clears the selection when idle.
func (e *Editor) KeyEscape() {
	switch e.state {
	case DrawingBox:
		e.session = nil
		e.state = Idle
		e.emit(EventSessionChanged)
	case CreatingPolygon:
		e.finishPolygon()
	case Idle:
		e.setSelection("")
	}
}

// KeyDelete removes the selected shape, if any.
func (e *Editor) KeyDelete() {
	if id := e.Selection(); id != "" {
		e.Remove(id)
	}
}

// ToolChanged switches the active tool. An in-progress polygon is finished
// first; no partial polygon survives a tool switch.
func (e *Editor) ToolChanged(tool Tool) {
	if e.state == CreatingPolygon {
		e.finishPolygon()
	}
	if e.tool != tool {
		e.tool = tool
		e.emit(EventToolChanged)
	}
}

// finishPolygon commits the collected vertices if there are at least two,
// discards them silently otherwise, and returns to Idle either way.
func (e *Editor) finishPolygon() {
	if e.state != CreatingPolygon {
		return
	}
	vertices := e.session.Vertices
	e.session = nil
	e.state = Idle

	if len(vertices) >= 4 {
		e.set.Append(annotation.NewPolygonShape(vertices))
		e.emit(EventShapesChanged)
	}
	e.emit(EventSessionChanged)
}

// Select sets the selection to id if the shape is present; stale ids are
// ignored, not errors. Selecting a new shape implicitly deselects the
// previous one.
func (e *Editor) Select(id string) {
	if !e.set.Contains(id) {
		return
	}
	e.setSelection(id)
}

// Deselect clears the selection.
func (e *Editor) Deselect() {
	e.setSelection("")
}

func (e *Editor) setSelection(id string) {
	if e.selection == id {
		return
	}
	e.selection = id
	e.emit(EventSelectionChanged)
}

// DragWholeShape translates a committed shape by (dx, dy). Stale ids are
// no-ops.
func (e *Editor) DragWholeShape(id string, dx, dy float64) {
	shape := e.set.Get(id)
	if shape == nil {
		return
	}
	switch shape.Kind {
	case annotation.KindRect:
		shape.Rect.X += dx
		shape.Rect.Y += dy
	case annotation.KindCircle:
		shape.Circle.CX += dx
		shape.Circle.CY += dy
	case annotation.KindPolygon:
		shape.Polygon = geometry.TranslatePolygon(shape.Polygon, dx, dy)
	}
	e.emit(EventShapesChanged)
}

// DragVertex moves one polygon vertex to (x, y). Fails with
// geometry.ErrIndexOutOfRange when the shape has no polygon geometry or the
// index is invalid; a stale id is a no-op.
func (e *Editor) DragVertex(id string, vertexIndex int, x, y float64) error {
	shape := e.set.Get(id)
	if shape == nil {
		return nil
	}
	if shape.Kind != annotation.KindPolygon {
		return fmt.Errorf("shape %s is not a polygon: %w", id, geometry.ErrIndexOutOfRange)
	}
	points, err := geometry.SetVertex(shape.Polygon, vertexIndex, x, y)
	if err != nil {
		return err
	}
	shape.Polygon = points
	e.emit(EventShapesChanged)
	return nil
}

// TransformEnd rebuilds a rect or circle from a finished interactive
// transform. The geometry is recomputed from the stored shape and the
// incoming factors; nothing residual is kept, so repeated transforms apply
// relative to the stored geometry and never compound. Polygon shapes and
// stale ids are no-ops.
func (e *Editor) TransformEnd(id string, scaleX, scaleY, rotation, x, y float64) {
	shape := e.set.Get(id)
	if shape == nil {
		return
	}
	switch shape.Kind {
	case annotation.KindRect:
		shape.Rect = geometry.ApplyAffineToRect(shape.Rect, scaleX, scaleY, x, y)
		shape.Rotation = rotation
	case annotation.KindCircle:
		shape.Circle = geometry.ApplyAffineToCircle(shape.Circle, scaleX, scaleY, x, y)
	default:
		return
	}
	e.emit(EventShapesChanged)
}

// TransformEndMatrix is TransformEnd for callers that hand over a raw affine
// matrix instead of decomposed factors.
func (e *Editor) TransformEndMatrix(id string, t geometry.AffineTransform) {
	sx, sy, rot, tx, ty := geometry.DecomposeAffine(t)
	e.TransformEnd(id, sx, sy, rot, tx, ty)
}

// Rename sets the display name of a shape. Empty strings are permitted; stale
// ids are no-ops.
func (e *Editor) Rename(id, name string) {
	if shape := e.set.Get(id); shape != nil {
		shape.Name = name
		e.emit(EventShapesChanged)
	}
}

// SetBoothNo sets the booth number of a shape. Empty strings are permitted;
// stale ids are no-ops.
func (e *Editor) SetBoothNo(id, boothNo string) {
	if shape := e.set.Get(id); shape != nil {
		shape.BoothNo = boothNo
		e.emit(EventShapesChanged)
	}
}

// Remove deletes a shape. Removing an absent id is a no-op; removing the
// selected shape clears the selection.
func (e *Editor) Remove(id string) {
	if !e.set.Remove(id) {
		return
	}
	if e.selection == id {
		e.setSelection("")
	}
	e.emit(EventShapesChanged)
}

// AddShape appends an externally built shape, for example an accepted
// detection candidate. The shape goes through the same set as interactive
// commits.
func (e *Editor) AddShape(shape *annotation.Shape) {
	if shape == nil {
		return
	}
	e.set.Append(shape)
	e.emit(EventShapesChanged)
}
