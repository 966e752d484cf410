package editor

import (
	"errors"
	"testing"

	"booth-mapper/internal/annotation"
	"booth-mapper/pkg/geometry"
)

func newLoadedEditor() *Editor {
	e := New()
	e.SetImageLoaded(true)
	return e
}

func TestDrawingDisabledWithoutImage(t *testing.T) {
	e := New()
	e.ToolChanged(ToolRect)
	e.PointerDown(10, 10)
	if e.MachineState() != Idle || e.Session() != nil {
		t.Error("pointer down without an image should be a no-op")
	}
}

func TestDrawRectangle(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolRect)

	e.PointerDown(10, 10)
	if e.MachineState() != DrawingBox {
		t.Fatalf("state = %v, want DrawingBox", e.MachineState())
	}
	e.PointerMove(50, 80)
	e.PointerUp()

	if e.MachineState() != Idle || e.Session() != nil {
		t.Error("session should be destroyed on commit")
	}
	shapes := e.Set().Shapes()
	if len(shapes) != 1 {
		t.Fatalf("shapes = %d, want 1", len(shapes))
	}
	got := shapes[0]
	if got.Kind != annotation.KindRect {
		t.Fatalf("kind = %v, want rect", got.Kind)
	}
	want := geometry.Rect{X: 10, Y: 10, Width: 40, Height: 70}
	if got.Rect != want {
		t.Errorf("rect = %+v, want %+v", got.Rect, want)
	}
	if got.Name != "" || got.BoothNo != "" {
		t.Errorf("new shape should have empty name/booth, got %q/%q", got.Name, got.BoothNo)
	}
	if got.ID == "" {
		t.Error("new shape should have an id")
	}
}

func TestDrawRectangleReverseDrag(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolRect)
	e.PointerDown(50, 80)
	e.PointerMove(10, 10)
	e.PointerUp()

	got := e.Set().Shapes()[0].Rect
	want := geometry.Rect{X: 10, Y: 10, Width: 40, Height: 70}
	if got != want {
		t.Errorf("rect = %+v, want %+v", got, want)
	}
}

func TestDrawCircle(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolCircle)
	e.PointerDown(100, 100)
	e.PointerMove(130, 100)
	e.PointerUp()

	shapes := e.Set().Shapes()
	if len(shapes) != 1 || shapes[0].Kind != annotation.KindCircle {
		t.Fatalf("shapes = %+v", shapes)
	}
	got := shapes[0].Circle
	if got.CX != 100 || got.CY != 100 || got.R != 30 {
		t.Errorf("circle = %+v, want center (100,100) r 30", got)
	}
}

func TestDrawPolygon(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolPolygon)

	e.PointerDown(0, 0)
	if e.MachineState() != CreatingPolygon {
		t.Fatalf("state = %v, want CreatingPolygon", e.MachineState())
	}
	e.PointerDown(10, 0)
	e.PointerDown(5, 10)
	e.DoubleClick()

	if e.MachineState() != Idle || e.Session() != nil {
		t.Error("session should be destroyed on finish")
	}
	shapes := e.Set().Shapes()
	if len(shapes) != 1 || shapes[0].Kind != annotation.KindPolygon {
		t.Fatalf("shapes = %+v", shapes)
	}
	want := []float64{0, 0, 10, 0, 5, 10}
	got := shapes[0].Polygon
	if len(got) != len(want) {
		t.Fatalf("vertices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("vertices = %v, want %v", got, want)
		}
	}
}

func TestPolygonSingleVertexDiscarded(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolPolygon)
	e.PointerDown(5, 5)
	e.DoubleClick()

	if e.Set().Len() != 0 {
		t.Errorf("set len = %d, want 0 after discarding single-vertex polygon", e.Set().Len())
	}
	if e.MachineState() != Idle {
		t.Errorf("state = %v, want Idle", e.MachineState())
	}
}

func TestPolygonTwoVerticesCommit(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolPolygon)
	e.PointerDown(0, 0)
	e.PointerDown(10, 10)
	e.KeyEscape()

	if e.Set().Len() != 1 {
		t.Fatalf("two collected vertices should commit, len = %d", e.Set().Len())
	}
}

func TestToolSwitchFinishesPolygon(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolPolygon)
	e.PointerDown(0, 0)
	e.PointerDown(10, 0)
	e.PointerDown(5, 10)

	e.ToolChanged(ToolRect)

	if e.MachineState() != Idle || e.Session() != nil {
		t.Error("tool switch must force the finish transition")
	}
	if e.Set().Len() != 1 {
		t.Errorf("set len = %d, want 1", e.Set().Len())
	}
	if e.Tool() != ToolRect {
		t.Errorf("tool = %v, want rect", e.Tool())
	}
}

func TestEscapeCancelsBoxSession(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolRect)
	e.PointerDown(10, 10)
	e.PointerMove(40, 40)
	e.KeyEscape()

	if e.Set().Len() != 0 {
		t.Error("escaped box session must not commit")
	}
	if e.MachineState() != Idle || e.Session() != nil {
		t.Error("session should be destroyed on cancel")
	}
}

func TestStartingDrawClearsSelection(t *testing.T) {
	e := newLoadedEditor()
	e.ToolChanged(ToolRect)
	e.PointerDown(0, 0)
	e.PointerMove(10, 10)
	e.PointerUp()

	id := e.Set().Shapes()[0].ID
	e.Select(id)
	if e.Selection() != id {
		t.Fatalf("selection = %q, want %q", e.Selection(), id)
	}

	e.PointerDown(50, 50)
	if e.Selection() != "" {
		t.Error("opening a drawing session must clear the selection")
	}
}

func TestSelectStaleIDIsNoOp(t *testing.T) {
	e := newLoadedEditor()
	e.Select("no-such-id")
	if e.Selection() != "" {
		t.Errorf("selection = %q, want empty", e.Selection())
	}
}

func TestSelectionIsExclusive(t *testing.T) {
	e := newLoadedEditor()
	a := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	b := annotation.NewRectShape(geometry.NewRect(20, 20, 10, 10))
	e.AddShape(a)
	e.AddShape(b)

	e.Select(a.ID)
	e.Select(b.ID)
	if e.Selection() != b.ID {
		t.Errorf("selection = %q, want %q", e.Selection(), b.ID)
	}
}

func TestDragWholeShape(t *testing.T) {
	e := newLoadedEditor()
	rect := annotation.NewRectShape(geometry.NewRect(10, 10, 40, 70))
	circle := annotation.NewCircleShape(geometry.Circle{CX: 100, CY: 100, R: 30})
	poly := annotation.NewPolygonShape([]float64{0, 0, 10, 0, 5, 10})
	e.AddShape(rect)
	e.AddShape(circle)
	e.AddShape(poly)

	e.DragWholeShape(rect.ID, 5, -5)
	if rect.Rect.X != 15 || rect.Rect.Y != 5 {
		t.Errorf("rect at (%v,%v), want (15,5)", rect.Rect.X, rect.Rect.Y)
	}
	e.DragWholeShape(circle.ID, -10, 10)
	if circle.Circle.CX != 90 || circle.Circle.CY != 110 {
		t.Errorf("circle at (%v,%v), want (90,110)", circle.Circle.CX, circle.Circle.CY)
	}
	e.DragWholeShape(poly.ID, 1, 2)
	if poly.Polygon[0] != 1 || poly.Polygon[1] != 2 {
		t.Errorf("polygon starts at (%v,%v), want (1,2)", poly.Polygon[0], poly.Polygon[1])
	}

	// Stale id is a no-op.
	e.DragWholeShape("gone", 100, 100)
}

func TestDragVertex(t *testing.T) {
	e := newLoadedEditor()
	poly := annotation.NewPolygonShape([]float64{0, 0, 10, 0, 5, 10})
	rect := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	e.AddShape(poly)
	e.AddShape(rect)

	if err := e.DragVertex(poly.ID, 2, 7, 12); err != nil {
		t.Fatalf("DragVertex: %v", err)
	}
	if poly.Polygon[4] != 7 || poly.Polygon[5] != 12 {
		t.Errorf("vertex 2 = (%v,%v), want (7,12)", poly.Polygon[4], poly.Polygon[5])
	}

	if err := e.DragVertex(poly.ID, 3, 0, 0); !errors.Is(err, geometry.ErrIndexOutOfRange) {
		t.Errorf("invalid index err = %v, want ErrIndexOutOfRange", err)
	}
	if err := e.DragVertex(rect.ID, 0, 0, 0); !errors.Is(err, geometry.ErrIndexOutOfRange) {
		t.Errorf("non-polygon err = %v, want ErrIndexOutOfRange", err)
	}
	if err := e.DragVertex("gone", 0, 0, 0); err != nil {
		t.Errorf("stale id err = %v, want nil no-op", err)
	}
}

func TestTransformEndDoesNotCompound(t *testing.T) {
	e := newLoadedEditor()
	rect := annotation.NewRectShape(geometry.NewRect(10, 10, 40, 70))
	e.AddShape(rect)

	// Scale X by 2, then apply an identity transform: geometry must end up
	// scaled exactly once.
	e.TransformEnd(rect.ID, 2, 1, 0, 10, 10)
	e.TransformEnd(rect.ID, 1, 1, 0, 10, 10)

	if rect.Rect.Width != 80 || rect.Rect.Height != 70 {
		t.Errorf("rect dims = (%v,%v), want (80,70)", rect.Rect.Width, rect.Rect.Height)
	}
}

func TestTransformEndPersistsRotation(t *testing.T) {
	e := newLoadedEditor()
	rect := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	e.AddShape(rect)

	e.TransformEnd(rect.ID, 1, 1, 0.5, 0, 0)
	if rect.Rotation != 0.5 {
		t.Errorf("rotation = %v, want 0.5", rect.Rotation)
	}
}

func TestTransformEndCircleAveragesScale(t *testing.T) {
	e := newLoadedEditor()
	circle := annotation.NewCircleShape(geometry.Circle{CX: 0, CY: 0, R: 10})
	e.AddShape(circle)

	e.TransformEnd(circle.ID, 2, 4, 0, 5, 5)
	if circle.Circle.R != 30 {
		t.Errorf("r = %v, want 30", circle.Circle.R)
	}
	if circle.Circle.CX != 5 || circle.Circle.CY != 5 {
		t.Errorf("center = (%v,%v), want (5,5)", circle.Circle.CX, circle.Circle.CY)
	}
}

func TestTransformEndMatrix(t *testing.T) {
	e := newLoadedEditor()
	rect := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 20))
	e.AddShape(rect)

	tr := geometry.Translation(100, 50).Compose(geometry.Scale(3, 2))
	e.TransformEndMatrix(rect.ID, tr)

	if rect.Rect.Width != 30 || rect.Rect.Height != 40 {
		t.Errorf("dims = (%v,%v), want (30,40)", rect.Rect.Width, rect.Rect.Height)
	}
	if rect.Rect.X != 100 || rect.Rect.Y != 50 {
		t.Errorf("origin = (%v,%v), want (100,50)", rect.Rect.X, rect.Rect.Y)
	}
}

func TestRemove(t *testing.T) {
	e := newLoadedEditor()
	a := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	e.AddShape(a)
	e.Select(a.ID)

	e.Remove(a.ID)
	if e.Set().Len() != 0 {
		t.Error("shape not removed")
	}
	if e.Selection() != "" {
		t.Error("removing the selected shape must clear the selection")
	}

	// Idempotent.
	e.Remove(a.ID)
	if e.Set().Len() != 0 {
		t.Error("second remove changed the set")
	}
}

func TestKeyDeleteRemovesSelection(t *testing.T) {
	e := newLoadedEditor()
	a := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	b := annotation.NewRectShape(geometry.NewRect(20, 0, 10, 10))
	e.AddShape(a)
	e.AddShape(b)

	e.KeyDelete() // nothing selected
	if e.Set().Len() != 2 {
		t.Error("delete with no selection must be a no-op")
	}

	e.Select(a.ID)
	e.KeyDelete()
	if e.Set().Len() != 1 || e.Set().Contains(a.ID) {
		t.Error("delete should remove the selected shape")
	}
}

func TestRenameAndSetBoothNo(t *testing.T) {
	e := newLoadedEditor()
	a := annotation.NewRectShape(geometry.NewRect(0, 0, 10, 10))
	e.AddShape(a)

	e.Rename(a.ID, "Acme Corp")
	e.SetBoothNo(a.ID, "B-17")
	if a.Name != "Acme Corp" || a.BoothNo != "B-17" {
		t.Errorf("name/booth = %q/%q", a.Name, a.BoothNo)
	}

	// Empty strings are permitted.
	e.Rename(a.ID, "")
	if a.Name != "" {
		t.Errorf("name = %q, want empty", a.Name)
	}

	// Stale ids are no-ops.
	e.Rename("gone", "x")
	e.SetBoothNo("gone", "x")
}

func TestSelectToolHitTest(t *testing.T) {
	e := newLoadedEditor()
	a := annotation.NewRectShape(geometry.NewRect(0, 0, 100, 100))
	e.AddShape(a)

	e.ToolChanged(ToolSelect)
	e.PointerDown(50, 50)
	if e.Selection() != a.ID {
		t.Errorf("selection = %q, want %q", e.Selection(), a.ID)
	}

	e.PointerDown(500, 500)
	if e.Selection() != "" {
		t.Error("clicking empty space should deselect")
	}
}

func TestEvents(t *testing.T) {
	e := newLoadedEditor()
	var shapes, selection, session int
	e.On(EventShapesChanged, func() { shapes++ })
	e.On(EventSelectionChanged, func() { selection++ })
	e.On(EventSessionChanged, func() { session++ })

	e.ToolChanged(ToolRect)
	e.PointerDown(0, 0)
	e.PointerMove(10, 10)
	e.PointerUp()

	if shapes != 1 {
		t.Errorf("shapes events = %d, want 1", shapes)
	}
	if session < 2 {
		t.Errorf("session events = %d, want at least 2", session)
	}

	id := e.Set().Shapes()[0].ID
	e.Select(id)
	if selection == 0 {
		t.Error("no selection event emitted")
	}
}
