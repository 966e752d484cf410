// Package canvas provides the interactive plan canvas with pan, zoom, and
// shape editing. The canvas renders from editor state and translates pointer
// gestures into editor operations; it holds no shape data of its own.
package canvas

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"booth-mapper/internal/annotation"
	"booth-mapper/internal/app"
	"booth-mapper/internal/editor"
	"booth-mapper/pkg/colorutil"
	"booth-mapper/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 10.0
	zoomStep = 1.25

	// handleHitRadius is the pick distance for handles, in canvas pixels.
	handleHitRadius = 8.0
	handleHalf      = 4
)

var (
	shapeColor     = colorutil.Booth
	selectedColor  = colorutil.Selected
	previewColor   = colorutil.Preview
	candidateColor = colorutil.Candidate
	handleFill     = colorutil.White
	labelColor     = colorutil.Black
)

// dragKind identifies what an in-progress drag gesture manipulates.
type dragKind int

const (
	dragNone dragKind = iota
	dragDraw          // forwarding to the editor's drawing session
	dragMove          // translating the selected shape
	dragVertex        // moving one polygon vertex
	dragResize        // scaling a rect from a corner handle
	dragRadius        // adjusting a circle radius
	dragRotate        // turning a rect via the rotation grip
)

// dragState tracks one pointer drag from first motion to release.
type dragState struct {
	kind        dragKind
	shapeID     string
	vertexIndex int

	// anchor is the fixed point of the gesture: the opposite corner for a
	// resize, the center for radius and rotation.
	anchor geometry.Point2D

	startRect   geometry.Rect
	startCircle geometry.Circle

	lastX, lastY float64 // previous pointer position, image coords
	curX, curY   float64
}

// MapCanvas displays the plan image with annotation shapes on top.
type MapCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster
	zoom   float64

	scroll  *zoomScroll
	content *interactiveContent
	imgSize fyne.Size

	fitToWindow    bool
	lastScrollSize fyne.Size

	drag dragState

	onZoomChange func(zoom float64)
}

// New creates a canvas bound to the application state. The canvas refreshes
// itself on every relevant state event.
func New(state *app.State) *MapCanvas {
	mc := &MapCanvas{
		state:   state,
		zoom:    1.0,
		imgSize: fyne.NewSize(400, 300),
	}

	mc.raster = fynecanvas.NewRaster(mc.draw)
	mc.raster.ScaleMode = fynecanvas.ImageScalePixels
	mc.raster.SetMinSize(mc.imgSize)

	mc.content = newInteractiveContent(mc, mc.raster)
	mc.scroll = newZoomScroll(mc.content, mc)

	state.On(app.EventImageLoaded, func(interface{}) { mc.updateContentSize() })
	state.On(app.EventShapesChanged, func(interface{}) { mc.Refresh() })
	state.On(app.EventSelectionChanged, func(interface{}) { mc.Refresh() })
	state.On(app.EventSessionChanged, func(interface{}) { mc.Refresh() })
	state.On(app.EventCandidatesFound, func(interface{}) { mc.Refresh() })

	mc.ExtendBaseWidget(mc)
	return mc
}

// Container returns the canvas container for embedding in layouts.
func (mc *MapCanvas) Container() fyne.CanvasObject {
	return mc.scroll
}

// SetZoom sets the zoom level, clamped to the allowed range.
func (mc *MapCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	mc.zoom = zoom
	mc.updateContentSize()

	if mc.onZoomChange != nil {
		mc.onZoomChange(zoom)
	}
}

// GetZoom returns the current zoom level.
func (mc *MapCanvas) GetZoom() float64 {
	return mc.zoom
}

// ZoomIn increases the zoom level.
func (mc *MapCanvas) ZoomIn() {
	mc.SetZoom(mc.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (mc *MapCanvas) ZoomOut() {
	mc.SetZoom(mc.zoom / zoomStep)
}

// FitToWindow adjusts zoom so the plan image fits the visible area.
func (mc *MapCanvas) FitToWindow() {
	w, h := mc.state.ImageSize()
	if w == 0 || h == 0 {
		return
	}
	viewSize := mc.scroll.Size()
	if viewSize.Width <= 0 || viewSize.Height <= 0 {
		return
	}

	zoomX := float64(viewSize.Width) / float64(w)
	zoomY := float64(viewSize.Height) / float64(h)
	zoom := math.Min(zoomX, zoomY)

	mc.SetZoom(zoom * 0.95) // Leave a small margin
}

// SetFitToWindow enables or disables auto-fit on resize.
func (mc *MapCanvas) SetFitToWindow(fit bool) {
	mc.fitToWindow = fit
	if fit {
		mc.FitToWindow()
	}
}

// GetFitToWindow returns the current fit-to-window state.
func (mc *MapCanvas) GetFitToWindow() bool {
	return mc.fitToWindow
}

// OnZoomChange sets a callback for zoom changes.
func (mc *MapCanvas) OnZoomChange(callback func(zoom float64)) {
	mc.onZoomChange = callback
}

// ImageToCanvas converts image coordinates to canvas coordinates.
func (mc *MapCanvas) ImageToCanvas(imgX, imgY float64) (float64, float64) {
	return imgX * mc.zoom, imgY * mc.zoom
}

// CanvasToImage converts canvas coordinates to image coordinates.
func (mc *MapCanvas) CanvasToImage(canvasX, canvasY float64) (float64, float64) {
	return canvasX / mc.zoom, canvasY / mc.zoom
}

// Refresh redraws the canvas.
func (mc *MapCanvas) Refresh() {
	mc.raster.Refresh()
}

// updateContentSize resizes the raster to the zoomed image dimensions.
func (mc *MapCanvas) updateContentSize() {
	w, h := mc.state.ImageSize()
	if w == 0 || h == 0 {
		mc.imgSize = fyne.NewSize(400, 300)
	} else {
		mc.imgSize = fyne.NewSize(float32(float64(w)*mc.zoom), float32(float64(h)*mc.zoom))
	}

	mc.raster.SetMinSize(mc.imgSize)
	mc.raster.Resize(mc.imgSize)
	if mc.content != nil {
		mc.content.Resize(mc.imgSize)
		mc.content.Refresh()
	}
	mc.raster.Refresh()
	if mc.scroll != nil {
		mc.scroll.Refresh()
	}
}

// Gesture handling. All positions arriving from fyne are canvas coordinates;
// they are converted to image coordinates before reaching the editor.

// beginDrag classifies the gesture from its starting point: handle drags and
// shape moves with the select tool, a drawing session otherwise.
func (mc *MapCanvas) beginDrag(x, y float64) {
	ed := mc.state.Editor()
	mc.drag = dragState{lastX: x, lastY: y, curX: x, curY: y}

	if ed.Tool() != editor.ToolSelect {
		ed.PointerDown(x, y)
		mc.drag.kind = dragDraw
		return
	}

	if shape := ed.SelectedShape(); shape != nil {
		if h, ok := mc.hitHandle(shape, x, y); ok {
			mc.drag.shapeID = shape.ID
			switch h.Kind {
			case annotation.HandleVertex:
				mc.drag.kind = dragVertex
				mc.drag.vertexIndex = h.VertexIndex
			case annotation.HandleRadius:
				mc.drag.kind = dragRadius
				mc.drag.startCircle = shape.Circle
				mc.drag.anchor = geometry.Point2D{X: shape.Circle.CX, Y: shape.Circle.CY}
			case annotation.HandleRotate:
				mc.drag.kind = dragRotate
				mc.drag.startRect = shape.Rect
				mc.drag.anchor = shape.Rect.Center()
			case annotation.HandleResize:
				mc.drag.kind = dragResize
				mc.drag.startRect = shape.Rect
				mc.drag.anchor = oppositeCorner(shape.Rect, h.Pos)
			}
			return
		}
	}

	if hit := ed.Set().HitTest(x, y); hit != nil {
		ed.Select(hit.ID)
		mc.drag.kind = dragMove
		mc.drag.shapeID = hit.ID
		return
	}

	ed.Deselect()
}

func (mc *MapCanvas) moveDrag(x, y float64) {
	ed := mc.state.Editor()
	mc.drag.curX = x
	mc.drag.curY = y

	switch mc.drag.kind {
	case dragDraw:
		ed.PointerMove(x, y)
	case dragMove:
		ed.DragWholeShape(mc.drag.shapeID, x-mc.drag.lastX, y-mc.drag.lastY)
	case dragVertex:
		_ = ed.DragVertex(mc.drag.shapeID, mc.drag.vertexIndex, x, y)
	case dragResize, dragRadius, dragRotate:
		// Live preview only; the shape is rebuilt once on release.
		mc.Refresh()
	}
	mc.drag.lastX = x
	mc.drag.lastY = y
}

func (mc *MapCanvas) endDrag() {
	ed := mc.state.Editor()
	d := mc.drag
	mc.drag = dragState{}

	switch d.kind {
	case dragDraw:
		ed.PointerUp()
	case dragResize:
		next := geometry.NormalizeRect(d.anchor.X, d.anchor.Y, d.curX, d.curY)
		sx, sy := 1.0, 1.0
		if d.startRect.Width > 0 {
			sx = next.Width / d.startRect.Width
		}
		if d.startRect.Height > 0 {
			sy = next.Height / d.startRect.Height
		}
		shape := ed.Set().Get(d.shapeID)
		rot := 0.0
		if shape != nil {
			rot = shape.Rotation
		}
		ed.TransformEnd(d.shapeID, sx, sy, rot, next.X, next.Y)
	case dragRadius:
		newR := geometry.CircleRadius(d.anchor.X, d.anchor.Y, d.curX, d.curY)
		s := 1.0
		if d.startCircle.R > 0 {
			s = newR / d.startCircle.R
		}
		ed.TransformEnd(d.shapeID, s, s, 0, d.anchor.X, d.anchor.Y)
	case dragRotate:
		// The grip rests above the center, so straight up is zero.
		angle := math.Atan2(d.curY-d.anchor.Y, d.curX-d.anchor.X) + math.Pi/2
		ed.TransformEnd(d.shapeID, 1, 1, angle, d.startRect.X, d.startRect.Y)
	}
	mc.Refresh()
}

// hitHandle returns the handle of shape within pick distance of (x, y).
func (mc *MapCanvas) hitHandle(shape *annotation.Shape, x, y float64) (annotation.Handle, bool) {
	pick := handleHitRadius / mc.zoom
	for _, h := range annotation.HandlesFor(shape) {
		if math.Abs(h.Pos.X-x) <= pick && math.Abs(h.Pos.Y-y) <= pick {
			return h, true
		}
	}
	return annotation.Handle{}, false
}

// oppositeCorner returns the rect corner diagonally across from pos.
func oppositeCorner(r geometry.Rect, pos geometry.Point2D) geometry.Point2D {
	cx, cy := r.X, r.Y
	if pos.X <= r.X+r.Width/2 {
		cx = r.X + r.Width
	}
	if pos.Y <= r.Y+r.Height/2 {
		cy = r.Y + r.Height
	}
	return geometry.Point2D{X: cx, Y: cy}
}

// Rendering.

// draw is the raster drawing function.
func (mc *MapCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))

	// Opaque dark background.
	for i := 3; i < len(output.Pix); i += 4 {
		output.Pix[i] = 255
	}

	mc.drawPlanImage(output, w, h)
	mc.drawCandidates(output)

	selected := mc.state.Editor().Selection()
	for _, shape := range mc.state.Editor().Set().Shapes() {
		mc.drawShape(output, shape, shape.ID == selected)
	}

	if shape := mc.state.Editor().SelectedShape(); shape != nil {
		mc.drawHandles(output, shape)
		mc.drawTransformPreview(output)
	}

	if session := mc.state.Editor().Session(); session != nil {
		mc.drawSession(output, session)
	}

	return output
}

// drawPlanImage samples the plan image at the current zoom.
func (mc *MapCanvas) drawPlanImage(output *image.RGBA, w, h int) {
	src := mc.state.PlanImage()
	if src == nil {
		return
	}
	srcBounds := src.Bounds()

	for y := 0; y < h; y++ {
		srcY := int(float64(y)/mc.zoom) + srcBounds.Min.Y
		if srcY < srcBounds.Min.Y || srcY >= srcBounds.Max.Y {
			continue
		}
		for x := 0; x < w; x++ {
			srcX := int(float64(x)/mc.zoom) + srcBounds.Min.X
			if srcX < srcBounds.Min.X || srcX >= srcBounds.Max.X {
				continue
			}
			output.Set(x, y, src.At(srcX, srcY))
		}
	}
}

func (mc *MapCanvas) drawCandidates(output *image.RGBA) {
	for i, cand := range mc.state.Candidates() {
		x1, y1 := mc.ImageToCanvas(cand.Rect.X, cand.Rect.Y)
		x2, y2 := mc.ImageToCanvas(cand.Rect.X+cand.Rect.Width, cand.Rect.Y+cand.Rect.Height)
		drawDashedRect(output, int(x1), int(y1), int(x2), int(y2), candidateColor)
		drawLabel(output, candidateLabel(i), int((x1+x2)/2), int((y1+y2)/2), mc.labelScale(), candidateColor)
	}
}

func candidateLabel(i int) string {
	// 1-based to match the candidate list in the side panel.
	n := i + 1
	if n < 10 {
		return string(rune('0' + n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func (mc *MapCanvas) drawShape(output *image.RGBA, shape *annotation.Shape, selected bool) {
	col := shapeColor
	if selected {
		col = selectedColor
	}

	switch shape.Kind {
	case annotation.KindRect:
		if shape.Rotation != 0 {
			mc.drawRotatedRect(output, shape.Rect, shape.Rotation, col)
		} else {
			x1, y1 := mc.ImageToCanvas(shape.Rect.X, shape.Rect.Y)
			x2, y2 := mc.ImageToCanvas(shape.Rect.X+shape.Rect.Width, shape.Rect.Y+shape.Rect.Height)
			drawRectOutline(output, int(x1), int(y1), int(x2), int(y2), col)
		}
	case annotation.KindCircle:
		cx, cy := mc.ImageToCanvas(shape.Circle.CX, shape.Circle.CY)
		drawCircleOutline(output, cx, cy, shape.Circle.R*mc.zoom, col)
	case annotation.KindPolygon:
		points := geometry.PairsToPoints(shape.Polygon)
		n := len(points)
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			x1, y1 := mc.ImageToCanvas(p1.X, p1.Y)
			x2, y2 := mc.ImageToCanvas(p2.X, p2.Y)
			drawLine(output, int(x1), int(y1), int(x2), int(y2), col, 2)
		}
	}

	if label := shapeLabel(shape); label != "" {
		center := shape.Bounds().Center()
		cx, cy := mc.ImageToCanvas(center.X, center.Y)
		drawLabel(output, label, int(cx), int(cy), mc.labelScale(), labelColor)
	}
}

// shapeLabel picks the text drawn inside a shape: the booth number when set,
// the name otherwise.
func shapeLabel(shape *annotation.Shape) string {
	if shape.BoothNo != "" {
		return shape.BoothNo
	}
	return shape.Name
}

// drawRotatedRect draws a rect rotated about its center.
func (mc *MapCanvas) drawRotatedRect(output *image.RGBA, r geometry.Rect, angle float64, col color.RGBA) {
	center := r.Center()
	rot := geometry.Rotation(angle)

	corners := []geometry.Point2D{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
	for i, c := range corners {
		rel := c.Sub(center)
		corners[i] = rot.Apply(rel).Add(center)
	}

	for i := 0; i < 4; i++ {
		p1 := corners[i]
		p2 := corners[(i+1)%4]
		x1, y1 := mc.ImageToCanvas(p1.X, p1.Y)
		x2, y2 := mc.ImageToCanvas(p2.X, p2.Y)
		drawLine(output, int(x1), int(y1), int(x2), int(y2), col, 2)
	}
}

func (mc *MapCanvas) drawHandles(output *image.RGBA, shape *annotation.Shape) {
	for _, h := range annotation.HandlesFor(shape) {
		x, y := mc.ImageToCanvas(h.Pos.X, h.Pos.Y)
		border := selectedColor
		if h.Kind == annotation.HandleRotate {
			drawCircleOutline(output, x, y, handleHalf+1, border)
			continue
		}
		drawHandle(output, int(x), int(y), handleHalf, handleFill, border)
	}
}

// drawTransformPreview shows the pending geometry of a resize, radius, or
// rotate drag before the editor rebuilds the shape on release.
func (mc *MapCanvas) drawTransformPreview(output *image.RGBA) {
	d := mc.drag
	switch d.kind {
	case dragResize:
		next := geometry.NormalizeRect(d.anchor.X, d.anchor.Y, d.curX, d.curY)
		x1, y1 := mc.ImageToCanvas(next.X, next.Y)
		x2, y2 := mc.ImageToCanvas(next.X+next.Width, next.Y+next.Height)
		drawDashedRect(output, int(x1), int(y1), int(x2), int(y2), previewColor)
	case dragRadius:
		r := geometry.CircleRadius(d.anchor.X, d.anchor.Y, d.curX, d.curY)
		cx, cy := mc.ImageToCanvas(d.anchor.X, d.anchor.Y)
		drawCircleOutline(output, cx, cy, r*mc.zoom, previewColor)
	case dragRotate:
		angle := math.Atan2(d.curY-d.anchor.Y, d.curX-d.anchor.X) + math.Pi/2
		mc.drawRotatedRect(output, d.startRect, angle, previewColor)
	}
}

// drawSession renders the live drawing preview.
func (mc *MapCanvas) drawSession(output *image.RGBA, session *editor.Session) {
	switch session.Tool {
	case editor.ToolRect:
		r := session.PreviewRect()
		x1, y1 := mc.ImageToCanvas(r.X, r.Y)
		x2, y2 := mc.ImageToCanvas(r.X+r.Width, r.Y+r.Height)
		drawDashedRect(output, int(x1), int(y1), int(x2), int(y2), previewColor)
	case editor.ToolCircle:
		c := session.PreviewCircle()
		cx, cy := mc.ImageToCanvas(c.CX, c.CY)
		drawCircleOutline(output, cx, cy, c.R*mc.zoom, previewColor)
	case editor.ToolPolygon:
		points := geometry.PairsToPoints(session.Vertices)
		for i := 0; i+1 < len(points); i++ {
			x1, y1 := mc.ImageToCanvas(points[i].X, points[i].Y)
			x2, y2 := mc.ImageToCanvas(points[i+1].X, points[i+1].Y)
			drawLine(output, int(x1), int(y1), int(x2), int(y2), previewColor, 2)
		}
		for _, p := range points {
			x, y := mc.ImageToCanvas(p.X, p.Y)
			drawHandle(output, int(x), int(y), handleHalf-1, handleFill, previewColor)
		}
	}
}

func (mc *MapCanvas) labelScale() int {
	scale := int(mc.zoom * 2)
	if scale < 1 {
		scale = 1
	}
	if scale > 6 {
		scale = 6
	}
	return scale
}

// CreateRenderer implements fyne.Widget.
func (mc *MapCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &mapCanvasRenderer{canvas: mc}
}

type mapCanvasRenderer struct {
	canvas *MapCanvas
}

func (r *mapCanvasRenderer) Layout(size fyne.Size) {
	if r.canvas.scroll != nil {
		r.canvas.scroll.Resize(size)
	}
	if r.canvas.fitToWindow && size.Width > 0 && size.Height > 0 && size != r.canvas.lastScrollSize {
		r.canvas.lastScrollSize = size
		r.canvas.FitToWindow()
	}
}

func (r *mapCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *mapCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *mapCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *mapCanvasRenderer) Destroy() {}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *MapCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *MapCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Offset returns the scroll container's current offset.
func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

// Size returns the scroll container's size.
func (zs *zoomScroll) Size() fyne.Size {
	return zs.scroll.Size()
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// interactiveContent wraps the raster to receive pointer events.
type interactiveContent struct {
	widget.BaseWidget
	canvas   *MapCanvas
	raster   *fynecanvas.Raster
	dragging bool
}

func newInteractiveContent(mc *MapCanvas, raster *fynecanvas.Raster) *interactiveContent {
	ic := &interactiveContent{canvas: mc, raster: raster}
	ic.ExtendBaseWidget(ic)
	return ic
}

func (ic *interactiveContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ic.raster)
}

func (ic *interactiveContent) MinSize() fyne.Size {
	return ic.raster.MinSize()
}

// eventToImage converts a viewport-relative event position to image
// coordinates, accounting for scroll offset and zoom.
func (ic *interactiveContent) eventToImage(pos fyne.Position) (float64, float64) {
	offset := ic.canvas.scroll.Offset()
	return ic.canvas.CanvasToImage(float64(pos.X+offset.X), float64(pos.Y+offset.Y))
}

func (ic *interactiveContent) Dragged(ev *fyne.DragEvent) {
	if !ic.dragging {
		ic.dragging = true
		startX, startY := ic.eventToImage(fyne.Position{
			X: ev.Position.X - ev.Dragged.DX,
			Y: ev.Position.Y - ev.Dragged.DY,
		})
		ic.canvas.beginDrag(startX, startY)
	}
	x, y := ic.eventToImage(ev.Position)
	ic.canvas.moveDrag(x, y)
}

func (ic *interactiveContent) DragEnd() {
	if !ic.dragging {
		return
	}
	ic.dragging = false
	ic.canvas.endDrag()
}

// Tapped handles single clicks: selection with the select tool, vertex
// placement with the polygon tool. Box tools draw by dragging, not clicking.
func (ic *interactiveContent) Tapped(ev *fyne.PointEvent) {
	size := ic.Size()
	if ev.Position.X < 0 || ev.Position.Y < 0 ||
		ev.Position.X > size.Width || ev.Position.Y > size.Height {
		return
	}

	ed := ic.canvas.state.Editor()
	switch ed.Tool() {
	case editor.ToolSelect, editor.ToolPolygon:
		x, y := ic.eventToImage(ev.Position)
		ed.PointerDown(x, y)
	}
}

// DoubleTapped finishes an in-progress polygon.
func (ic *interactiveContent) DoubleTapped(*fyne.PointEvent) {
	ic.canvas.state.Editor().DoubleClick()
}

func (ic *interactiveContent) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		ic.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		ic.canvas.ZoomOut()
	}
}
