// Package panels provides UI panels for the application.
package panels

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"booth-mapper/internal/app"
	"booth-mapper/ui/canvas"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	canvas    *canvas.MapCanvas
	container *container.AppTabs

	shapesPanel *ShapesPanel
	detectPanel *DetectPanel
	exportPanel *ExportPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, cvs *canvas.MapCanvas) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cvs,
	}

	sp.shapesPanel = NewShapesPanel(state)
	sp.detectPanel = NewDetectPanel(state)
	sp.exportPanel = NewExportPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Booths", sp.shapesPanel.Container()),
		container.NewTabItem("Detect", sp.detectPanel.Container()),
		container.NewTabItem("Export", sp.exportPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.exportPanel.SetWindow(w)
}
