// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"booth-mapper/internal/app"
	"booth-mapper/internal/editor"
	"booth-mapper/internal/version"
	"booth-mapper/ui/canvas"
	"booth-mapper/ui/panels"
)

const (
	prefKeyLastDir   = "lastDirectory"
	prefKeyLastImage = "lastPlanImage"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	canvas    *canvas.MapCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	toolButtons map[editor.Tool]*widget.Button

	fitToWindowItem *fyne.MenuItem
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State) *MainWindow {
	win := fyneApp.NewWindow("Booth Mapper")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupKeys()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.New(mw.state)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Open a floor plan to start annotating")

	toolbar := mw.createToolbar()

	mw.restoreLastImage()

	canvasArea := container.NewBorder(
		toolbar, nil, nil, nil,
		mw.canvas.Container(),
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil, nil,
		split,
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1200, 800))
}

// createToolbar creates the toolbar with tool and zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	mw.toolButtons = make(map[editor.Tool]*widget.Button)

	makeToolButton := func(label string, tool editor.Tool) *widget.Button {
		btn := widget.NewButton(label, func() {
			mw.state.Editor().ToolChanged(tool)
		})
		mw.toolButtons[tool] = btn
		return btn
	}

	selectBtn := makeToolButton("Select", editor.ToolSelect)
	rectBtn := makeToolButton("Rect", editor.ToolRect)
	circleBtn := makeToolButton("Circle", editor.ToolCircle)
	polyBtn := makeToolButton("Polygon", editor.ToolPolygon)

	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	fitBtn := widget.NewButton("Fit", mw.onToggleFitToWindow)
	actualBtn := widget.NewButton("1:1", mw.onActualSize)

	mw.highlightTool(mw.state.Editor().Tool())

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		selectBtn, rectBtn, circleBtn, polyBtn,
		widget.NewSeparator(),
		widget.NewLabel("Zoom:"),
		zoomOutBtn, zoomInBtn, fitBtn, actualBtn,
	)
}

// highlightTool marks the active tool button.
func (mw *MainWindow) highlightTool(active editor.Tool) {
	for tool, btn := range mw.toolButtons {
		if tool == active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Plan Image...", mw.onOpenImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export", mw.onExport),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Delete Booth", func() { mw.state.Editor().KeyDelete() }),
		fyne.NewMenuItem("Deselect", func() { mw.state.Editor().Deselect() }),
	)

	mw.fitToWindowItem = fyne.NewMenuItem("  Fit to Window", mw.onToggleFitToWindow)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		mw.fitToWindowItem,
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Detect Booths", mw.onDetectBooths),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, toolsMenu, helpMenu))
}

// setupKeys routes keyboard input to the editor.
func (mw *MainWindow) setupKeys() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			mw.state.Editor().KeyEscape()
		case fyne.KeyDelete, fyne.KeyBackspace:
			// Entries grab focus while editing fields; only delete shapes
			// when nothing has keyboard focus.
			if mw.Canvas().Focused() == nil {
				mw.state.Editor().KeyDelete()
			}
		}
	})
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventImageLoaded, func(data interface{}) {
		mw.SetTitle("Booth Mapper - " + filepath.Base(mw.state.ImagePath()))
		w, h := mw.state.ImageSize()
		mw.updateStatus(fmt.Sprintf("Loaded %s (%dx%d)", filepath.Base(mw.state.ImagePath()), w, h))
	})

	mw.state.On(app.EventImageLoadFailed, func(data interface{}) {
		if err, ok := data.(error); ok {
			dialog.ShowError(err, mw.Window)
		}
		mw.updateStatus("Image load failed")
	})

	mw.state.On(app.EventToolChanged, func(interface{}) {
		tool := mw.state.Editor().Tool()
		mw.highlightTool(tool)
		mw.updateStatus("Tool: " + tool.String())
	})

	mw.state.On(app.EventShapesChanged, func(interface{}) {
		mw.updateStatus(fmt.Sprintf("%d booths annotated", mw.state.Editor().Set().Len()))
	})

	mw.state.On(app.EventExportReady, func(interface{}) {
		mw.updateStatus("Export ready")
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.app.Preferences().String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.app.Preferences().SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// restoreLastImage reloads the previously opened plan image, if any.
func (mw *MainWindow) restoreLastImage() {
	if path := mw.app.Preferences().String(prefKeyLastImage); path != "" {
		mw.state.LoadImage(path)
	}
}

// Menu action handlers

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.app.Preferences().SetString(prefKeyLastImage, path)
		mw.state.LoadImage(path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(
		[]string{".png", ".jpg", ".jpeg", ".gif", ".tiff", ".tif", ".bmp", ".webp"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExport() {
	if _, err := mw.state.Export(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onDetectBooths() {
	if err := mw.state.DetectBooths(); err != nil {
		mw.updateStatus(err.Error())
	}
}

func (mw *MainWindow) onZoomIn() {
	mw.disableFitToWindow()
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.disableFitToWindow()
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onToggleFitToWindow() {
	enabled := !mw.canvas.GetFitToWindow()
	mw.canvas.SetFitToWindow(enabled)

	if enabled {
		mw.fitToWindowItem.Label = "✓ Fit to Window"
	} else {
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onActualSize() {
	mw.disableFitToWindow()
	mw.canvas.SetZoom(1.0)
}

func (mw *MainWindow) disableFitToWindow() {
	if mw.canvas.GetFitToWindow() {
		mw.canvas.SetFitToWindow(false)
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Booth Mapper",
		fmt.Sprintf("Booth Mapper v%s\n\n"+
			"Annotate exhibition floor plans with booth\n"+
			"rectangles, circles, and polygons.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
