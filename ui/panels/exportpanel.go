package panels

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"booth-mapper/internal/app"
)

// ExportPanel serializes the annotation set and shows the result. Each line
// pairs a target id with the JSON payload for one booth.
type ExportPanel struct {
	state     *app.State
	window    fyne.Window
	container fyne.CanvasObject

	targetsLabel *widget.Label
	output       *widget.Entry
	exportBtn    *widget.Button
	saveBtn      *widget.Button
	status       *widget.Label
}

// NewExportPanel creates the export panel.
func NewExportPanel(state *app.State) *ExportPanel {
	p := &ExportPanel{state: state}

	p.targetsLabel = widget.NewLabel("Targets: " + strings.Join(state.Config().Export.Targets, ", "))
	p.targetsLabel.Wrapping = fyne.TextWrapWord

	p.output = widget.NewMultiLineEntry()
	p.output.Wrapping = fyne.TextWrapOff
	p.output.SetPlaceHolder("Export output appears here")

	p.status = widget.NewLabel("")
	p.status.Wrapping = fyne.TextWrapWord

	p.exportBtn = widget.NewButton("Export", func() { p.runExport() })
	p.saveBtn = widget.NewButton("Save As...", func() { p.saveToFile() })
	p.saveBtn.Disable()

	top := container.NewVBox(p.targetsLabel, p.exportBtn, p.saveBtn, p.status)
	p.container = container.NewBorder(top, nil, nil, nil, p.output)

	state.On(app.EventExportReady, func(data interface{}) {
		if text, ok := data.(string); ok {
			p.output.SetText(text)
			p.saveBtn.Enable()
		}
	})

	return p
}

// Container returns the panel container.
func (p *ExportPanel) Container() fyne.CanvasObject {
	return p.container
}

// SetWindow sets the parent window for the save dialog.
func (p *ExportPanel) SetWindow(w fyne.Window) {
	p.window = w
}

func (p *ExportPanel) runExport() {
	text, err := p.state.Export()
	if err != nil {
		p.status.SetText("Export failed: " + err.Error())
		return
	}
	lines := strings.Count(text, "\n")
	p.status.SetText(fmt.Sprintf("%d lines exported", lines))
}

func (p *ExportPanel) saveToFile() {
	if p.window == nil {
		return
	}
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write([]byte(p.state.LastExport())); err != nil {
			dialog.ShowError(err, p.window)
			return
		}
		p.status.SetText("Saved " + filepath.Base(writer.URI().Path()))
	}, p.window)
	fd.SetFileName("booths.tsv")
	fd.Show()
}
