package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"booth-mapper/internal/annotation"
	"booth-mapper/internal/app"
)

// ShapesPanel lists the annotated booths and edits the fields of the selected
// one. Selection is shared with the canvas through the editor.
type ShapesPanel struct {
	state     *app.State
	container fyne.CanvasObject

	list       *widget.List
	nameEntry  *widget.Entry
	boothEntry *widget.Entry
	deleteBtn  *widget.Button

	// Guards against feedback loops while the panel itself updates widgets.
	updating bool
}

// NewShapesPanel creates the booth list panel.
func NewShapesPanel(state *app.State) *ShapesPanel {
	p := &ShapesPanel{state: state}

	p.list = widget.NewList(
		func() int { return state.Editor().Set().Len() },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			shapes := state.Editor().Set().Shapes()
			if i < 0 || i >= len(shapes) {
				return
			}
			obj.(*widget.Label).SetText(shapeListText(shapes[i]))
		},
	)
	p.list.OnSelected = func(i widget.ListItemID) {
		if p.updating {
			return
		}
		shapes := state.Editor().Set().Shapes()
		if i >= 0 && i < len(shapes) {
			state.Editor().Select(shapes[i].ID)
		}
	}
	p.list.OnUnselected = func(widget.ListItemID) {
		if p.updating {
			return
		}
		state.Editor().Deselect()
	}

	p.nameEntry = widget.NewEntry()
	p.nameEntry.SetPlaceHolder("Exhibitor name")
	p.nameEntry.OnChanged = func(text string) {
		if p.updating {
			return
		}
		if id := state.Editor().Selection(); id != "" {
			state.Editor().Rename(id, text)
		}
	}

	p.boothEntry = widget.NewEntry()
	p.boothEntry.SetPlaceHolder("Booth number")
	p.boothEntry.OnChanged = func(text string) {
		if p.updating {
			return
		}
		if id := state.Editor().Selection(); id != "" {
			state.Editor().SetBoothNo(id, text)
		}
	}

	p.deleteBtn = widget.NewButton("Delete Booth", func() {
		if id := state.Editor().Selection(); id != "" {
			state.Editor().Remove(id)
		}
	})
	p.deleteBtn.Disable()

	form := container.NewVBox(
		widget.NewLabel("Name:"),
		p.nameEntry,
		widget.NewLabel("Booth No:"),
		p.boothEntry,
		p.deleteBtn,
	)

	p.container = container.NewBorder(nil, form, nil, nil, p.list)

	state.On(app.EventShapesChanged, func(interface{}) { p.refresh() })
	state.On(app.EventSelectionChanged, func(interface{}) { p.refresh() })

	return p
}

// Container returns the panel container.
func (p *ShapesPanel) Container() fyne.CanvasObject {
	return p.container
}

// refresh syncs the list selection and field entries with editor state.
func (p *ShapesPanel) refresh() {
	p.updating = true
	defer func() { p.updating = false }()

	p.list.Refresh()

	shape := p.state.Editor().SelectedShape()
	if shape == nil {
		p.list.UnselectAll()
		p.nameEntry.SetText("")
		p.boothEntry.SetText("")
		p.deleteBtn.Disable()
		return
	}

	for i, s := range p.state.Editor().Set().Shapes() {
		if s.ID == shape.ID {
			p.list.Select(i)
			break
		}
	}
	if p.nameEntry.Text != shape.Name {
		p.nameEntry.SetText(shape.Name)
	}
	if p.boothEntry.Text != shape.BoothNo {
		p.boothEntry.SetText(shape.BoothNo)
	}
	p.deleteBtn.Enable()
}

// shapeListText formats one list row: kind plus whatever identifying text the
// shape carries.
func shapeListText(s *annotation.Shape) string {
	label := s.BoothNo
	if label == "" {
		label = s.Name
	}
	if label == "" {
		label = "(unnamed)"
	}
	return fmt.Sprintf("%s  %s", s.Kind, label)
}
