package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"booth-mapper/internal/app"
)

// DetectPanel runs booth detection on the plan image and lets the user accept
// candidates as real annotations.
type DetectPanel struct {
	state     *app.State
	container fyne.CanvasObject

	detectBtn *widget.Button
	acceptBtn *widget.Button
	clearBtn  *widget.Button
	list      *widget.List
	status    *widget.Label

	selected int
}

// NewDetectPanel creates the detection panel.
func NewDetectPanel(state *app.State) *DetectPanel {
	p := &DetectPanel{state: state, selected: -1}

	p.status = widget.NewLabel("Load a plan image to detect booths")
	p.status.Wrapping = fyne.TextWrapWord

	p.list = widget.NewList(
		func() int { return len(state.Candidates()) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			cands := state.Candidates()
			if i < 0 || i >= len(cands) {
				return
			}
			c := cands[i]
			obj.(*widget.Label).SetText(fmt.Sprintf("%d: %.0fx%.0f at (%.0f, %.0f)  fill %.2f",
				i+1, c.Rect.Width, c.Rect.Height, c.Rect.X, c.Rect.Y, c.Fill))
		},
	)
	p.list.OnSelected = func(i widget.ListItemID) {
		p.selected = i
		p.acceptBtn.Enable()
	}
	p.list.OnUnselected = func(widget.ListItemID) {
		p.selected = -1
		p.acceptBtn.Disable()
	}

	p.detectBtn = widget.NewButton("Detect Booths", func() { p.runDetection() })
	p.detectBtn.Disable()

	p.acceptBtn = widget.NewButton("Accept Candidate", func() { p.acceptSelected() })
	p.acceptBtn.Disable()

	p.clearBtn = widget.NewButton("Clear", func() {
		state.ClearCandidates()
	})

	buttons := container.NewVBox(p.detectBtn, p.acceptBtn, p.clearBtn, p.status)
	p.container = container.NewBorder(nil, buttons, nil, nil, p.list)

	state.On(app.EventImageLoaded, func(interface{}) {
		p.detectBtn.Enable()
		p.status.SetText("Ready")
	})
	state.On(app.EventCandidatesFound, func(interface{}) {
		p.selected = -1
		p.acceptBtn.Disable()
		p.list.UnselectAll()
		p.list.Refresh()
		p.status.SetText(fmt.Sprintf("%d candidates", len(state.Candidates())))
	})

	return p
}

// Container returns the panel container.
func (p *DetectPanel) Container() fyne.CanvasObject {
	return p.container
}

func (p *DetectPanel) runDetection() {
	p.status.SetText("Detecting...")
	if err := p.state.DetectBooths(); err != nil {
		p.status.SetText("Detection failed: " + err.Error())
	}
}

func (p *DetectPanel) acceptSelected() {
	if p.selected < 0 {
		return
	}
	if err := p.state.AcceptCandidate(p.selected); err != nil {
		p.status.SetText(err.Error())
	}
}
