// Package app provides application lifecycle management, configuration, and events.
package app

import (
	"fmt"
	"image"
	"log"

	"booth-mapper/internal/annotation"
	"booth-mapper/internal/config"
	"booth-mapper/internal/detect"
	"booth-mapper/internal/editor"
	"booth-mapper/internal/export"
	"booth-mapper/internal/imageload"
)

// EventType identifies different application events.
type EventType int

const (
	EventImageLoaded EventType = iota
	EventImageLoadFailed
	EventShapesChanged
	EventSelectionChanged
	EventSessionChanged
	EventToolChanged
	EventExportReady
	EventCandidatesFound
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the loaded plan image, the annotation
// editor, detection candidates, and the last export. All mutation happens on
// the single UI event queue; the image loader is the only asynchronous
// boundary and delivers its completion back onto that queue.
type State struct {
	cfg    *config.Config
	editor *editor.Editor
	loader *imageload.Loader

	imagePath   string
	planImage   image.Image
	imageWidth  int
	imageHeight int

	candidates []detect.Candidate
	ocr        *detect.OCREngine

	lastExport string

	listeners map[EventType][]EventListener
}

// NewState creates application state. deliver posts loader completions onto
// the UI event queue; nil runs them inline (used by tests).
func NewState(cfg *config.Config, deliver func(func())) *State {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &State{
		cfg:       cfg,
		editor:    editor.New(),
		loader:    imageload.New(deliver),
		listeners: make(map[EventType][]EventListener),
	}

	if tool, ok := editor.ParseTool(cfg.UI.DefaultTool); ok {
		s.editor.ToolChanged(tool)
	}

	// Forward editor notifications as application events.
	s.editor.On(editor.EventShapesChanged, func() { s.Emit(EventShapesChanged, nil) })
	s.editor.On(editor.EventSelectionChanged, func() { s.Emit(EventSelectionChanged, nil) })
	s.editor.On(editor.EventSessionChanged, func() { s.Emit(EventSessionChanged, nil) })
	s.editor.On(editor.EventToolChanged, func() { s.Emit(EventToolChanged, nil) })

	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	for _, listener := range s.listeners[event] {
		listener(data)
	}
}

// Config returns the loaded configuration.
func (s *State) Config() *config.Config {
	return s.cfg
}

// Editor returns the annotation editor.
func (s *State) Editor() *editor.Editor {
	return s.editor
}

// LoadImage starts loading a plan image and returns immediately. A newer
// request supersedes a pending one; the stale result is discarded by the
// loader and never reaches this state.
func (s *State) LoadImage(path string) {
	log.Printf("loading plan image %s", path)
	s.loader.Request(path, func(res imageload.Result, err error) {
		if err != nil {
			log.Printf("image load failed: %v", err)
			s.Emit(EventImageLoadFailed, err)
			return
		}
		s.imagePath = res.Path
		s.planImage = res.Image
		s.imageWidth = res.Width
		s.imageHeight = res.Height
		s.candidates = nil
		s.editor.SetImageLoaded(true)
		log.Printf("loaded %s (%dx%d)", res.Path, res.Width, res.Height)
		s.Emit(EventImageLoaded, res)
	})
}

// PlanImage returns the loaded image, or nil.
func (s *State) PlanImage() image.Image {
	return s.planImage
}

// ImagePath returns the path of the loaded image.
func (s *State) ImagePath() string {
	return s.imagePath
}

// ImageSize returns the loaded image dimensions.
func (s *State) ImageSize() (int, int) {
	return s.imageWidth, s.imageHeight
}

// Export serializes the annotation set against the configured target ids,
// stores the result as the last export, and emits EventExportReady.
func (s *State) Export() (string, error) {
	text, err := export.ExportAll(s.editor.Set().Shapes(), s.cfg.Export.Targets)
	if err != nil {
		return "", err
	}
	s.lastExport = text
	log.Printf("exported %d shapes against %d targets",
		s.editor.Set().Len(), len(s.cfg.Export.Targets))
	s.Emit(EventExportReady, text)
	return text, nil
}

// LastExport returns the most recent export text, empty if none.
func (s *State) LastExport() string {
	return s.lastExport
}

// DetectBooths proposes booth rectangles from the loaded image.
func (s *State) DetectBooths() error {
	if s.planImage == nil {
		return fmt.Errorf("no image loaded")
	}
	candidates, err := detect.FindBoothCandidates(s.planImage, s.cfg.Detect)
	if err != nil {
		return fmt.Errorf("booth detection: %w", err)
	}
	s.candidates = candidates
	log.Printf("detected %d booth candidates", len(candidates))
	s.Emit(EventCandidatesFound, candidates)
	return nil
}

// Candidates returns the current detection candidates.
func (s *State) Candidates() []detect.Candidate {
	return s.candidates
}

// ClearCandidates discards all detection candidates.
func (s *State) ClearCandidates() {
	if s.candidates == nil {
		return
	}
	s.candidates = nil
	s.Emit(EventCandidatesFound, s.candidates)
}

// AcceptCandidate commits detection candidate i as a rectangle shape. When
// OCR is available the booth number is pre-filled from the pixels inside the
// candidate; OCR failure leaves the field empty and is not an error.
func (s *State) AcceptCandidate(i int) error {
	if i < 0 || i >= len(s.candidates) {
		return fmt.Errorf("candidate %d out of range", i)
	}
	cand := s.candidates[i]
	shape := annotation.NewRectShape(cand.Rect)

	if engine := s.ocrEngine(); engine != nil {
		if text, err := engine.ReadBoothNo(s.planImage, cand.Rect); err == nil {
			shape.BoothNo = text
		} else {
			log.Printf("booth OCR: %v", err)
		}
	}

	s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
	s.editor.AddShape(shape)
	s.Emit(EventCandidatesFound, s.candidates)
	return nil
}

// ocrEngine lazily creates the OCR engine. A missing Tesseract installation
// disables booth-number pre-fill without failing detection.
func (s *State) ocrEngine() *detect.OCREngine {
	if s.ocr != nil {
		return s.ocr
	}
	engine, err := detect.NewOCREngine()
	if err != nil {
		log.Printf("OCR unavailable: %v", err)
		return nil
	}
	s.ocr = engine
	return engine
}

// Close releases resources held by the state.
func (s *State) Close() {
	if s.ocr != nil {
		_ = s.ocr.Close()
		s.ocr = nil
	}
}
