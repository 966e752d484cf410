package app

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"booth-mapper/internal/editor"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestLoadImageEnablesEditing(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()

	// Pointer input is ignored until an image is loaded.
	s.Editor().ToolChanged(editor.ToolRect)
	s.Editor().PointerDown(10, 10)
	s.Editor().PointerMove(50, 80)
	s.Editor().PointerUp()
	if s.Editor().Set().Len() != 0 {
		t.Fatal("shape committed before any image was loaded")
	}

	loaded := make(chan struct{})
	s.On(EventImageLoaded, func(interface{}) { close(loaded) })
	s.LoadImage(writeTestPNG(t, 800, 600))
	waitFor(t, loaded, "image load")

	if w, h := s.ImageSize(); w != 800 || h != 600 {
		t.Errorf("image size = %dx%d, want 800x600", w, h)
	}

	s.Editor().PointerDown(10, 10)
	s.Editor().PointerMove(50, 80)
	s.Editor().PointerUp()
	if s.Editor().Set().Len() != 1 {
		t.Fatal("shape not committed after image load")
	}
}

func TestLoadImageAppliesOnDeliverQueue(t *testing.T) {
	// deliver buffers completions like the UI event queue; no state field may
	// change until the queued completion runs on the owning goroutine.
	var mu sync.Mutex
	var queue []func()
	s := NewState(nil, func(fn func()) {
		mu.Lock()
		queue = append(queue, fn)
		mu.Unlock()
	})
	defer s.Close()

	s.LoadImage(writeTestPNG(t, 320, 200))

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(queue)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the queued completion")
		}
		time.Sleep(time.Millisecond)
	}

	if s.PlanImage() != nil {
		t.Fatal("plan image set before the completion was dispatched")
	}
	s.Editor().ToolChanged(editor.ToolRect)
	s.Editor().PointerDown(10, 10)
	if s.Editor().Session() != nil {
		t.Fatal("drawing enabled before the completion was dispatched")
	}

	mu.Lock()
	pending := queue
	queue = nil
	mu.Unlock()
	for _, fn := range pending {
		fn()
	}

	if s.PlanImage() == nil {
		t.Fatal("plan image not set after dispatch")
	}
	if w, h := s.ImageSize(); w != 320 || h != 200 {
		t.Errorf("image size = %dx%d, want 320x200", w, h)
	}
	s.Editor().PointerDown(10, 10)
	s.Editor().PointerMove(30, 30)
	s.Editor().PointerUp()
	if s.Editor().Set().Len() != 1 {
		t.Error("drawing not enabled after dispatch")
	}
}

func TestLoadImageFailureEmitsEvent(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()

	failed := make(chan struct{})
	s.On(EventImageLoadFailed, func(interface{}) { close(failed) })
	s.LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	waitFor(t, failed, "load failure")

	if s.PlanImage() != nil {
		t.Error("plan image set despite load failure")
	}
}

func TestExportUsesConfiguredTargets(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()

	loaded := make(chan struct{})
	s.On(EventImageLoaded, func(interface{}) { close(loaded) })
	s.LoadImage(writeTestPNG(t, 100, 100))
	waitFor(t, loaded, "image load")

	s.Editor().ToolChanged(editor.ToolRect)
	s.Editor().PointerDown(10, 10)
	s.Editor().PointerMove(50, 80)
	s.Editor().PointerUp()

	var ready bool
	s.On(EventExportReady, func(interface{}) { ready = true })

	text, err := s.Export()
	if err != nil {
		t.Fatal(err)
	}
	if !ready {
		t.Error("EventExportReady not emitted")
	}
	if text != s.LastExport() {
		t.Error("LastExport does not match returned text")
	}

	// One line per (shape, target): defaults carry two targets.
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d export lines, want 2: %q", len(lines), text)
	}
	for i, target := range s.Config().Export.Targets {
		if !strings.HasPrefix(lines[i], target+"\t") {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], target+"\t")
		}
	}
}

func TestEditorEventsForwarded(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()

	loaded := make(chan struct{})
	s.On(EventImageLoaded, func(interface{}) { close(loaded) })
	s.LoadImage(writeTestPNG(t, 100, 100))
	waitFor(t, loaded, "image load")

	var shapesChanged, toolChanged int
	s.On(EventShapesChanged, func(interface{}) { shapesChanged++ })
	s.On(EventToolChanged, func(interface{}) { toolChanged++ })

	s.Editor().ToolChanged(editor.ToolCircle)
	s.Editor().PointerDown(50, 50)
	s.Editor().PointerMove(80, 50)
	s.Editor().PointerUp()

	if toolChanged != 1 {
		t.Errorf("tool change events = %d, want 1", toolChanged)
	}
	if shapesChanged != 1 {
		t.Errorf("shape change events = %d, want 1", shapesChanged)
	}
}

func TestDetectWithoutImageFails(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()
	if err := s.DetectBooths(); err == nil {
		t.Fatal("expected error detecting with no image loaded")
	}
}

func TestAcceptCandidateOutOfRange(t *testing.T) {
	s := NewState(nil, nil)
	defer s.Close()
	if err := s.AcceptCandidate(0); err == nil {
		t.Fatal("expected error accepting candidate with none present")
	}
}
