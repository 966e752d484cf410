package imageload

import (
	"errors"
	"image"
	"sync"
	"testing"
	"time"
)

func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestRequestDeliversResult(t *testing.T) {
	l := New(nil)
	l.decode = func(path string) (image.Image, error) {
		return testImage(640, 480), nil
	}

	done := make(chan Result, 1)
	l.Request("plan.png", func(res Result, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		done <- res
	})

	select {
	case res := <-done:
		if res.Width != 640 || res.Height != 480 {
			t.Errorf("dimensions = %dx%d, want 640x480", res.Width, res.Height)
		}
		if res.Path != "plan.png" {
			t.Errorf("path = %q", res.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestRequestReportsDecodeError(t *testing.T) {
	l := New(nil)
	decodeErr := errors.New("bad magic")
	l.decode = func(path string) (image.Image, error) {
		return nil, decodeErr
	}

	done := make(chan error, 1)
	l.Request("broken.png", func(_ Result, err error) { done <- err })

	select {
	case err := <-done:
		if !errors.Is(err, decodeErr) {
			t.Errorf("err = %v, want wrapped decode error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestSupersededRequestIsDiscarded(t *testing.T) {
	l := New(nil)

	// The first decode blocks until released, guaranteeing the second
	// request lands while the first is still in flight.
	release := make(chan struct{})
	l.decode = func(path string) (image.Image, error) {
		if path == "old.png" {
			<-release
		}
		return testImage(10, 10), nil
	}

	var mu sync.Mutex
	var delivered []string
	done := make(chan struct{}, 2)
	callback := func(res Result, err error) {
		mu.Lock()
		delivered = append(delivered, res.Path)
		mu.Unlock()
		done <- struct{}{}
	}

	l.Request("old.png", callback)
	l.Request("new.png", callback)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for new.png")
	}
	close(release)

	// Give the stale goroutine a chance to (incorrectly) deliver.
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 || delivered[0] != "new.png" {
		t.Errorf("delivered = %v, want only new.png", delivered)
	}
}

func TestQueuedResultSupersededBeforeDispatch(t *testing.T) {
	// deliver buffers completions the way a UI event queue does, so a
	// completion can sit queued while a newer request arrives.
	var mu sync.Mutex
	var queue []func()
	l := New(func(fn func()) {
		mu.Lock()
		queue = append(queue, fn)
		mu.Unlock()
	})
	l.decode = func(path string) (image.Image, error) {
		return testImage(10, 10), nil
	}

	queued := func(n int) bool {
		mu.Lock()
		defer mu.Unlock()
		return len(queue) >= n
	}
	waitQueued := func(n int) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for !queued(n) {
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for %d queued completions", n)
			}
			time.Sleep(time.Millisecond)
		}
	}

	var delivered []string
	callback := func(res Result, err error) {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		delivered = append(delivered, res.Path)
	}

	// The first completion is already queued when the second request lands,
	// so only the dispatch-time check can catch it.
	l.Request("old.png", callback)
	waitQueued(1)
	l.Request("new.png", callback)
	waitQueued(2)

	mu.Lock()
	pending := queue
	queue = nil
	mu.Unlock()
	for _, fn := range pending {
		fn()
	}

	if len(delivered) != 1 || delivered[0] != "new.png" {
		t.Errorf("delivered = %v, want only new.png", delivered)
	}
}

func TestThumbnailFitsBounds(t *testing.T) {
	img := Thumbnail(testImage(1000, 500), 100, 100)
	b := img.Bounds()
	if b.Dx() > 100 || b.Dy() > 100 {
		t.Errorf("thumbnail = %dx%d, want within 100x100", b.Dx(), b.Dy())
	}
	// Aspect ratio preserved.
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("thumbnail = %dx%d, want 100x50", b.Dx(), b.Dy())
	}
}
