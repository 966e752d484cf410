// Package imageload decodes floor-plan images off the event loop. Loading is
// the only asynchronous boundary in the application: a request returns
// immediately and the completion callback is delivered back on the caller's
// event queue.
package imageload

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"sync"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Result carries a decoded image and its dimensions.
type Result struct {
	Path   string
	Image  image.Image
	Width  int
	Height int
}

// Loader performs asynchronous image loads. A new request supersedes the
// pending one: results that arrive for an outdated request are discarded.
type Loader struct {
	mu         sync.Mutex
	generation uint64

	// deliver posts the completion callback onto the owner's event queue.
	deliver func(func())

	// decode is swappable in tests.
	decode func(path string) (image.Image, error)
}

// New creates a loader. deliver must execute the given function on the same
// serialized event queue the rest of the application runs on; nil runs
// completions inline on the decoding goroutine.
func New(deliver func(func())) *Loader {
	if deliver == nil {
		deliver = func(fn func()) { fn() }
	}
	return &Loader{
		deliver: deliver,
		decode:  decodeFile,
	}
}

// Request starts loading path and returns immediately. done is invoked
// exactly once via the deliver queue unless the request is superseded by a
// newer one, in which case the stale result is dropped without a callback.
func (l *Loader) Request(path string, done func(Result, error)) {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	go func() {
		img, err := l.decode(path)

		if l.superseded(gen) {
			log.Printf("imageload: discarding superseded result for %s", path)
			return
		}

		l.deliver(func() {
			// A newer request may have arrived while this completion sat on
			// the queue; the check before deliver is not enough.
			if l.superseded(gen) {
				log.Printf("imageload: discarding superseded result for %s", path)
				return
			}
			if err != nil {
				done(Result{Path: path}, fmt.Errorf("loading %s: %w", path, err))
				return
			}
			bounds := img.Bounds()
			done(Result{
				Path:   path,
				Image:  img,
				Width:  bounds.Dx(),
				Height: bounds.Dy(),
			}, nil)
		})
	}()
}

// superseded reports whether a newer request has replaced generation gen.
func (l *Loader) superseded(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen != l.generation
}

// decodeFile opens an image with EXIF orientation applied. The blank imports
// above register the jpeg/png/gif/tiff/bmp/webp decoders.
func decodeFile(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// Thumbnail returns a copy of img scaled to fit within maxW x maxH,
// preserving aspect ratio. Used for list previews.
func Thumbnail(img image.Image, maxW, maxH int) image.Image {
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
