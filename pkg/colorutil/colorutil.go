// Package colorutil provides the shared annotation color palette.
package colorutil

import "image/color"

// Common colors used by the canvas and overlay rendering.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Booth is the outline color for committed shapes.
	Booth = color.RGBA{R: 0x1A, G: 0x56, B: 0xA0, A: 255}
	// Selected marks the selected shape and its handles.
	Selected = color.RGBA{R: 0xFF, G: 0x8F, B: 0x00, A: 255}
	// Preview is used for in-progress drawing and transform previews.
	Preview = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	// Candidate marks detection proposals not yet accepted.
	Candidate = color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 255}
)

// Dim scales a color's channels toward black by factor (0 keeps the color,
// 1 yields black). Alpha is preserved.
func Dim(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	keep := 1 - factor
	return color.RGBA{
		R: uint8(float64(c.R) * keep),
		G: uint8(float64(c.G) * keep),
		B: uint8(float64(c.B) * keep),
		A: c.A,
	}
}
