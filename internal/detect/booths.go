// Package detect proposes booth annotations from the floor-plan image.
// Candidates are advisory: they become shapes only when the user accepts
// them through the editor.
package detect

import (
	"fmt"
	"image"
	"sort"

	"gocv.io/x/gocv"

	"booth-mapper/internal/config"
	"booth-mapper/pkg/geometry"
)

// Candidate is a proposed booth rectangle with a detection score.
type Candidate struct {
	Rect geometry.Rect
	// Fill is the contour area divided by the bounding-box area; close to 1
	// for clean rectangular outlines.
	Fill float64
}

// FindBoothCandidates locates rectangular outlines in a floor-plan image.
// The image is thresholded adaptively, external contours are approximated to
// polygons, and quadrilaterals within the configured area band are returned
// sorted by descending fill score.
func FindBoothCandidates(img image.Image, cfg config.DetectConfig) ([]Candidate, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("converting image: %w", err)
	}
	defer mat.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorRGBToGray)

	// Booth outlines are thin dark strokes on a light plan; invert so the
	// strokes become foreground.
	bin := gocv.NewMat()
	defer bin.Close()
	gocv.AdaptiveThreshold(gray, &bin, 255, gocv.AdaptiveThresholdMean, gocv.ThresholdBinaryInv, 21, 10)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()
	gocv.MorphologyEx(bin, &bin, gocv.MorphClose, kernel)

	maxArea := cfg.MaxArea
	if maxArea <= 0 {
		b := img.Bounds()
		maxArea = float64(b.Dx()*b.Dy()) / 10
	}

	contours := gocv.FindContours(bin, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var candidates []Candidate
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		area := gocv.ContourArea(contour)
		if area < cfg.MinArea || area > maxArea {
			continue
		}

		epsilon := 0.02 * gocv.ArcLength(contour, true)
		approx := gocv.ApproxPolyDP(contour, epsilon, true)
		isQuad := approx.Size() == 4
		approx.Close()
		if !isQuad {
			continue
		}

		bounds := gocv.BoundingRect(contour)
		boxArea := float64(bounds.Dx() * bounds.Dy())
		if boxArea == 0 {
			continue
		}

		candidates = append(candidates, Candidate{
			Rect: geometry.NewRect(
				float64(bounds.Min.X), float64(bounds.Min.Y),
				float64(bounds.Dx()), float64(bounds.Dy()),
			),
			Fill: area / boxArea,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Fill > candidates[j].Fill
	})
	return candidates, nil
}
