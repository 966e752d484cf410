// Command boothdetect runs booth detection on a floor-plan image and prints
// the candidates. Useful for tuning detection thresholds without the GUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"booth-mapper/internal/config"
	"booth-mapper/internal/detect"
)

func main() {
	imagePath := flag.String("image", "", "Path to floor-plan image")
	minArea := flag.Float64("min-area", 400, "Minimum candidate area in pixels")
	maxArea := flag.Float64("max-area", 0, "Maximum candidate area in pixels (0 = image area / 10)")
	ocr := flag.Bool("ocr", false, "Run booth number OCR on each candidate")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: boothdetect -image <path> [-min-area 400] [-max-area 0] [-ocr]")
		os.Exit(1)
	}

	img, err := imaging.Open(*imagePath, imaging.AutoOrientation(true))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Loaded %s: %dx%d pixels\n", *imagePath, bounds.Dx(), bounds.Dy())

	cfg := config.DetectConfig{MinArea: *minArea, MaxArea: *maxArea}
	candidates, err := detect.FindBoothCandidates(img, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}

	var engine *detect.OCREngine
	if *ocr {
		engine, err = detect.NewOCREngine()
		if err != nil {
			fmt.Fprintf(os.Stderr, "OCR unavailable: %v\n", err)
		} else {
			defer engine.Close()
		}
	}

	fmt.Printf("\nDetected %d candidates:\n", len(candidates))
	fmt.Printf("%-4s %8s %8s %8s %8s %6s  %s\n", "#", "X", "Y", "W", "H", "Fill", "BoothNo")
	for i, c := range candidates {
		boothNo := ""
		if engine != nil {
			if text, err := engine.ReadBoothNo(img, c.Rect); err == nil {
				boothNo = text
			}
		}
		fmt.Printf("%-4d %8.0f %8.0f %8.0f %8.0f %6.2f  %s\n",
			i+1, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, c.Fill, boothNo)
	}
}
