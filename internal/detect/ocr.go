package detect

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"

	"booth-mapper/pkg/geometry"
)

// BoothChars is the character set for booth number OCR. Lowercase is
// excluded to avoid 0/O and 1/l confusion on printed plans.
const BoothChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ-."

// OCREngine reads booth numbers from floor-plan regions using Tesseract.
type OCREngine struct {
	client *gosseract.Client
}

// NewOCREngine creates an OCR engine restricted to the booth character set.
func NewOCREngine() (*OCREngine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}
	// Booth numbers are not dictionary words; disable word correction.
	_ = client.SetVariable("load_system_dawg", "false")
	_ = client.SetVariable("load_freq_dawg", "false")

	return &OCREngine{client: client}, nil
}

// Close releases OCR resources.
func (e *OCREngine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// ReadBoothNo runs OCR over the given region of the plan image and returns
// the cleaned-up text, empty when nothing legible was found.
func (e *OCREngine) ReadBoothNo(img image.Image, region geometry.Rect) (string, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return "", fmt.Errorf("converting image: %w", err)
	}
	defer mat.Close()

	x := max(0, int(region.X))
	y := max(0, int(region.Y))
	w := min(int(region.Width), mat.Cols()-x)
	h := min(int(region.Height), mat.Rows()-y)
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("region outside image bounds")
	}

	crop := mat.Region(image.Rect(x, y, x+w, y+h))
	defer crop.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(crop, &gray, gocv.ColorRGBToGray)
	gocv.Threshold(gray, &gray, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)

	buf, err := gocv.IMEncode(gocv.PNGFileExt, gray)
	if err != nil {
		return "", fmt.Errorf("failed to encode region: %w", err)
	}
	defer buf.Close()

	if err := e.client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}
	if err := e.client.SetWhitelist(BoothChars); err != nil {
		return "", fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	text = strings.ToUpper(strings.Join(strings.Fields(text), " "))
	return text, nil
}
