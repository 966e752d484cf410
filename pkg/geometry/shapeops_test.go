package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeRect(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           Rect
	}{
		{"down-right", 10, 10, 50, 80, Rect{X: 10, Y: 10, Width: 40, Height: 70}},
		{"up-left", 50, 80, 10, 10, Rect{X: 10, Y: 10, Width: 40, Height: 70}},
		{"down-left", 50, 10, 10, 80, Rect{X: 10, Y: 10, Width: 40, Height: 70}},
		{"up-right", 10, 80, 50, 10, Rect{X: 10, Y: 10, Width: 40, Height: 70}},
		{"degenerate", 25, 25, 25, 25, Rect{X: 25, Y: 25, Width: 0, Height: 0}},
		{"negative coords", -30, -10, -5, -40, Rect{X: -30, Y: -40, Width: 25, Height: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRect(tt.x1, tt.y1, tt.x2, tt.y2)
			if got != tt.want {
				t.Errorf("NormalizeRect(%v,%v,%v,%v) = %+v, want %+v",
					tt.x1, tt.y1, tt.x2, tt.y2, got, tt.want)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("negative dimensions: %+v", got)
			}
		})
	}
}

func TestCircleRadius(t *testing.T) {
	if r := CircleRadius(100, 100, 130, 100); r != 30 {
		t.Errorf("CircleRadius = %v, want 30", r)
	}
	if r := CircleRadius(5, 5, 5, 5); r != 0 {
		t.Errorf("CircleRadius at center = %v, want 0", r)
	}
	if r := CircleRadius(0, 0, 3, 4); r != 5 {
		t.Errorf("CircleRadius = %v, want 5", r)
	}
}

func TestTranslatePolygon(t *testing.T) {
	pts := []float64{0, 0, 10, 0, 5, 10}
	got := TranslatePolygon(pts, 3, -2)
	want := []float64{3, -2, 13, -2, 8, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("TranslatePolygon = %v, want %v", got, want)
		}
	}
	// Input must not be mutated.
	if pts[0] != 0 || pts[1] != 0 {
		t.Errorf("input mutated: %v", pts)
	}
}

func TestSetVertex(t *testing.T) {
	pts := []float64{0, 0, 10, 0, 5, 10}

	got, err := SetVertex(pts, 1, 20, 30)
	if err != nil {
		t.Fatalf("SetVertex: %v", err)
	}
	if got[2] != 20 || got[3] != 30 {
		t.Errorf("vertex 1 = (%v,%v), want (20,30)", got[2], got[3])
	}
	if pts[2] != 10 {
		t.Errorf("input mutated: %v", pts)
	}

	for _, idx := range []int{-1, 3, 100} {
		if _, err := SetVertex(pts, idx, 0, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetVertex(index=%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestApplyAffineToRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 40, Height: 70}
	got := ApplyAffineToRect(r, 2, 1, 100, 200)
	want := Rect{X: 100, Y: 200, Width: 80, Height: 70}
	if got != want {
		t.Errorf("ApplyAffineToRect = %+v, want %+v", got, want)
	}
}

func TestApplyAffineToCircle(t *testing.T) {
	c := Circle{CX: 50, CY: 50, R: 10}
	got := ApplyAffineToCircle(c, 2, 4, 60, 70)
	if got.CX != 60 || got.CY != 70 {
		t.Errorf("center = (%v,%v), want (60,70)", got.CX, got.CY)
	}
	// Non-uniform scale collapses to the average of the two factors.
	if got.R != 30 {
		t.Errorf("r = %v, want 30", got.R)
	}
}

func TestRoundCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{-0.5, -1},
		{-1.5, -2},
		{2.49, 2},
	}
	for _, tt := range tests {
		if got := RoundCoord(tt.in); got != tt.want {
			t.Errorf("RoundCoord(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDecomposeAffine(t *testing.T) {
	// rotate 30 degrees, scale (2, 3), translate (5, -7)
	angle := math.Pi / 6
	tr := Translation(5, -7).Compose(Rotation(angle)).Compose(Scale(2, 3))

	sx, sy, rot, tx, ty := DecomposeAffine(tr)
	const eps = 1e-9
	if math.Abs(sx-2) > eps || math.Abs(sy-3) > eps {
		t.Errorf("scale = (%v,%v), want (2,3)", sx, sy)
	}
	if math.Abs(rot-angle) > eps {
		t.Errorf("rotation = %v, want %v", rot, angle)
	}
	if math.Abs(tx-5) > eps || math.Abs(ty+7) > eps {
		t.Errorf("translation = (%v,%v), want (5,-7)", tx, ty)
	}
}

func TestAffineFromPoints(t *testing.T) {
	tr := Translation(12, 34).Compose(Rotation(0.5)).Compose(Scale(1.5, 0.75))

	src := []Point2D{{0, 0}, {100, 0}, {0, 100}, {100, 100}}
	dst := make([]Point2D, len(src))
	for i, p := range src {
		dst[i] = tr.Apply(p)
	}

	got, err := AffineFromPoints(src, dst)
	if err != nil {
		t.Fatalf("AffineFromPoints: %v", err)
	}
	for i, p := range src {
		q := got.Apply(p)
		if q.Distance(dst[i]) > 1e-6 {
			t.Errorf("point %d maps to %+v, want %+v", i, q, dst[i])
		}
	}

	if _, err := AffineFromPoints(src[:2], dst[:2]); err == nil {
		t.Error("expected error for fewer than 3 points")
	}
	if _, err := AffineFromPoints(src, dst[:3]); err == nil {
		t.Error("expected error for mismatched point counts")
	}
}
