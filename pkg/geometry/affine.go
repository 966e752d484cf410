package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// AffineFromPoints computes the least-squares affine transform mapping src
// points onto dst points. At least three non-collinear correspondences are
// required.
func AffineFromPoints(src, dst []Point2D) (AffineTransform, error) {
	if len(src) != len(dst) {
		return AffineTransform{}, fmt.Errorf("point count mismatch: %d vs %d", len(src), len(dst))
	}
	if len(src) < 3 {
		return AffineTransform{}, fmt.Errorf("need at least 3 points, got %d", len(src))
	}

	// Each correspondence contributes two rows:
	//   [x y 1 0 0 0] [a b tx c d ty]^T = x'
	//   [0 0 0 x y 1] [a b tx c d ty]^T = y'
	n := len(src)
	a := mat.NewDense(2*n, 6, nil)
	b := mat.NewVecDense(2*n, nil)
	for i, p := range src {
		a.SetRow(2*i, []float64{p.X, p.Y, 1, 0, 0, 0})
		a.SetRow(2*i+1, []float64{0, 0, 0, p.X, p.Y, 1})
		b.SetVec(2*i, dst[i].X)
		b.SetVec(2*i+1, dst[i].Y)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return AffineTransform{}, fmt.Errorf("degenerate point configuration: %w", err)
	}

	return AffineTransform{
		A: x.AtVec(0), B: x.AtVec(1), TX: x.AtVec(2),
		C: x.AtVec(3), D: x.AtVec(4), TY: x.AtVec(5),
	}, nil
}

// DecomposeAffine splits a transform into scale factors, a rotation angle
// (radians), and a translation, assuming no shear. The rotation is taken from
// the first column; scaleY carries the sign of the determinant so mirrored
// transforms round-trip.
func DecomposeAffine(t AffineTransform) (scaleX, scaleY, rotation, tx, ty float64) {
	scaleX = math.Hypot(t.A, t.C)
	rotation = math.Atan2(t.C, t.A)
	det := t.A*t.D - t.B*t.C
	if scaleX != 0 {
		scaleY = det / scaleX
	}
	return scaleX, scaleY, rotation, t.TX, t.TY
}
