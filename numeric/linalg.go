package numeric

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
)

// solve2 solves the 2x2 system
//
//	a00*x + a01*y = b0
//	a10*x + a11*y = b1
//
// by Cramer's rule. ok is false when the system is numerically singular.
func solve2(a00, a01, a10, a11, b0, b1 float64) (x, y float64, ok bool) {
	det := a00*a11 - a01*a10
	scale := math.Max(math.Max(math.Abs(a00), math.Abs(a01)), math.Max(math.Abs(a10), math.Abs(a11)))
	if scale == 0 || math.Abs(det) <= 1e-14*scale*scale {
		return 0, 0, false
	}
	return (b0*a11 - b1*a01) / det, (a00*b1 - a10*b0) / det, true
}

// solve3 solves the 3x3 system with rows r0, r1, r2:
//
//	r0 · x = b0
//	r1 · x = b1
//	r2 · x = b2
//
// using the reciprocal basis x = (b0 r1×r2 + b1 r2×r0 + b2 r0×r1) / det.
// ok is false when the system is numerically singular.
func solve3(r0, r1, r2 geom.Vec3, b0, b1, b2 float64) (geom.Vec3, bool) {
	det := r0.Dot(r1.Cross(r2))
	scale := math.Max(r0.Length(), math.Max(r1.Length(), r2.Length()))
	if scale == 0 || math.Abs(det) <= 1e-14*scale*scale*scale {
		return geom.Vec3{}, false
	}
	x := r1.Cross(r2).Mul(b0).
		Add(r2.Cross(r0).Mul(b1)).
		Add(r0.Cross(r1).Mul(b2)).
		Mul(1 / det)
	return x, true
}
