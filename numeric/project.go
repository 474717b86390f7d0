package numeric

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/tolerance"
)

// DoubleProjectResult is a point resolved onto two surfaces at once.
type DoubleProjectResult struct {
	// Point lies on both surfaces within tolerance.
	Point geom.Point3
	// Param0 and Param1 are the surface parameters of Point on each surface.
	Param0, Param1 SurfaceParam
}

// DoubleProject locates a point lying on both s0 and s1, starting from
// the estimate pt. dir is the transversal direction that pins the point
// along the intersection curve (typically the previous tracking step's
// tangent); hint0/hint1 seed the per-surface nearest-parameter searches.
//
// Each round projects the current estimate onto the nearest point of
// each surface, then solves the 3x3 system formed by the two tangent
// planes and the plane through pt normal to dir for a corrected
// estimate. The iteration terminates on mutual convergence within
// tolerance; a diverged projection, a singular system, or an exhausted
// budget all report ok=false.
func DoubleProject(s0, s1 Surface, pt geom.Point3, dir geom.Vec3, hint0, hint1 SurfaceParam, trials int) (DoubleProjectResult, bool) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	x := pt
	for i := 0; i < trials; i++ {
		p0, ok := SearchNearestParameterSurface(s0, x, hint0, trials)
		if !ok {
			return DoubleProjectResult{}, false
		}
		p1, ok := SearchNearestParameterSurface(s1, x, hint1, trials)
		if !ok {
			return DoubleProjectResult{}, false
		}
		q0 := s0.At(p0.U, p0.V)
		q1 := s1.At(p1.U, p1.V)

		n0 := s0.DerivU(p0.U, p0.V).Cross(s0.DerivV(p0.U, p0.V))
		n1 := s1.DerivU(p1.U, p1.V).Cross(s1.DerivV(p1.U, p1.V))

		// Tangent plane of each surface at its footpoint, plus the
		// transversal plane through the original estimate.
		next, ok := solve3(n0, n1, dir, n0.Dot(q0.Vec()), n1.Dot(q1.Vec()), dir.Dot(pt.Vec()))
		if !ok {
			return DoubleProjectResult{}, false
		}
		corrected := geom.Pt3(next.X, next.Y, next.Z)

		if q0.Near(corrected) && q1.Near(corrected) {
			return DoubleProjectResult{Point: corrected, Param0: p0, Param1: p1}, true
		}
		if corrected.DistanceSq(x) < tolerance.Tolerance2 && !q0.Near(q1) {
			// Fixed point reached away from the surfaces: diverged.
			return DoubleProjectResult{}, false
		}
		x = corrected
		hint0, hint1 = p0, p1
	}
	return DoubleProjectResult{}, false
}
