package numeric

import "github.com/hupe1980/brepgo/geom"

// PresearchCurve samples a regular n-point grid over [t0, t1] and returns
// the parameter whose evaluation is closest to pt in squared distance.
//
// The scan is deterministic and inclusive of both bounds. It exists to
// hand Newton a robust starting point: naive initial guesses diverge
// near periodic or degenerate parameterizations.
func PresearchCurve(c Curve, pt geom.Point3, t0, t1 float64, n int) float64 {
	if n < 2 {
		return t0
	}
	best := t0
	bestDist := c.At(t0).DistanceSq(pt)
	for i := 1; i < n; i++ {
		t := t0 + (t1-t0)*float64(i)/float64(n-1)
		if d := c.At(t).DistanceSq(pt); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}

// PresearchSurface samples a regular n x n grid over [u0,u1] x [v0,v1]
// and returns the parameter pair whose evaluation is closest to pt in
// squared distance.
func PresearchSurface(s Surface, pt geom.Point3, u0, u1, v0, v1 float64, n int) SurfaceParam {
	if n < 2 {
		return SurfaceParam{U: u0, V: v0}
	}
	best := SurfaceParam{U: u0, V: v0}
	bestDist := s.At(u0, v0).DistanceSq(pt)
	for i := 0; i < n; i++ {
		u := u0 + (u1-u0)*float64(i)/float64(n-1)
		for j := 0; j < n; j++ {
			v := v0 + (v1-v0)*float64(j)/float64(n-1)
			if d := s.At(u, v).DistanceSq(pt); d < bestDist {
				best, bestDist = SurfaceParam{U: u, V: v}, d
			}
		}
	}
	return best
}
