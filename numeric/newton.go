package numeric

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/tolerance"
)

// SearchNearestParameterCurve runs a 1D Newton iteration from hint for
// the parameter locally nearest to pt, driving f(t) = c'(t)·(c(t)-pt)
// to zero. It converges when |f| drops below ε·min(|c'|, 1), and reports
// ok=false when the derivative of f is numerically zero before
// convergence or the trial budget is exhausted.
//
// The result is a local minimum; callers wanting the global nearest
// point should seed hint from PresearchCurve.
func SearchNearestParameterCurve(c Curve, pt geom.Point3, hint float64, trials int) (float64, bool) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	t := hint
	for i := 0; i < trials; i++ {
		diff := c.At(t).Sub(pt)
		der := c.Deriv(t)
		f := der.Dot(diff)
		if math.Abs(f) < tolerance.Tolerance*math.Min(der.Length(), 1.0) {
			return t, true
		}
		fprime := c.Deriv2(t).Dot(diff) + der.LengthSq()
		if math.Abs(fprime) < 1e-14 {
			return 0, false
		}
		t -= f / fprime
	}
	return 0, false
}

// SearchParameterCurve locates the exact parameter of pt on c, or reports
// ok=false when pt does not lie on the curve within tolerance ("off
// geometry") or the search does not converge.
func SearchParameterCurve(c Curve, pt geom.Point3, hint float64, trials int) (float64, bool) {
	t, ok := SearchNearestParameterCurve(c, pt, hint, trials)
	if !ok {
		return 0, false
	}
	if !c.At(t).Near(pt) {
		return 0, false
	}
	return t, true
}

// SearchNearestParameterSurface runs a 2D Newton iteration from hint for
// the surface parameters locally nearest to pt. Each step solves the 2x2
// linear system built from the first and second partials; a singular
// system or an exhausted trial budget terminates without success.
func SearchNearestParameterSurface(s Surface, pt geom.Point3, hint SurfaceParam, trials int) (SurfaceParam, bool) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	u, v := hint.U, hint.V
	for i := 0; i < trials; i++ {
		diff := s.At(u, v).Sub(pt)
		su := s.DerivU(u, v)
		sv := s.DerivV(u, v)
		fu := su.Dot(diff)
		fv := sv.Dot(diff)
		if math.Abs(fu) < tolerance.Tolerance*math.Min(su.Length(), 1.0) &&
			math.Abs(fv) < tolerance.Tolerance*math.Min(sv.Length(), 1.0) {
			return SurfaceParam{U: u, V: v}, true
		}
		// Hessian of the squared-distance objective.
		a00 := s.DerivUU(u, v).Dot(diff) + su.LengthSq()
		a01 := s.DerivUV(u, v).Dot(diff) + su.Dot(sv)
		a11 := s.DerivVV(u, v).Dot(diff) + sv.LengthSq()
		du, dv, ok := solve2(a00, a01, a01, a11, -fu, -fv)
		if !ok {
			return SurfaceParam{}, false
		}
		u += du
		v += dv
	}
	return SurfaceParam{}, false
}

// SearchParameterSurface locates the exact parameters of pt on s, or
// reports ok=false when pt is off the surface or the search does not
// converge.
func SearchParameterSurface(s Surface, pt geom.Point3, hint SurfaceParam, trials int) (SurfaceParam, bool) {
	p, ok := SearchNearestParameterSurface(s, pt, hint, trials)
	if !ok {
		return SurfaceParam{}, false
	}
	if !s.At(p.U, p.V).Near(pt) {
		return SurfaceParam{}, false
	}
	return p, true
}
