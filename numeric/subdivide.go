package numeric

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/internal/hash"
)

// maxSubdivisionDepth caps the bisection recursion. Reaching it accepts
// the current interval as a documented approximation instead of looping
// on pathological geometry.
const maxSubdivisionDepth = 20

// jitterFraction maps an interval to a reproducible probe position in
// [0.4, 0.6), derived by hashing the endpoint bit patterns. Probing at a
// jittered sample instead of the exact midpoint avoids aliasing with
// geometry features that sit exactly on the bisection grid.
func jitterFraction(t0, t1 float64) float64 {
	h := hash.Params(t0, t1)
	return 0.4 + 0.2*float64(h)/float64(math.MaxUint32+1)
}

// SubdivideCurve adaptively subdivides [t0, t1] until the curve deviates
// from the chord between interval endpoints by less than tol, returning
// the ordered parameter sequence including both bounds.
//
// Each interval is probed at a reproducibly jittered interior sample; if
// the true curve there is farther than tol from the linear interpolation
// of the endpoint evaluations, the interval splits at its exact midpoint
// and both halves recurse. A fixed depth ceiling guarantees termination.
func SubdivideCurve(c Curve, t0, t1, tol float64) []float64 {
	params := []float64{t0}
	subdivideCurve(c, t0, t1, tol, 0, &params)
	return params
}

func subdivideCurve(c Curve, t0, t1, tol float64, depth int, out *[]float64) {
	if depth < maxSubdivisionDepth && !chordWithinTol(c, t0, t1, tol) {
		mid := (t0 + t1) / 2
		subdivideCurve(c, t0, mid, tol, depth+1, out)
		subdivideCurve(c, mid, t1, tol, depth+1, out)
		return
	}
	*out = append(*out, t1)
}

// chordWithinTol probes the interval at its jittered sample and reports
// whether the curve stays within tol of the endpoint chord there.
func chordWithinTol(c Curve, t0, t1, tol float64) bool {
	frac := jitterFraction(t0, t1)
	tm := t0 + frac*(t1-t0)
	probe := c.At(tm)
	chord := c.At(t0).Lerp(c.At(t1), frac)
	return probe.Distance(chord) < tol
}

// SubdivideSurface adaptively subdivides the parameter rectangle
// [u0,u1] x [v0,v1], refining the u and v directions independently until
// both are stable, and returns the ordered parameter sequences.
//
// A u interval is split when, along any current v row, the surface
// deviates from the row's chord by more than tol at the jittered probe;
// v intervals likewise against the current u columns. Rounds alternate
// until neither direction inserts a parameter or the depth ceiling is
// reached.
func SubdivideSurface(s Surface, u0, u1, v0, v1, tol float64) (us, vs []float64) {
	us = []float64{u0, u1}
	vs = []float64{v0, v1}
	for depth := 0; depth < maxSubdivisionDepth; depth++ {
		var uStable, vStable bool
		us, uStable = refineDirection(us, vs, tol, func(u, v float64) geom.Point3 {
			return s.At(u, v)
		})
		vs, vStable = refineDirection(vs, us, tol, func(v, u float64) geom.Point3 {
			return s.At(u, v)
		})
		if uStable && vStable {
			break
		}
	}
	return us, vs
}

// refineDirection splits every interval of primary whose chord deviation
// exceeds tol along any cross parameter. eval takes (primary, cross).
func refineDirection(primary, cross []float64, tol float64, eval func(p, c float64) geom.Point3) ([]float64, bool) {
	out := make([]float64, 0, len(primary))
	stable := true
	out = append(out, primary[0])
	for i := 1; i < len(primary); i++ {
		a, b := primary[i-1], primary[i]
		if !sectionWithinTol(a, b, cross, tol, eval) {
			out = append(out, (a+b)/2)
			stable = false
		}
		out = append(out, b)
	}
	return out, stable
}

func sectionWithinTol(a, b float64, cross []float64, tol float64, eval func(p, c float64) geom.Point3) bool {
	frac := jitterFraction(a, b)
	m := a + frac*(b-a)
	for _, c := range cross {
		chord := eval(a, c).Lerp(eval(b, c), frac)
		if eval(m, c).Distance(chord) >= tol {
			return false
		}
	}
	return true
}
