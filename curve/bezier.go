package curve

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Bezier is a Bezier curve of arbitrary degree over [0, 1], defined by
// its control points. It is the kernel's built-in free-form kind; richer
// free-form geometry (NURBS) plugs in externally through the numeric
// capability interfaces.
type Bezier struct {
	Ctrl []geom.Point3
}

// NewBezier creates a Bezier curve from its control points. At least two
// control points are required; the slice is copied.
func NewBezier(ctrl []geom.Point3) Bezier {
	cp := make([]geom.Point3, len(ctrl))
	copy(cp, ctrl)
	return Bezier{Ctrl: cp}
}

func (Bezier) isCurve() {}

// Degree returns the polynomial degree.
func (b Bezier) Degree() int {
	return len(b.Ctrl) - 1
}

// At evaluates the curve at t using de Casteljau's algorithm.
func (b Bezier) At(t float64) geom.Point3 {
	tmp := make([]geom.Point3, len(b.Ctrl))
	copy(tmp, b.Ctrl)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// hodograph returns the control vectors of the derivative curve.
func (b Bezier) hodograph() []geom.Vec3 {
	n := b.Degree()
	der := make([]geom.Vec3, n)
	for i := 0; i < n; i++ {
		der[i] = b.Ctrl[i+1].Sub(b.Ctrl[i]).Mul(float64(n))
	}
	return der
}

func evalVecBezier(ctrl []geom.Vec3, t float64) geom.Vec3 {
	tmp := make([]geom.Vec3, len(ctrl))
	copy(tmp, ctrl)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

// Deriv evaluates the first derivative at t via the hodograph.
func (b Bezier) Deriv(t float64) geom.Vec3 {
	if b.Degree() < 1 {
		return geom.Vec3{}
	}
	return evalVecBezier(b.hodograph(), t)
}

// Deriv2 evaluates the analytic second derivative at t.
func (b Bezier) Deriv2(t float64) geom.Vec3 {
	n := b.Degree()
	if n < 2 {
		return geom.Vec3{}
	}
	first := b.hodograph()
	second := make([]geom.Vec3, n-1)
	for i := 0; i < n-1; i++ {
		second[i] = first[i+1].Sub(first[i]).Mul(float64(n - 1))
	}
	return evalVecBezier(second, t)
}

// ParamDomain returns the closed interval [0, 1].
func (Bezier) ParamDomain() geom.Domain {
	return geom.ClosedDomain(0, 1)
}

// Period reports that a Bezier curve is not periodic.
func (Bezier) Period() (float64, bool) {
	return 0, false
}

// Endpoints returns the first and last control points.
func (b Bezier) Endpoints() (geom.Point3, geom.Point3) {
	return b.Ctrl[0], b.Ctrl[len(b.Ctrl)-1]
}

// Inverted returns the curve with reversed control points.
func (b Bezier) Inverted() Curve {
	rev := make([]geom.Point3, len(b.Ctrl))
	for i, p := range b.Ctrl {
		rev[len(b.Ctrl)-1-i] = p
	}
	return Bezier{Ctrl: rev}
}

// Transformed maps every control point through the transform. Bezier
// curves are exact under arbitrary affine transforms.
func (b Bezier) Transformed(m geom.Matrix) Curve {
	out := make([]geom.Point3, len(b.Ctrl))
	for i, p := range b.Ctrl {
		out[i] = m.TransformPoint(p)
	}
	return Bezier{Ctrl: out}
}

// SearchNearestParameter refines the hint by Newton iteration. A hint
// outside [0, 1] is replaced by a grid presearch.
func (b Bezier) SearchNearestParameter(pt geom.Point3, hint float64) (float64, bool) {
	if hint < 0 || hint > 1 {
		hint = presearchHint(b, b.ParamDomain(), pt)
	}
	return numeric.SearchNearestParameterCurve(b, pt, hint, 0)
}

// SearchParameter locates the exact parameter of pt on the curve.
func (b Bezier) SearchParameter(pt geom.Point3, hint float64) (float64, bool) {
	if hint < 0 || hint > 1 {
		hint = presearchHint(b, b.ParamDomain(), pt)
	}
	return numeric.SearchParameterCurve(b, pt, hint, 0)
}

// Subdivide returns the adaptive tessellation parameters over [0, 1].
func (b Bezier) Subdivide(tol float64) []float64 {
	return numeric.SubdivideCurve(b, 0, 1, tol)
}
