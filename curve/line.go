package curve

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Line is a straight segment from P0 to P1, parameterized over [0, 1].
type Line struct {
	P0, P1 geom.Point3
}

// NewLine creates a straight segment between two points.
func NewLine(p0, p1 geom.Point3) Line {
	return Line{P0: p0, P1: p1}
}

func (Line) isCurve() {}

// At evaluates the segment at t. t=0 returns P0, t=1 returns P1.
func (l Line) At(t float64) geom.Point3 {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the constant direction P1-P0.
func (l Line) Deriv(float64) geom.Vec3 {
	return l.P1.Sub(l.P0)
}

// Deriv2 returns the zero vector.
func (Line) Deriv2(float64) geom.Vec3 {
	return geom.Vec3{}
}

// ParamDomain returns the closed interval [0, 1].
func (Line) ParamDomain() geom.Domain {
	return geom.ClosedDomain(0, 1)
}

// Period reports that a segment is not periodic.
func (Line) Period() (float64, bool) {
	return 0, false
}

// Endpoints returns (P0, P1).
func (l Line) Endpoints() (geom.Point3, geom.Point3) {
	return l.P0, l.P1
}

// Inverted returns the segment traversed from P1 to P0.
func (l Line) Inverted() Curve {
	return Line{P0: l.P1, P1: l.P0}
}

// Transformed maps both endpoints through the transform.
func (l Line) Transformed(m geom.Matrix) Curve {
	return Line{P0: m.TransformPoint(l.P0), P1: m.TransformPoint(l.P1)}
}

// SearchNearestParameter returns the analytic projection of pt onto the
// segment's supporting line. A degenerate zero-length segment diverges.
func (l Line) SearchNearestParameter(pt geom.Point3, _ float64) (float64, bool) {
	dir := l.P1.Sub(l.P0)
	if dir.IsZero() {
		return 0, false
	}
	return pt.Sub(l.P0).Dot(dir) / dir.LengthSq(), true
}

// SearchParameter locates the exact parameter of pt on the segment.
func (l Line) SearchParameter(pt geom.Point3, hint float64) (float64, bool) {
	return numeric.SearchParameterCurve(l, pt, hint, 0)
}

// Subdivide returns the parameter pair {0, 1}: a segment never deviates
// from its own chord.
func (l Line) Subdivide(tol float64) []float64 {
	return numeric.SubdivideCurve(l, 0, 1, tol)
}
