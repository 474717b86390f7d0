package curve

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/tolerance"
)

// Arc is a circular arc of radius Radius around Center, swept from the
// XAxis direction towards the YAxis direction by Angle radians. XAxis
// and YAxis must be orthogonal unit vectors; Angle of 2*pi makes the arc
// a full circle. The parameter is the swept angle over [0, Angle].
type Arc struct {
	Center       geom.Point3
	XAxis, YAxis geom.Vec3
	Radius       float64
	Angle        float64
}

// NewCircle creates a full circle of the given radius around center in
// the plane spanned by the orthonormal xAxis/yAxis pair.
func NewCircle(center geom.Point3, xAxis, yAxis geom.Vec3, radius float64) Arc {
	return Arc{Center: center, XAxis: xAxis, YAxis: yAxis, Radius: radius, Angle: 2 * math.Pi}
}

func (Arc) isCurve() {}

// At evaluates the arc at swept angle t.
func (a Arc) At(t float64) geom.Point3 {
	return a.Center.Add(a.XAxis.Mul(a.Radius * math.Cos(t))).Add(a.YAxis.Mul(a.Radius * math.Sin(t)))
}

// Deriv evaluates the first derivative at t.
func (a Arc) Deriv(t float64) geom.Vec3 {
	return a.XAxis.Mul(-a.Radius * math.Sin(t)).Add(a.YAxis.Mul(a.Radius * math.Cos(t)))
}

// Deriv2 evaluates the second derivative at t.
func (a Arc) Deriv2(t float64) geom.Vec3 {
	return a.XAxis.Mul(-a.Radius * math.Cos(t)).Add(a.YAxis.Mul(-a.Radius * math.Sin(t)))
}

// ParamDomain returns the closed interval [0, Angle].
func (a Arc) ParamDomain() geom.Domain {
	return geom.ClosedDomain(0, a.Angle)
}

// IsClosed reports whether the arc sweeps a full circle.
func (a Arc) IsClosed() bool {
	return tolerance.Near(a.Angle, 2*math.Pi)
}

// Period returns 2*pi for a full circle.
func (a Arc) Period() (float64, bool) {
	if a.IsClosed() {
		return 2 * math.Pi, true
	}
	return 0, false
}

// Endpoints evaluates the arc at 0 and Angle.
func (a Arc) Endpoints() (geom.Point3, geom.Point3) {
	return a.At(0), a.At(a.Angle)
}

// Inverted returns the arc traversed in the opposite direction, with the
// same point set and swapped endpoints.
func (a Arc) Inverted() Curve {
	// At'(t) = At(Angle - t): rotate XAxis to the old back point and
	// mirror YAxis so the sweep runs backwards.
	cos, sin := math.Cos(a.Angle), math.Sin(a.Angle)
	return Arc{
		Center: a.Center,
		XAxis:  a.XAxis.Mul(cos).Add(a.YAxis.Mul(sin)),
		YAxis:  a.XAxis.Mul(sin).Sub(a.YAxis.Mul(cos)),
		Radius: a.Radius,
		Angle:  a.Angle,
	}
}

// Transformed maps the arc through a similarity transform. The uniform
// scale factor is recovered from the determinant; general shears would
// not keep the arc circular and are not supported by this kind.
func (a Arc) Transformed(m geom.Matrix) Curve {
	scale := math.Cbrt(math.Abs(m.Det()))
	return Arc{
		Center: m.TransformPoint(a.Center),
		XAxis:  m.TransformVec(a.XAxis).Normalize(),
		YAxis:  m.TransformVec(a.YAxis).Normalize(),
		Radius: a.Radius * scale,
		Angle:  a.Angle,
	}
}

// SearchNearestParameter returns the angle of pt's projection into the
// arc plane. Points on the arc axis have no well-defined angle and
// report ok=false. Angles beyond the sweep resolve to the nearer
// endpoint.
func (a Arc) SearchNearestParameter(pt geom.Point3, _ float64) (float64, bool) {
	d := pt.Sub(a.Center)
	x := d.Dot(a.XAxis)
	y := d.Dot(a.YAxis)
	if math.Abs(x) < tolerance.Tolerance && math.Abs(y) < tolerance.Tolerance {
		return 0, false
	}
	t := math.Atan2(y, x)
	if t < 0 {
		t += 2 * math.Pi
	}
	if t <= a.Angle {
		return t, true
	}
	// Off the sweep: the nearer of the two endpoints wins.
	if a.At(0).DistanceSq(pt) <= a.At(a.Angle).DistanceSq(pt) {
		return 0, true
	}
	return a.Angle, true
}

// SearchParameter locates the exact angle of pt on the arc.
func (a Arc) SearchParameter(pt geom.Point3, hint float64) (float64, bool) {
	t, ok := a.SearchNearestParameter(pt, hint)
	if !ok || !a.At(t).Near(pt) {
		return 0, false
	}
	return t, true
}

// Subdivide returns the adaptive tessellation angles over the sweep.
func (a Arc) Subdivide(tol float64) []float64 {
	return numeric.SubdivideCurve(a, 0, a.Angle, tol)
}
