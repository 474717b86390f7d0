package curve

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Trimmed restricts an inner curve to the sub-interval [T0, T1] of its
// parameter domain. The parameterization is shared with the inner curve;
// only the domain shrinks.
type Trimmed struct {
	Inner  Curve
	T0, T1 float64
}

// NewTrimmed creates a parameter-restricted view of c over [t0, t1].
func NewTrimmed(c Curve, t0, t1 float64) Trimmed {
	return Trimmed{Inner: c, T0: t0, T1: t1}
}

func (Trimmed) isCurve() {}

// At evaluates the inner curve at t.
func (c Trimmed) At(t float64) geom.Point3 {
	return c.Inner.At(t)
}

// Deriv evaluates the inner curve's first derivative at t.
func (c Trimmed) Deriv(t float64) geom.Vec3 {
	return c.Inner.Deriv(t)
}

// Deriv2 evaluates the inner curve's second derivative at t.
func (c Trimmed) Deriv2(t float64) geom.Vec3 {
	return c.Inner.Deriv2(t)
}

// ParamDomain returns the closed interval [T0, T1].
func (c Trimmed) ParamDomain() geom.Domain {
	return geom.ClosedDomain(c.T0, c.T1)
}

// Period reports that a trimmed curve is not periodic: the trim breaks
// the closure even when the inner curve is periodic.
func (Trimmed) Period() (float64, bool) {
	return 0, false
}

// Endpoints evaluates the inner curve at T0 and T1.
func (c Trimmed) Endpoints() (geom.Point3, geom.Point3) {
	return c.Inner.At(c.T0), c.Inner.At(c.T1)
}

// Inverted returns the trimmed view of the inverted inner curve. The
// built-in kinds all invert by the reflection t -> (min+max) - t of
// their own domain, which maps the trim interval accordingly.
func (c Trimmed) Inverted() Curve {
	min, max := c.Inner.ParamDomain().MustRange()
	return Trimmed{
		Inner: c.Inner.Inverted(),
		T0:    min + max - c.T1,
		T1:    min + max - c.T0,
	}
}

// Transformed maps the inner curve and keeps the trim interval.
func (c Trimmed) Transformed(m geom.Matrix) Curve {
	return Trimmed{Inner: c.Inner.Transformed(m), T0: c.T0, T1: c.T1}
}

// SearchNearestParameter delegates to the inner curve and clamps into
// the trim interval when the local nearest parameter falls outside.
func (c Trimmed) SearchNearestParameter(pt geom.Point3, hint float64) (float64, bool) {
	t, ok := c.Inner.SearchNearestParameter(pt, hint)
	if !ok {
		return 0, false
	}
	return c.ParamDomain().Clamp(t), true
}

// SearchParameter locates the exact parameter of pt within the trim
// interval.
func (c Trimmed) SearchParameter(pt geom.Point3, hint float64) (float64, bool) {
	t, ok := c.SearchNearestParameter(pt, hint)
	if !ok || !c.At(t).Near(pt) {
		return 0, false
	}
	return t, true
}

// Subdivide returns the adaptive tessellation parameters over [T0, T1].
func (c Trimmed) Subdivide(tol float64) []float64 {
	return numeric.SubdivideCurve(c, c.T0, c.T1, tol)
}
