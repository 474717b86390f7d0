package curve

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Curve is the closed union of 3D curve kinds the kernel models with.
// The kind set is fixed: straight segments, circular arcs, Bezier
// free-form curves, parameter-trimmed sub-curves, and surface-riding
// PCurves. Open-ended extension happens at the numeric capability
// interfaces instead, which any external type can satisfy.
//
// All kinds are immutable values; Inverted and Transformed return new
// curves and never mutate the receiver.
type Curve interface {
	// At evaluates the position at parameter t.
	At(t float64) geom.Point3
	// Deriv evaluates the first derivative at t.
	Deriv(t float64) geom.Vec3
	// Deriv2 evaluates the analytic second derivative at t.
	Deriv2(t float64) geom.Vec3
	// ParamDomain returns the parameter domain.
	ParamDomain() geom.Domain
	// Period returns the parameter period of a closed periodic curve.
	Period() (float64, bool)
	// Endpoints evaluates the curve at its domain bounds.
	// Panics on an unbounded curve (none of the built-in kinds are).
	Endpoints() (front, back geom.Point3)
	// Inverted returns the curve traversed in the opposite direction.
	Inverted() Curve
	// Transformed returns the curve mapped through the affine transform.
	Transformed(m geom.Matrix) Curve
	// SearchParameter locates the exact parameter of pt, or reports
	// ok=false when pt is off the curve within tolerance.
	SearchParameter(pt geom.Point3, hint float64) (float64, bool)
	// SearchNearestParameter locates the locally nearest parameter to
	// pt, or reports ok=false on divergence.
	SearchNearestParameter(pt geom.Point3, hint float64) (float64, bool)
	// Subdivide returns the adaptive tessellation parameters over the
	// whole domain for the given tolerance.
	Subdivide(tol float64) []float64

	isCurve()
}

// presearchHint runs the grid presearch over the curve's own domain,
// giving Newton a robust start for free-form kinds.
func presearchHint(c numeric.Curve, d geom.Domain, pt geom.Point3) float64 {
	t0, t1 := d.MustRange()
	return numeric.PresearchCurve(c, pt, t0, t1, numeric.PresearchDivision)
}
