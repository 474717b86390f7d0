package surface

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Surface is the closed union of surface kinds the kernel models with:
// planes, spheres and cylinders. As with curves, richer free-form
// geometry (NURBS patches) stays external and plugs in through the
// numeric capability interfaces.
//
// All kinds are immutable values; Inverted and Transformed return new
// surfaces and never mutate the receiver.
type Surface interface {
	// At evaluates the position at parameters (u, v).
	At(u, v float64) geom.Point3
	// DerivU evaluates the first partial derivative in u.
	DerivU(u, v float64) geom.Vec3
	// DerivV evaluates the first partial derivative in v.
	DerivV(u, v float64) geom.Vec3
	// DerivUU evaluates the analytic second partial in u.
	DerivUU(u, v float64) geom.Vec3
	// DerivUV evaluates the analytic mixed second partial.
	DerivUV(u, v float64) geom.Vec3
	// DerivVV evaluates the analytic second partial in v.
	DerivVV(u, v float64) geom.Vec3
	// Normal returns the unit normal DerivU x DerivV at (u, v).
	Normal(u, v float64) geom.Vec3
	// UDomain returns the parameter domain in u.
	UDomain() geom.Domain
	// VDomain returns the parameter domain in v.
	VDomain() geom.Domain
	// UPeriod returns the u parameter period of a u-periodic surface.
	UPeriod() (float64, bool)
	// VPeriod returns the v parameter period of a v-periodic surface.
	VPeriod() (float64, bool)
	// Inverted returns the surface with the opposite normal sense.
	Inverted() Surface
	// Transformed returns the surface mapped through the affine transform.
	Transformed(m geom.Matrix) Surface
	// SearchParameter locates the exact parameters of pt, or reports
	// ok=false when pt is off the surface within tolerance.
	SearchParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool)
	// SearchNearestParameter locates the locally nearest parameters to
	// pt, or reports ok=false on divergence.
	SearchNearestParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool)
	// Subdivide returns the adaptive tessellation grids over the whole
	// parameter domain. Panics on a surface with an unbounded domain;
	// callers tessellating such surfaces must supply their own range
	// through numeric.SubdivideSurface.
	Subdivide(tol float64) (us, vs []float64)

	isSurface()
}

func normalAt(s numeric.Surface, u, v float64) geom.Vec3 {
	return s.DerivU(u, v).Cross(s.DerivV(u, v)).Normalize()
}

func subdivideOwnDomain(s numeric.Surface, ud, vd geom.Domain, tol float64) ([]float64, []float64) {
	u0, u1 := ud.MustRange()
	v0, v1 := vd.MustRange()
	return numeric.SubdivideSurface(s, u0, u1, v0, v1, tol)
}
