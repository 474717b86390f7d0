package surface

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Plane is an infinite plane through Origin spanned by the direction
// vectors UAxis and VAxis: At(u, v) = Origin + u*UAxis + v*VAxis. The
// parameter domain is unbounded in both directions, so Subdivide panics;
// faces on planes tessellate over their boundary's UV box instead.
type Plane struct {
	Origin       geom.Point3
	UAxis, VAxis geom.Vec3
}

// NewPlane creates a plane through origin spanned by uAxis and vAxis.
func NewPlane(origin geom.Point3, uAxis, vAxis geom.Vec3) Plane {
	return Plane{Origin: origin, UAxis: uAxis, VAxis: vAxis}
}

func (Plane) isSurface() {}

// At evaluates the plane at (u, v).
func (p Plane) At(u, v float64) geom.Point3 {
	return p.Origin.Add(p.UAxis.Mul(u)).Add(p.VAxis.Mul(v))
}

// DerivU returns the constant UAxis.
func (p Plane) DerivU(_, _ float64) geom.Vec3 { return p.UAxis }

// DerivV returns the constant VAxis.
func (p Plane) DerivV(_, _ float64) geom.Vec3 { return p.VAxis }

// DerivUU returns the zero vector.
func (Plane) DerivUU(_, _ float64) geom.Vec3 { return geom.Vec3{} }

// DerivUV returns the zero vector.
func (Plane) DerivUV(_, _ float64) geom.Vec3 { return geom.Vec3{} }

// DerivVV returns the zero vector.
func (Plane) DerivVV(_, _ float64) geom.Vec3 { return geom.Vec3{} }

// Normal returns the constant unit normal UAxis x VAxis.
func (p Plane) Normal(_, _ float64) geom.Vec3 {
	return p.UAxis.Cross(p.VAxis).Normalize()
}

// UDomain returns the unbounded domain.
func (Plane) UDomain() geom.Domain { return geom.FullDomain() }

// VDomain returns the unbounded domain.
func (Plane) VDomain() geom.Domain { return geom.FullDomain() }

// UPeriod reports that a plane is not periodic.
func (Plane) UPeriod() (float64, bool) { return 0, false }

// VPeriod reports that a plane is not periodic.
func (Plane) VPeriod() (float64, bool) { return 0, false }

// Inverted swaps the axes, flipping the normal.
func (p Plane) Inverted() Surface {
	return Plane{Origin: p.Origin, UAxis: p.VAxis, VAxis: p.UAxis}
}

// Transformed maps the origin and axes through the transform. Planes are
// exact under arbitrary affine transforms.
func (p Plane) Transformed(m geom.Matrix) Surface {
	return Plane{
		Origin: m.TransformPoint(p.Origin),
		UAxis:  m.TransformVec(p.UAxis),
		VAxis:  m.TransformVec(p.VAxis),
	}
}

// SearchNearestParameter solves the projection onto the plane's axes
// directly; it diverges only for degenerate (parallel) axes.
func (p Plane) SearchNearestParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	return numeric.SearchNearestParameterSurface(p, pt, hint, 0)
}

// SearchParameter locates the exact parameters of pt on the plane.
func (p Plane) SearchParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	return numeric.SearchParameterSurface(p, pt, hint, 0)
}

// Subdivide panics: the plane's parameter domain is unbounded.
func (p Plane) Subdivide(tol float64) ([]float64, []float64) {
	return subdivideOwnDomain(p, p.UDomain(), p.VDomain(), tol)
}
