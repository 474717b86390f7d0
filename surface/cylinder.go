package surface

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
)

// Cylinder is a circular cylinder of radius Radius around the axis
// through Origin in direction Axis, parameterized by the angle u in
// [0, 2*pi] from XAxis towards YAxis and the unbounded height v along
// the axis:
//
//	At(u, v) = Origin + R*(cos u * X + sin u * Y) + v * Axis
type Cylinder struct {
	Origin             geom.Point3
	XAxis, YAxis, Axis geom.Vec3
	Radius             float64
}

// NewCylinder creates a cylinder in the standard frame around the z axis.
func NewCylinder(origin geom.Point3, radius float64) Cylinder {
	return Cylinder{
		Origin: origin,
		XAxis:  geom.V3(1, 0, 0),
		YAxis:  geom.V3(0, 1, 0),
		Axis:   geom.V3(0, 0, 1),
		Radius: radius,
	}
}

func (Cylinder) isSurface() {}

// At evaluates the cylinder at (u, v).
func (c Cylinder) At(u, v float64) geom.Point3 {
	sinU, cosU := math.Sincos(u)
	return c.Origin.Add(c.XAxis.Mul(c.Radius * cosU)).Add(c.YAxis.Mul(c.Radius * sinU)).Add(c.Axis.Mul(v))
}

// DerivU evaluates the first partial in the angular direction.
func (c Cylinder) DerivU(u, _ float64) geom.Vec3 {
	sinU, cosU := math.Sincos(u)
	return c.YAxis.Mul(cosU).Sub(c.XAxis.Mul(sinU)).Mul(c.Radius)
}

// DerivV returns the constant Axis.
func (c Cylinder) DerivV(_, _ float64) geom.Vec3 { return c.Axis }

// DerivUU evaluates the second partial in u.
func (c Cylinder) DerivUU(u, _ float64) geom.Vec3 {
	sinU, cosU := math.Sincos(u)
	return c.XAxis.Mul(cosU).Add(c.YAxis.Mul(sinU)).Mul(-c.Radius)
}

// DerivUV returns the zero vector.
func (Cylinder) DerivUV(_, _ float64) geom.Vec3 { return geom.Vec3{} }

// DerivVV returns the zero vector.
func (Cylinder) DerivVV(_, _ float64) geom.Vec3 { return geom.Vec3{} }

// Normal returns the unit normal DerivU x DerivV.
func (c Cylinder) Normal(u, v float64) geom.Vec3 {
	return normalAt(c, u, v)
}

// UDomain returns the closed angular interval [0, 2*pi].
func (Cylinder) UDomain() geom.Domain { return geom.ClosedDomain(0, 2*math.Pi) }

// VDomain returns the unbounded height domain.
func (Cylinder) VDomain() geom.Domain { return geom.FullDomain() }

// UPeriod returns the angular period 2*pi.
func (Cylinder) UPeriod() (float64, bool) { return 2 * math.Pi, true }

// VPeriod reports that the height direction is not periodic.
func (Cylinder) VPeriod() (float64, bool) { return 0, false }

// Inverted mirrors the YAxis, reversing the angular sense and flipping
// the normal while keeping the same point set.
func (c Cylinder) Inverted() Surface {
	return Cylinder{Origin: c.Origin, XAxis: c.XAxis, YAxis: c.YAxis.Neg(), Axis: c.Axis, Radius: c.Radius}
}

// Transformed maps the cylinder through a similarity transform,
// recovering the uniform scale factor from the determinant.
func (c Cylinder) Transformed(m geom.Matrix) Surface {
	scale := math.Cbrt(math.Abs(m.Det()))
	return Cylinder{
		Origin: m.TransformPoint(c.Origin),
		XAxis:  m.TransformVec(c.XAxis).Normalize(),
		YAxis:  m.TransformVec(c.YAxis).Normalize(),
		Axis:   m.TransformVec(c.Axis).Normalize().Mul(scale),
		Radius: c.Radius * scale,
	}
}

// SearchNearestParameter resolves the angle of pt's projection into the
// base plane and its height along the axis. Points on the axis have no
// well-defined angle and report ok=false.
func (c Cylinder) SearchNearestParameter(pt geom.Point3, _ numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	d := pt.Sub(c.Origin)
	axisUnit := c.Axis.Normalize()
	v := d.Dot(axisUnit) / c.Axis.Length()
	radialPart := d.Sub(axisUnit.Mul(d.Dot(axisUnit)))
	if radialPart.IsZero() {
		return numeric.SurfaceParam{}, false
	}
	u := math.Atan2(radialPart.Dot(c.YAxis), radialPart.Dot(c.XAxis))
	if u < 0 {
		u += 2 * math.Pi
	}
	return numeric.SurfaceParam{U: u, V: v}, true
}

// SearchParameter locates the exact parameters of pt on the cylinder.
func (c Cylinder) SearchParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	p, ok := c.SearchNearestParameter(pt, hint)
	if !ok || !c.At(p.U, p.V).Near(pt) {
		return numeric.SurfaceParam{}, false
	}
	return p, true
}

// Subdivide panics: the height domain is unbounded. Bounded patches of a
// cylinder tessellate through numeric.SubdivideSurface with an explicit
// height range.
func (c Cylinder) Subdivide(tol float64) ([]float64, []float64) {
	return subdivideOwnDomain(c, c.UDomain(), c.VDomain(), tol)
}
