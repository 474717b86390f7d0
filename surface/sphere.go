package surface

import (
	"math"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/tolerance"
)

// Sphere is a sphere of radius Radius around Center, parameterized by
// the polar angle u in [0, pi] from ZAxis and the azimuth v in [0, 2*pi]
// from XAxis towards YAxis. The axes must form an orthonormal frame.
//
//	At(u, v) = Center + R*(sin u * (cos v * X + sin v * Y) + cos u * Z)
type Sphere struct {
	Center              geom.Point3
	XAxis, YAxis, ZAxis geom.Vec3
	Radius              float64
}

// NewSphere creates a sphere in the standard frame.
func NewSphere(center geom.Point3, radius float64) Sphere {
	return Sphere{
		Center: center,
		XAxis:  geom.V3(1, 0, 0),
		YAxis:  geom.V3(0, 1, 0),
		ZAxis:  geom.V3(0, 0, 1),
		Radius: radius,
	}
}

func (Sphere) isSurface() {}

func (s Sphere) radial(u, v float64) geom.Vec3 {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	return s.XAxis.Mul(sinU * cosV).Add(s.YAxis.Mul(sinU * sinV)).Add(s.ZAxis.Mul(cosU))
}

// At evaluates the sphere at (u, v).
func (s Sphere) At(u, v float64) geom.Point3 {
	return s.Center.Add(s.radial(u, v).Mul(s.Radius))
}

// DerivU evaluates the first partial in the polar direction.
func (s Sphere) DerivU(u, v float64) geom.Vec3 {
	sinU, cosU := math.Sincos(u)
	sinV, cosV := math.Sincos(v)
	return s.XAxis.Mul(cosU * cosV).Add(s.YAxis.Mul(cosU * sinV)).Sub(s.ZAxis.Mul(sinU)).Mul(s.Radius)
}

// DerivV evaluates the first partial in the azimuth direction.
func (s Sphere) DerivV(u, v float64) geom.Vec3 {
	sinU := math.Sin(u)
	sinV, cosV := math.Sincos(v)
	return s.YAxis.Mul(cosV).Sub(s.XAxis.Mul(sinV)).Mul(s.Radius * sinU)
}

// DerivUU evaluates the second partial in u: the inward radial vector.
func (s Sphere) DerivUU(u, v float64) geom.Vec3 {
	return s.radial(u, v).Mul(-s.Radius)
}

// DerivUV evaluates the mixed second partial.
func (s Sphere) DerivUV(u, v float64) geom.Vec3 {
	cosU := math.Cos(u)
	sinV, cosV := math.Sincos(v)
	return s.YAxis.Mul(cosV).Sub(s.XAxis.Mul(sinV)).Mul(s.Radius * cosU)
}

// DerivVV evaluates the second partial in v.
func (s Sphere) DerivVV(u, v float64) geom.Vec3 {
	sinU := math.Sin(u)
	sinV, cosV := math.Sincos(v)
	return s.XAxis.Mul(cosV).Add(s.YAxis.Mul(sinV)).Mul(-s.Radius * sinU)
}

// Normal returns the outward unit normal. At the poles the partials
// degenerate; the radial direction is used there.
func (s Sphere) Normal(u, v float64) geom.Vec3 {
	n := s.DerivU(u, v).Cross(s.DerivV(u, v))
	if n.IsZero() {
		return s.radial(u, v)
	}
	return n.Normalize()
}

// UDomain returns the closed polar interval [0, pi].
func (Sphere) UDomain() geom.Domain { return geom.ClosedDomain(0, math.Pi) }

// VDomain returns the closed azimuth interval [0, 2*pi].
func (Sphere) VDomain() geom.Domain { return geom.ClosedDomain(0, 2*math.Pi) }

// UPeriod reports that the polar direction is not periodic.
func (Sphere) UPeriod() (float64, bool) { return 0, false }

// VPeriod returns the azimuth period 2*pi.
func (Sphere) VPeriod() (float64, bool) { return 2 * math.Pi, true }

// Inverted mirrors the YAxis, reversing the azimuth sense and flipping
// the normal while keeping the same point set.
func (s Sphere) Inverted() Surface {
	return Sphere{Center: s.Center, XAxis: s.XAxis, YAxis: s.YAxis.Neg(), ZAxis: s.ZAxis, Radius: s.Radius}
}

// Transformed maps the sphere through a similarity transform, recovering
// the uniform scale factor from the determinant.
func (s Sphere) Transformed(m geom.Matrix) Surface {
	scale := math.Cbrt(math.Abs(m.Det()))
	return Sphere{
		Center: m.TransformPoint(s.Center),
		XAxis:  m.TransformVec(s.XAxis).Normalize(),
		YAxis:  m.TransformVec(s.YAxis).Normalize(),
		ZAxis:  m.TransformVec(s.ZAxis).Normalize(),
		Radius: s.Radius * scale,
	}
}

// SearchNearestParameter resolves the spherical angles of pt's radial
// projection directly. The center has no well-defined projection and
// reports ok=false.
func (s Sphere) SearchNearestParameter(pt geom.Point3, _ numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	d := pt.Sub(s.Center)
	if d.IsZero() {
		return numeric.SurfaceParam{}, false
	}
	x := d.Dot(s.XAxis)
	y := d.Dot(s.YAxis)
	z := d.Dot(s.ZAxis)
	u := math.Acos(math.Max(-1, math.Min(1, z/d.Length())))
	v := math.Atan2(y, x)
	if v < 0 {
		v += 2 * math.Pi
	}
	if math.Abs(x) < tolerance.Tolerance && math.Abs(y) < tolerance.Tolerance {
		// Poles: azimuth is arbitrary, pin it to zero.
		v = 0
	}
	return numeric.SurfaceParam{U: u, V: v}, true
}

// SearchParameter locates the exact parameters of pt on the sphere.
func (s Sphere) SearchParameter(pt geom.Point3, hint numeric.SurfaceParam) (numeric.SurfaceParam, bool) {
	p, ok := s.SearchNearestParameter(pt, hint)
	if !ok || !s.At(p.U, p.V).Near(pt) {
		return numeric.SurfaceParam{}, false
	}
	return p, true
}

// Subdivide returns the adaptive tessellation grids over the full
// parameter rectangle.
func (s Sphere) Subdivide(tol float64) ([]float64, []float64) {
	return subdivideOwnDomain(s, s.UDomain(), s.VDomain(), tol)
}
