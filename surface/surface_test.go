package surface

import (
	"math"
	"testing"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/tolerance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane(t *testing.T) {
	p := NewPlane(geom.Pt3(0, 0, 1), geom.V3(1, 0, 0), geom.V3(0, 1, 0))

	assert.Equal(t, geom.Pt3(2, 3, 1), p.At(2, 3))
	assert.True(t, p.Normal(0, 0).Near(geom.V3(0, 0, 1)))
	assert.False(t, p.UDomain().Bounded())

	got, ok := p.SearchParameter(geom.Pt3(2, 3, 1), numeric.SurfaceParam{})
	require.True(t, ok)
	assert.InDelta(t, 2.0, got.U, tolerance.Tolerance)
	assert.InDelta(t, 3.0, got.V, tolerance.Tolerance)

	_, ok = p.SearchParameter(geom.Pt3(2, 3, 4), numeric.SurfaceParam{})
	assert.False(t, ok)
}

func TestPlaneInverted(t *testing.T) {
	p := NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	inv := p.Inverted()
	assert.True(t, inv.Normal(0, 0).Near(p.Normal(0, 0).Neg()))

	twice := inv.Inverted()
	assert.Equal(t, Surface(p), twice)
}

func TestPlaneSubdividePanicsUnbounded(t *testing.T) {
	p := NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	assert.Panics(t, func() { p.Subdivide(1e-3) })
}

func TestSphere(t *testing.T) {
	s := NewSphere(geom.Pt3(0, 0, 0), 2)

	assert.True(t, s.At(0, 0).Near(geom.Pt3(0, 0, 2)))
	assert.True(t, s.At(math.Pi/2, 0).Near(geom.Pt3(2, 0, 0)))
	assert.True(t, s.At(math.Pi/2, math.Pi/2).Near(geom.Pt3(0, 2, 0)))

	// Outward normal on the equator.
	assert.True(t, s.Normal(math.Pi/2, 0).Near(geom.V3(1, 0, 0)))
	// Pole normal falls back to the radial direction.
	assert.True(t, s.Normal(0, 0).Near(geom.V3(0, 0, 1)))

	period, ok := s.VPeriod()
	require.True(t, ok)
	assert.InDelta(t, 2*math.Pi, period, 1e-12)
	_, ok = s.UPeriod()
	assert.False(t, ok)
}

func TestSphereDerivatives(t *testing.T) {
	s := NewSphere(geom.Pt3(1, -1, 0.5), 1.7)
	const h = 1e-6
	for _, uv := range [][2]float64{{0.4, 0.9}, {1.2, 3.0}, {2.0, 5.5}} {
		u, v := uv[0], uv[1]
		fdU := s.At(u+h, v).Sub(s.At(u-h, v)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdU.Sub(s.DerivU(u, v)).Length(), 1e-5)

		fdV := s.At(u, v+h).Sub(s.At(u, v-h)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdV.Sub(s.DerivV(u, v)).Length(), 1e-5)

		fdUU := s.DerivU(u+h, v).Sub(s.DerivU(u-h, v)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdUU.Sub(s.DerivUU(u, v)).Length(), 1e-5)

		fdUV := s.DerivU(u, v+h).Sub(s.DerivU(u, v-h)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdUV.Sub(s.DerivUV(u, v)).Length(), 1e-5)

		fdVV := s.DerivV(u, v+h).Sub(s.DerivV(u, v-h)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdVV.Sub(s.DerivVV(u, v)).Length(), 1e-5)
	}
}

func TestSphereSearchParameter(t *testing.T) {
	s := NewSphere(geom.Pt3(0, 0, 0), 1)

	pt := s.At(1.1, 2.2)
	got, ok := s.SearchParameter(pt, numeric.SurfaceParam{})
	require.True(t, ok)
	assert.InDelta(t, 1.1, got.U, 1e-9)
	assert.InDelta(t, 2.2, got.V, 1e-9)

	_, ok = s.SearchParameter(geom.Pt3(2, 0, 0), numeric.SurfaceParam{})
	assert.False(t, ok)

	// The center has no projection.
	_, ok = s.SearchNearestParameter(geom.Pt3(0, 0, 0), numeric.SurfaceParam{})
	assert.False(t, ok)
}

func TestSphereSubdivide(t *testing.T) {
	s := NewSphere(geom.Pt3(0, 0, 0), 1)
	us, vs := s.Subdivide(1e-2)
	assert.Greater(t, len(us), 2)
	assert.Greater(t, len(vs), 2)
}

func TestSphereInvertedFlipsNormal(t *testing.T) {
	s := NewSphere(geom.Pt3(0, 0, 0), 1)
	inv := s.Inverted()
	// Same point set on the equator start, opposite normal.
	assert.True(t, inv.At(math.Pi/2, 0).Near(s.At(math.Pi/2, 0)))
	assert.True(t, inv.Normal(math.Pi/2, 0).Near(s.Normal(math.Pi/2, 0).Neg()))
}

func TestSphereTransformed(t *testing.T) {
	s := NewSphere(geom.Pt3(0, 0, 0), 1)
	m := geom.Translate(geom.V3(1, 2, 3)).Mul(geom.Scale(3))
	ts := s.Transformed(m).(Sphere)
	assert.True(t, ts.Center.Near(geom.Pt3(1, 2, 3)))
	assert.InDelta(t, 3.0, ts.Radius, 1e-12)
}

func TestCylinder(t *testing.T) {
	c := NewCylinder(geom.Pt3(0, 0, 0), 1)

	assert.True(t, c.At(0, 0).Near(geom.Pt3(1, 0, 0)))
	assert.True(t, c.At(math.Pi/2, 2).Near(geom.Pt3(0, 1, 2)))
	assert.True(t, c.Normal(0, 0).Near(geom.V3(1, 0, 0)))

	assert.False(t, c.VDomain().Bounded())
	period, ok := c.UPeriod()
	require.True(t, ok)
	assert.InDelta(t, 2*math.Pi, period, 1e-12)

	pt := c.At(1.0, -2.5)
	got, ok := c.SearchParameter(pt, numeric.SurfaceParam{})
	require.True(t, ok)
	assert.InDelta(t, 1.0, got.U, 1e-9)
	assert.InDelta(t, -2.5, got.V, 1e-9)

	// Axis points have no angle.
	_, ok = c.SearchNearestParameter(geom.Pt3(0, 0, 3), numeric.SurfaceParam{})
	assert.False(t, ok)

	assert.Panics(t, func() { c.Subdivide(1e-3) })
}

func TestCylinderDerivatives(t *testing.T) {
	c := NewCylinder(geom.Pt3(0, 1, 0), 2.5)
	const h = 1e-6
	for _, uv := range [][2]float64{{0.3, 1.0}, {2.5, -4.0}} {
		u, v := uv[0], uv[1]
		fdU := c.At(u+h, v).Sub(c.At(u-h, v)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdU.Sub(c.DerivU(u, v)).Length(), 1e-5)

		fdUU := c.DerivU(u+h, v).Sub(c.DerivU(u-h, v)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fdUU.Sub(c.DerivUU(u, v)).Length(), 1e-5)
	}
}
