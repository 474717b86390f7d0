package curve

import (
	"math"
	"testing"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/tolerance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	l := NewLine(geom.Pt3(1, 0, 0), geom.Pt3(3, 4, 0))

	front, back := l.Endpoints()
	assert.Equal(t, geom.Pt3(1, 0, 0), front)
	assert.Equal(t, geom.Pt3(3, 4, 0), back)
	assert.Equal(t, geom.Pt3(2, 2, 0), l.At(0.5))
	assert.Equal(t, geom.V3(2, 4, 0), l.Deriv(0.3))
	assert.Equal(t, geom.Vec3{}, l.Deriv2(0.3))

	_, periodic := l.Period()
	assert.False(t, periodic)

	tt, ok := l.SearchParameter(geom.Pt3(2, 2, 0), 0)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tt, tolerance.Tolerance)

	_, ok = l.SearchParameter(geom.Pt3(0, 5, 0), 0)
	assert.False(t, ok)
}

func TestLineInvertedInvolutive(t *testing.T) {
	l := NewLine(geom.Pt3(1, 2, 3), geom.Pt3(4, 5, 6))
	assert.Equal(t, Curve(l), l.Inverted().Inverted())

	inv := l.Inverted()
	f0, b0 := l.Endpoints()
	f1, b1 := inv.Endpoints()
	assert.Equal(t, f0, b1)
	assert.Equal(t, b0, f1)
}

func TestArc(t *testing.T) {
	a := Arc{
		Center: geom.Pt3(0, 0, 0),
		XAxis:  geom.V3(1, 0, 0),
		YAxis:  geom.V3(0, 1, 0),
		Radius: 2,
		Angle:  math.Pi / 2,
	}

	front, back := a.Endpoints()
	assert.True(t, front.Near(geom.Pt3(2, 0, 0)))
	assert.True(t, back.Near(geom.Pt3(0, 2, 0)))
	assert.False(t, a.IsClosed())

	tt, ok := a.SearchParameter(a.At(0.7), 0)
	require.True(t, ok)
	assert.InDelta(t, 0.7, tt, 1e-9)

	// Off-sweep points resolve to the nearer endpoint.
	near, ok := a.SearchNearestParameter(geom.Pt3(2, -1, 0), 0)
	require.True(t, ok)
	assert.Equal(t, 0.0, near)

	// The center has no angle.
	_, ok = a.SearchNearestParameter(geom.Pt3(0, 0, 0), 0)
	assert.False(t, ok)
}

func TestArcInvertedInvolutive(t *testing.T) {
	a := Arc{
		Center: geom.Pt3(1, 1, 0),
		XAxis:  geom.V3(1, 0, 0),
		YAxis:  geom.V3(0, 1, 0),
		Radius: 3,
		Angle:  1.3,
	}

	inv := a.Inverted().(Arc)
	f0, b0 := a.Endpoints()
	f1, b1 := inv.Endpoints()
	assert.True(t, f0.Near(b1))
	assert.True(t, b0.Near(f1))

	twice := inv.Inverted().(Arc)
	assert.True(t, twice.XAxis.Near(a.XAxis))
	assert.True(t, twice.YAxis.Near(a.YAxis))
	for _, tt := range []float64{0, 0.4, 1.3} {
		assert.True(t, twice.At(tt).Near(a.At(tt)))
	}
}

func TestCircle(t *testing.T) {
	c := NewCircle(geom.Pt3(0, 0, 1), geom.V3(1, 0, 0), geom.V3(0, 1, 0), 1.5)
	assert.True(t, c.IsClosed())

	period, ok := c.Period()
	require.True(t, ok)
	assert.InDelta(t, 2*math.Pi, period, 1e-12)

	front, back := c.Endpoints()
	assert.True(t, front.Near(back))
}

func TestArcTransformed(t *testing.T) {
	a := NewCircle(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0), 1)
	m := geom.Translate(geom.V3(0, 0, 5)).Mul(geom.Scale(2))
	ta := a.Transformed(m).(Arc)

	assert.True(t, ta.Center.Near(geom.Pt3(0, 0, 5)))
	assert.InDelta(t, 2.0, ta.Radius, 1e-12)
	assert.True(t, ta.At(0).Near(geom.Pt3(2, 0, 5)))
}

func TestBezier(t *testing.T) {
	b := NewBezier([]geom.Point3{
		geom.Pt3(0, 0, 0),
		geom.Pt3(1, 2, 0),
		geom.Pt3(3, 2, 0),
		geom.Pt3(4, 0, 0),
	})
	assert.Equal(t, 3, b.Degree())

	front, back := b.Endpoints()
	assert.Equal(t, geom.Pt3(0, 0, 0), front)
	assert.Equal(t, geom.Pt3(4, 0, 0), back)

	// Cubic Bezier derivative at the front is 3*(P1-P0).
	assert.True(t, b.Deriv(0).Near(geom.V3(3, 6, 0)))
	// Second derivative at the front is 6*(P2-2*P1+P0).
	assert.True(t, b.Deriv2(0).Near(geom.V3(6, -12, 0)))

	pt := b.At(0.37)
	tt, ok := b.SearchParameter(pt, 0.3)
	require.True(t, ok)
	assert.InDelta(t, 0.37, tt, 1e-6)

	_, ok = b.SearchParameter(geom.Pt3(0, 5, 0), -1)
	assert.False(t, ok)
}

func TestBezierInvertedInvolutive(t *testing.T) {
	b := NewBezier([]geom.Point3{geom.Pt3(0, 0, 0), geom.Pt3(1, 1, 0), geom.Pt3(2, 0, 0)})
	twice := b.Inverted().Inverted().(Bezier)
	assert.Equal(t, b.Ctrl, twice.Ctrl)

	inv := b.Inverted()
	assert.True(t, inv.At(0.25).Near(b.At(0.75)))
}

func TestTrimmed(t *testing.T) {
	base := NewLine(geom.Pt3(0, 0, 0), geom.Pt3(10, 0, 0))
	tr := NewTrimmed(base, 0.2, 0.7)

	front, back := tr.Endpoints()
	assert.True(t, front.Near(geom.Pt3(2, 0, 0)))
	assert.True(t, back.Near(geom.Pt3(7, 0, 0)))

	min, max := tr.ParamDomain().MustRange()
	assert.Equal(t, 0.2, min)
	assert.Equal(t, 0.7, max)

	// Nearest search clamps into the trim interval.
	tt, ok := tr.SearchNearestParameter(geom.Pt3(9, 0, 0), 0)
	require.True(t, ok)
	assert.Equal(t, 0.7, tt)

	_, ok = tr.SearchParameter(geom.Pt3(9, 0, 0), 0)
	assert.False(t, ok)
}

func TestTrimmedInvertedInvolutive(t *testing.T) {
	base := NewLine(geom.Pt3(0, 0, 0), geom.Pt3(10, 0, 0))
	tr := NewTrimmed(base, 0.2, 0.7)

	inv := tr.Inverted().(Trimmed)
	f0, b0 := tr.Endpoints()
	f1, b1 := inv.Endpoints()
	assert.True(t, f0.Near(b1))
	assert.True(t, b0.Near(f1))

	twice := inv.Inverted().(Trimmed)
	assert.InDelta(t, tr.T0, twice.T0, 1e-12)
	assert.InDelta(t, tr.T1, twice.T1, 1e-12)
}

func TestPCurveOnSphere(t *testing.T) {
	sph := surface.NewSphere(geom.Pt3(0, 0, 0), 1)
	// Equator: u fixed at pi/2, v sweeping a quarter turn.
	c2 := NewLine2(geom.Pt2(math.Pi/2, 0), geom.Pt2(math.Pi/2, math.Pi/2))
	pc := NewPCurve(c2, sph)

	front, back := pc.Endpoints()
	assert.True(t, front.Near(geom.Pt3(1, 0, 0)))
	assert.True(t, back.Near(geom.Pt3(0, 1, 0)))

	// Midpoint of the sweep sits at 45 degrees on the equator.
	mid := pc.At(0.5)
	s := math.Sqrt(2) / 2
	assert.True(t, mid.Near(geom.Pt3(s, s, 0)))

	tt, ok := pc.SearchParameter(mid, 0.4)
	require.True(t, ok)
	assert.InDelta(t, 0.5, tt, 1e-6)

	params := pc.Subdivide(1e-3)
	assert.Greater(t, len(params), 2)
}

func TestPCurveDerivatives(t *testing.T) {
	sph := surface.NewSphere(geom.Pt3(0, 0, 0), 2)
	c2 := NewLine2(geom.Pt2(0.3, 0.1), geom.Pt2(1.2, 2.0))
	pc := NewPCurve(c2, sph)

	// Compare analytic derivatives against central differences.
	const h = 1e-6
	for _, tt := range []float64{0.2, 0.5, 0.8} {
		fd := pc.At(tt + h).Sub(pc.At(tt - h)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fd.Sub(pc.Deriv(tt)).Length(), 1e-5)

		fd2 := pc.Deriv(tt + h).Sub(pc.Deriv(tt - h)).Mul(1 / (2 * h))
		assert.InDelta(t, 0, fd2.Sub(pc.Deriv2(tt)).Length(), 1e-5)
	}
}

func TestCurve2Bezier(t *testing.T) {
	b := NewBezier2([]geom.Point2{geom.Pt2(0, 0), geom.Pt2(1, 1), geom.Pt2(2, 0)})
	assert.True(t, b.At(0.5).Near(geom.Pt2(1, 0.5)))

	inv := b.Inverted()
	assert.True(t, inv.At(0.25).Near(b.At(0.75)))

	// Quadratic derivative at the front is 2*(P1-P0).
	d := b.Deriv(0)
	assert.InDelta(t, 2.0, d.X, 1e-12)
	assert.InDelta(t, 2.0, d.Y, 1e-12)
}
