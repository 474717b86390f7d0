package brepgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/testutil"
	"github.com/hupe1980/brepgo/tolerance"
)

func TestLine(t *testing.T) {
	v0 := NewVertex(geom.Pt3(0, 0, 0))
	v1 := NewVertex(geom.Pt3(1, 2, 3))

	e, err := Line(v0, v1)
	require.NoError(t, err)

	assert.True(t, e.Front().Same(v0))
	assert.True(t, e.Back().Same(v1))

	front, back := e.Curve().Endpoints()
	assert.True(t, front.Near(v0.Point()))
	assert.True(t, back.Near(v1.Point()))
}

func TestArc(t *testing.T) {
	t.Run("through transit", func(t *testing.T) {
		v0 := NewVertex(geom.Pt3(1, 0, 0))
		v1 := NewVertex(geom.Pt3(-1, 0, 0))
		transit := geom.Pt3(0, 1, 0)

		e, err := Arc(v0, v1, transit)
		require.NoError(t, err)

		a, ok := e.Curve().(curve.Arc)
		require.True(t, ok)

		assert.True(t, a.Center.Near(geom.Pt3(0, 0, 0)))
		assert.InDelta(t, 1.0, a.Radius, tolerance.Tolerance)

		// The transit lies on the swept range.
		_, ok = a.SearchParameter(transit, 0)
		assert.True(t, ok)

		front, back := a.Endpoints()
		assert.True(t, front.Near(v0.Point()))
		assert.True(t, back.Near(v1.Point()))
	})

	t.Run("major arc", func(t *testing.T) {
		// Transit on the far side forces the long way around.
		v0 := NewVertex(geom.Pt3(1, 0, 0))
		v1 := NewVertex(geom.Pt3(0, 1, 0))

		e, err := Arc(v0, v1, geom.Pt3(0, -1, 0))
		require.NoError(t, err)

		a := e.Curve().(curve.Arc)
		assert.Greater(t, a.Angle, 3.14)
	})

	t.Run("collinear transit", func(t *testing.T) {
		v0 := NewVertex(geom.Pt3(0, 0, 0))
		v1 := NewVertex(geom.Pt3(2, 0, 0))

		_, err := Arc(v0, v1, geom.Pt3(1, 0, 0))
		assert.ErrorIs(t, err, ErrCollinearArc)
	})
}

func TestBezierEdge(t *testing.T) {
	v0 := NewVertex(geom.Pt3(0, 0, 0))
	v1 := NewVertex(geom.Pt3(3, 0, 0))

	e, err := BezierEdge(v0, v1, []geom.Point3{geom.Pt3(1, 1, 0), geom.Pt3(2, 1, 0)})
	require.NoError(t, err)

	b, ok := e.Curve().(curve.Bezier)
	require.True(t, ok)
	assert.Equal(t, 3, b.Degree())

	front, back := b.Endpoints()
	assert.True(t, front.Near(v0.Point()))
	assert.True(t, back.Near(v1.Point()))

	_, err = BezierEdge(v0, v1, nil)
	assert.ErrorIs(t, err, ErrTooFewControlPoints)
}

func TestPolygon(t *testing.T) {
	w, err := Polygon(
		geom.Pt3(0, 0, 0),
		geom.Pt3(1, 0, 0),
		geom.Pt3(1, 1, 0),
		geom.Pt3(0, 1, 0),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, w.Len())
	assert.True(t, w.IsClosed())

	_, err = Polygon(geom.Pt3(0, 0, 0), geom.Pt3(1, 0, 0))
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestAttachPlane(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		w, err := Polygon(
			geom.Pt3(0, 0, 0),
			geom.Pt3(1, 0, 0),
			geom.Pt3(1, 1, 0),
			geom.Pt3(0, 1, 0),
		)
		require.NoError(t, err)

		f, err := AttachPlane([]Wire{w})
		require.NoError(t, err)

		p, ok := f.Surface().(surface.Plane)
		require.True(t, ok)

		// Counterclockwise winding in the xy plane yields a +z normal.
		assert.True(t, p.Normal(0, 0).Near(geom.V3(0, 0, 1)))
		assert.True(t, f.Orientation())
	})

	t.Run("with hole", func(t *testing.T) {
		outer, err := Polygon(
			geom.Pt3(0, 0, 0),
			geom.Pt3(4, 0, 0),
			geom.Pt3(4, 4, 0),
			geom.Pt3(0, 4, 0),
		)
		require.NoError(t, err)

		hole, err := Polygon(
			geom.Pt3(1, 1, 0),
			geom.Pt3(1, 2, 0),
			geom.Pt3(2, 2, 0),
			geom.Pt3(2, 1, 0),
		)
		require.NoError(t, err)

		f, err := AttachPlane([]Wire{outer, hole})
		require.NoError(t, err)
		assert.Len(t, f.Boundaries(), 2)
	})

	t.Run("not planar", func(t *testing.T) {
		w, err := Polygon(
			geom.Pt3(0, 0, 0),
			geom.Pt3(1, 0, 0),
			geom.Pt3(1, 1, 0.5),
			geom.Pt3(0, 1, 0),
		)
		require.NoError(t, err)

		_, err = AttachPlane([]Wire{w})

		var notPlanar *ErrNotPlanar
		require.ErrorAs(t, err, &notPlanar)
		assert.Greater(t, notPlanar.Deviation, tolerance.Tolerance)
	})

	t.Run("no boundary", func(t *testing.T) {
		_, err := AttachPlane(nil)
		assert.Error(t, err)
	})
}

func TestAttachPlaneRandomFrames(t *testing.T) {
	rng := testutil.NewRNG(99)

	for range 10 {
		origin := rng.PointInBox(-5, 5)

		u := rng.UnitVec()
		var v geom.Vec3
		for {
			w := rng.UnitVec()
			cross := u.Cross(w)
			if cross.Length() > 0.1 {
				v = cross.Normalize()
				break
			}
		}

		n := 3 + rng.Intn(5)
		pts := make([]geom.Point3, n)
		for i := range pts {
			angle := 2 * math.Pi * float64(i) / float64(n)
			radius := rng.Float64Range(1, 2)
			pts[i] = origin.Add(u.Mul(radius * math.Cos(angle))).Add(v.Mul(radius * math.Sin(angle)))
		}

		w, err := Polygon(pts...)
		require.NoError(t, err)

		f, err := AttachPlane([]Wire{w})
		require.NoError(t, err)

		// The fitted normal spans neither frame axis.
		p := f.Surface().(surface.Plane)
		normal := p.Normal(0, 0)
		assert.InDelta(t, 0, normal.Dot(u), 1e-9)
		assert.InDelta(t, 0, normal.Dot(v), 1e-9)
	}
}

func TestSolidFromBuilders(t *testing.T) {
	s := tetraShell(t)

	solid, err := SolidFromShells(s)
	require.NoError(t, err)
	assert.Equal(t, 1, solid.Len())
}

// tetraShell builds a closed tetrahedron shell from line edges and
// planar faces, sharing edges between adjacent faces.
func tetraShell(t *testing.T) Shell {
	t.Helper()

	v0 := NewVertex(geom.Pt3(0, 0, 0))
	v1 := NewVertex(geom.Pt3(1, 0, 0))
	v2 := NewVertex(geom.Pt3(0, 1, 0))
	v3 := NewVertex(geom.Pt3(0, 0, 1))

	mustLine := func(a, b Vertex) Edge {
		e, err := Line(a, b)
		require.NoError(t, err)
		return e
	}

	e01 := mustLine(v0, v1)
	e12 := mustLine(v1, v2)
	e20 := mustLine(v2, v0)
	e03 := mustLine(v0, v3)
	e13 := mustLine(v1, v3)
	e23 := mustLine(v2, v3)

	mustFace := func(edges ...Edge) Face {
		w, err := WireFromEdges(edges...)
		require.NoError(t, err)

		f, err := AttachPlane([]Wire{w})
		require.NoError(t, err)
		return f
	}

	return ShellFromFaces(
		mustFace(e01, e12, e20),
		mustFace(e03, e13.Inverted(), e01.Inverted()),
		mustFace(e13, e23.Inverted(), e12.Inverted()),
		mustFace(e23, e03.Inverted(), e20.Inverted()),
	)
}
