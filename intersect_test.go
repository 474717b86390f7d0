package brepgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/tolerance"
)

func TestTraceIntersectionPlanes(t *testing.T) {
	// The xy plane and the xz plane meet along the x axis.
	s0 := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	s1 := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 0, 1))

	pts, ok := TraceIntersection(s0, s1, geom.Pt3(0, 0.05, 0.05), 0.5, 5)
	require.True(t, ok)
	require.Len(t, pts, 5)

	for _, p := range pts {
		assert.InDelta(t, 0, p.Point.Y, tolerance.Tolerance)
		assert.InDelta(t, 0, p.Point.Z, tolerance.Tolerance)
	}

	// Consecutive points keep the step length and march one way.
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 0.5, pts[i].Point.Distance(pts[i-1].Point), 1e-6)
	}
	assert.Greater(t, pts[4].Point.Distance(pts[0].Point), 1.9)
}

func TestTraceIntersectionSpherePlane(t *testing.T) {
	// A unit sphere cut by the xy plane traces the unit circle.
	sp := surface.NewSphere(geom.Pt3(0, 0, 0), 1)
	pl := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))

	pts, ok := TraceIntersection(sp, pl, geom.Pt3(0.9, 0.1, 0.05), 0.2, 8)
	require.True(t, ok)
	require.Len(t, pts, 8)

	for _, p := range pts {
		r := math.Hypot(p.Point.X, p.Point.Y)
		assert.InDelta(t, 1, r, 1e-6)
		assert.InDelta(t, 0, p.Point.Z, tolerance.Tolerance)
	}
}

func TestTraceIntersectionTangential(t *testing.T) {
	// Parallel planes never intersect; their normals are parallel
	// everywhere, so no marching direction exists.
	s0 := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	s1 := surface.NewPlane(geom.Pt3(0, 0, 1), geom.V3(1, 0, 0), geom.V3(0, 1, 0))

	pts, ok := TraceIntersection(s0, s1, geom.Pt3(0, 0, 0.5), 0.1, 4)
	assert.False(t, ok)
	assert.Empty(t, pts)
}

func TestTraceIntersectionZeroCount(t *testing.T) {
	s0 := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	s1 := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 0, 1))

	pts, ok := TraceIntersection(s0, s1, geom.Pt3(0, 0, 0), 0.1, 0)
	assert.True(t, ok)
	assert.Empty(t, pts)
}
