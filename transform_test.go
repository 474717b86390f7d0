package brepgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/geom"
)

func TestTranslated(t *testing.T) {
	src := tetraShell(t)

	dst, err := Translated(&src, geom.V3(10, 0, 0))
	require.NoError(t, err)

	// Same structure, fresh identities.
	assert.Equal(t, src.Len(), dst.Len())
	assert.Len(t, dst.Edges(), len(src.Edges()))
	assert.Len(t, dst.Vertices(), len(src.Vertices()))

	for _, v := range dst.Vertices() {
		for _, sv := range src.Vertices() {
			assert.False(t, v.Same(sv))
		}
	}

	// The source stays where it was.
	origin := false
	for _, v := range src.Vertices() {
		if v.Point().Near(geom.Pt3(0, 0, 0)) {
			origin = true
		}
	}
	assert.True(t, origin)

	moved := false
	for _, v := range dst.Vertices() {
		assert.GreaterOrEqual(t, v.Point().X, 10.0-1e-12)
		if v.Point().Near(geom.Pt3(10, 0, 0)) {
			moved = true
		}
	}
	assert.True(t, moved)

	assert.Equal(t, src.Condition(), dst.Condition())
}

func TestRotated(t *testing.T) {
	src := tetraShell(t)

	dst, err := Rotated(&src, geom.Pt3(0, 0, 0), geom.V3(0, 0, 1), math.Pi/2)
	require.NoError(t, err)

	// (1,0,0) maps to (0,1,0) under a quarter turn around z.
	found := false
	for _, v := range dst.Vertices() {
		if v.Point().Near(geom.Pt3(0, 1, 0)) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScaled(t *testing.T) {
	src := tetraShell(t)

	dst, err := Scaled(&src, geom.Pt3(0, 0, 0), 2)
	require.NoError(t, err)

	found := false
	for _, v := range dst.Vertices() {
		if v.Point().Near(geom.Pt3(2, 0, 0)) {
			found = true
		}
	}
	assert.True(t, found)

	// Scaling about a fixed point keeps the point.
	kept := false
	for _, v := range dst.Vertices() {
		if v.Point().Near(geom.Pt3(0, 0, 0)) {
			kept = true
		}
	}
	assert.True(t, kept)
}

func TestTransformedCopySharing(t *testing.T) {
	src := tetraShell(t)

	dst, err := TransformedCopy(&src, geom.Identity())
	require.NoError(t, err)

	// Shared edges of the source stay shared: the copy dedups to the
	// same counts instead of splitting per face.
	assert.Len(t, dst.Edges(), 6)
	assert.Len(t, dst.Vertices(), 4)
	assert.Equal(t, src.Condition(), dst.Condition())
}

func TestTransformShellInPlace(t *testing.T) {
	s := tetraShell(t)

	vertices := s.Vertices()
	edges := s.Edges()

	TransformShell(&s, geom.Translate(geom.V3(0, 0, 5)))

	// The mutation is visible through pre-existing handles.
	found := false
	for _, v := range vertices {
		if v.Point().Near(geom.Pt3(0, 0, 5)) {
			found = true
		}
		assert.GreaterOrEqual(t, v.Point().Z, 5.0-1e-12)
	}
	assert.True(t, found)

	for _, e := range edges {
		front, back := e.Curve().Endpoints()
		assert.True(t, front.Near(e.AbsoluteFront().Point()))
		assert.True(t, back.Near(e.AbsoluteBack().Point()))
	}

	assert.Equal(t, 4, len(s.Vertices()))
}
