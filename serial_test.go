package brepgo

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/brepgo/codec"
	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/snapshot"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/topo"
)

func TestCurveRecordRoundTrip(t *testing.T) {
	plane := surface.NewPlane(geom.Pt3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))

	tests := []struct {
		name string
		c    curve.Curve
		kind string
	}{
		{
			name: "line",
			c:    curve.NewLine(geom.Pt3(0, 0, 0), geom.Pt3(1, 2, 3)),
			kind: KindLine,
		},
		{
			name: "arc",
			c:    curve.NewCircle(geom.Pt3(1, 1, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0), 2),
			kind: KindArc,
		},
		{
			name: "bezier",
			c:    curve.NewBezier([]geom.Point3{geom.Pt3(0, 0, 0), geom.Pt3(1, 1, 0), geom.Pt3(2, 0, 0)}),
			kind: KindBezier,
		},
		{
			name: "trimmed",
			c:    curve.NewTrimmed(curve.NewLine(geom.Pt3(0, 0, 0), geom.Pt3(4, 0, 0)), 0.25, 0.75),
			kind: KindTrimmed,
		},
		{
			name: "pcurve",
			c:    curve.NewPCurve(curve.NewLine2(geom.Pt2(0, 0), geom.Pt2(1, 1)), plane),
			kind: KindPCurve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewCurveRecord(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, rec.Kind)

			// Through the default codec and back.
			data, err := codec.Default.Marshal(rec)
			require.NoError(t, err)

			var decoded CurveRecord
			require.NoError(t, codec.Default.Unmarshal(data, &decoded))

			got, err := decoded.Curve()
			require.NoError(t, err)
			assert.Equal(t, tt.c, got)
		})
	}
}

func TestCurveRecordUnknownKind(t *testing.T) {
	_, err := CurveRecord{Kind: "nurbs"}.Curve()

	var unknown *ErrUnknownKind
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nurbs", unknown.Kind)

	// A tag without its payload is equally invalid.
	_, err = CurveRecord{Kind: KindLine}.Curve()
	assert.ErrorAs(t, err, &unknown)
}

func TestSurfaceRecordRoundTrip(t *testing.T) {
	surfaces := []surface.Surface{
		surface.NewPlane(geom.Pt3(1, 0, 0), geom.V3(0, 1, 0), geom.V3(0, 0, 1)),
		surface.NewSphere(geom.Pt3(0, 0, 0), 2),
		surface.NewCylinder(geom.Pt3(0, 0, 0), 1.5),
	}

	for _, s := range surfaces {
		rec, err := NewSurfaceRecord(s)
		require.NoError(t, err)

		got, err := rec.Surface()
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestSaveLoadShell(t *testing.T) {
	src := tetraShell(t)

	var buf bytes.Buffer

	m, err := SaveShell(&buf, "tetra", &src)
	require.NoError(t, err)

	assert.Equal(t, "tetra", m.Name)
	assert.Equal(t, 4, m.Vertices)
	assert.Equal(t, 6, m.Edges)
	assert.Equal(t, 4, m.Faces)
	assert.NotEqual(t, uuid.Nil, m.ID)

	loaded, s, err := LoadShell(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.ID, loaded.ID)

	assert.Equal(t, 4, s.Len())
	assert.Len(t, s.Edges(), 6)
	assert.Len(t, s.Vertices(), 4)
	assert.Equal(t, topo.ConditionClosed, s.Condition())
}

func TestSaveLoadSolid(t *testing.T) {
	solid, err := SolidFromShells(tetraShell(t))
	require.NoError(t, err)

	var buf bytes.Buffer

	m, err := SaveSolid(&buf, "tetra", &solid, WithCompression(snapshot.CompressionLZ4), WithCodec(codec.JSON{}))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Vertices)
	assert.Equal(t, 6, m.Edges)
	assert.Equal(t, 4, m.Faces)

	loaded, got, err := LoadSolid(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, m.Name, loaded.Name)
	assert.Equal(t, 1, got.Len())
}

func TestLoadShellRejectsGarbage(t *testing.T) {
	_, _, err := LoadShell(bytes.NewReader([]byte("not a snapshot at all")))
	assert.Error(t, err)
}

func TestSaveLoadShellGeometrySurvives(t *testing.T) {
	src := tetraShell(t)

	var buf bytes.Buffer

	_, err := SaveShell(&buf, "tetra", &src)
	require.NoError(t, err)

	_, s, err := LoadShell(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// Every loaded vertex matches a source position.
	for _, v := range s.Vertices() {
		found := false
		for _, sv := range src.Vertices() {
			if v.Point().Near(sv.Point()) {
				found = true
			}
		}
		assert.True(t, found)
	}

	// Faces come back with plane surfaces and intact boundaries.
	for _, f := range s.Faces() {
		_, ok := f.Surface().(surface.Plane)
		assert.True(t, ok)
		assert.Len(t, f.Boundaries(), 1)
	}
}
