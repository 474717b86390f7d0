package brepgo

import (
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/snapshot"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/topo"
)

// The compressed topology forms carry curves and surfaces as interface
// values, which no codec can marshal on its own. The record types below
// are the wire form: a kind tag plus exactly one populated concrete
// field. Trimmed and PCurve records nest recursively.

// Geometry kind tags.
const (
	KindLine    = "line"
	KindArc     = "arc"
	KindBezier  = "bezier"
	KindTrimmed = "trimmed"
	KindPCurve  = "pcurve"

	KindLine2   = "line2"
	KindBezier2 = "bezier2"

	KindPlane    = "plane"
	KindSphere   = "sphere"
	KindCylinder = "cylinder"
)

// CurveRecord is the self-describing wire form of a 3D curve.
type CurveRecord struct {
	Kind    string         `json:"kind"`
	Line    *curve.Line    `json:"line,omitempty"`
	Arc     *curve.Arc     `json:"arc,omitempty"`
	Bezier  *curve.Bezier  `json:"bezier,omitempty"`
	Trimmed *TrimmedRecord `json:"trimmed,omitempty"`
	PCurve  *PCurveRecord  `json:"pcurve,omitempty"`
}

// TrimmedRecord is the wire form of a parameter-trimmed curve.
type TrimmedRecord struct {
	Inner CurveRecord `json:"inner"`
	T0    float64     `json:"t0"`
	T1    float64     `json:"t1"`
}

// PCurveRecord is the wire form of a surface-riding curve.
type PCurveRecord struct {
	Curve   Curve2Record  `json:"curve"`
	Surface SurfaceRecord `json:"surface"`
}

// Curve2Record is the self-describing wire form of a 2D curve.
type Curve2Record struct {
	Kind    string         `json:"kind"`
	Line2   *curve.Line2   `json:"line2,omitempty"`
	Bezier2 *curve.Bezier2 `json:"bezier2,omitempty"`
}

// SurfaceRecord is the self-describing wire form of a surface.
type SurfaceRecord struct {
	Kind     string            `json:"kind"`
	Plane    *surface.Plane    `json:"plane,omitempty"`
	Sphere   *surface.Sphere   `json:"sphere,omitempty"`
	Cylinder *surface.Cylinder `json:"cylinder,omitempty"`
}

// NewCurveRecord converts a curve into its wire form.
func NewCurveRecord(c curve.Curve) (CurveRecord, error) {
	switch c := c.(type) {
	case curve.Line:
		return CurveRecord{Kind: KindLine, Line: &c}, nil
	case curve.Arc:
		return CurveRecord{Kind: KindArc, Arc: &c}, nil
	case curve.Bezier:
		return CurveRecord{Kind: KindBezier, Bezier: &c}, nil
	case curve.Trimmed:
		inner, err := NewCurveRecord(c.Inner)
		if err != nil {
			return CurveRecord{}, err
		}

		return CurveRecord{Kind: KindTrimmed, Trimmed: &TrimmedRecord{Inner: inner, T0: c.T0, T1: c.T1}}, nil
	case curve.PCurve:
		c2, err := NewCurve2Record(c.C)
		if err != nil {
			return CurveRecord{}, err
		}

		s, err := NewSurfaceRecord(c.S)
		if err != nil {
			return CurveRecord{}, err
		}

		return CurveRecord{Kind: KindPCurve, PCurve: &PCurveRecord{Curve: c2, Surface: s}}, nil
	default:
		return CurveRecord{}, &ErrUnknownKind{Kind: fmt.Sprintf("%T", c)}
	}
}

// Curve rebuilds the curve the record describes.
func (r CurveRecord) Curve() (curve.Curve, error) {
	switch r.Kind {
	case KindLine:
		if r.Line != nil {
			return *r.Line, nil
		}
	case KindArc:
		if r.Arc != nil {
			return *r.Arc, nil
		}
	case KindBezier:
		if r.Bezier != nil {
			return *r.Bezier, nil
		}
	case KindTrimmed:
		if r.Trimmed != nil {
			inner, err := r.Trimmed.Inner.Curve()
			if err != nil {
				return nil, err
			}

			return curve.NewTrimmed(inner, r.Trimmed.T0, r.Trimmed.T1), nil
		}
	case KindPCurve:
		if r.PCurve != nil {
			c2, err := r.PCurve.Curve.Curve2()
			if err != nil {
				return nil, err
			}

			s, err := r.PCurve.Surface.Surface()
			if err != nil {
				return nil, err
			}

			return curve.NewPCurve(c2, s), nil
		}
	}

	return nil, &ErrUnknownKind{Kind: r.Kind}
}

// NewCurve2Record converts a 2D curve into its wire form.
func NewCurve2Record(c curve.Curve2) (Curve2Record, error) {
	switch c := c.(type) {
	case curve.Line2:
		return Curve2Record{Kind: KindLine2, Line2: &c}, nil
	case curve.Bezier2:
		return Curve2Record{Kind: KindBezier2, Bezier2: &c}, nil
	default:
		return Curve2Record{}, &ErrUnknownKind{Kind: fmt.Sprintf("%T", c)}
	}
}

// Curve2 rebuilds the 2D curve the record describes.
func (r Curve2Record) Curve2() (curve.Curve2, error) {
	switch r.Kind {
	case KindLine2:
		if r.Line2 != nil {
			return *r.Line2, nil
		}
	case KindBezier2:
		if r.Bezier2 != nil {
			return *r.Bezier2, nil
		}
	}

	return nil, &ErrUnknownKind{Kind: r.Kind}
}

// NewSurfaceRecord converts a surface into its wire form.
func NewSurfaceRecord(s surface.Surface) (SurfaceRecord, error) {
	switch s := s.(type) {
	case surface.Plane:
		return SurfaceRecord{Kind: KindPlane, Plane: &s}, nil
	case surface.Sphere:
		return SurfaceRecord{Kind: KindSphere, Sphere: &s}, nil
	case surface.Cylinder:
		return SurfaceRecord{Kind: KindCylinder, Cylinder: &s}, nil
	default:
		return SurfaceRecord{}, &ErrUnknownKind{Kind: fmt.Sprintf("%T", s)}
	}
}

// Surface rebuilds the surface the record describes.
func (r SurfaceRecord) Surface() (surface.Surface, error) {
	switch r.Kind {
	case KindPlane:
		if r.Plane != nil {
			return *r.Plane, nil
		}
	case KindSphere:
		if r.Sphere != nil {
			return *r.Sphere, nil
		}
	case KindCylinder:
		if r.Cylinder != nil {
			return *r.Cylinder, nil
		}
	}

	return nil, &ErrUnknownKind{Kind: r.Kind}
}

// ShellRecord is the fully concrete wire form of a compressed shell.
type ShellRecord struct {
	Vertices []geom.Point3 `json:"vertices"`
	Edges    []EdgeRecord  `json:"edges"`
	Faces    []FaceRecord  `json:"faces"`
}

// EdgeRecord is one edge row of a ShellRecord.
type EdgeRecord struct {
	Front int         `json:"front"`
	Back  int         `json:"back"`
	Curve CurveRecord `json:"curve"`
}

// FaceRecord is one face row of a ShellRecord.
type FaceRecord struct {
	Boundaries  [][]topo.CompressedEdgeIndex `json:"boundaries"`
	Orientation bool                         `json:"orientation"`
	Surface     SurfaceRecord                `json:"surface"`
}

// SolidRecord is the wire form of a compressed solid.
type SolidRecord struct {
	Boundaries []ShellRecord `json:"boundaries"`
}

// NewShellRecord converts a compressed shell into its wire form.
func NewShellRecord(cs CompressedShell) (ShellRecord, error) {
	rec := ShellRecord{
		Vertices: cs.Vertices,
		Edges:    make([]EdgeRecord, len(cs.Edges)),
		Faces:    make([]FaceRecord, len(cs.Faces)),
	}

	for i, e := range cs.Edges {
		cr, err := NewCurveRecord(e.Curve)
		if err != nil {
			return ShellRecord{}, err
		}

		rec.Edges[i] = EdgeRecord{Front: e.Front, Back: e.Back, Curve: cr}
	}

	for i, f := range cs.Faces {
		sr, err := NewSurfaceRecord(f.Surface)
		if err != nil {
			return ShellRecord{}, err
		}

		rec.Faces[i] = FaceRecord{Boundaries: f.Boundaries, Orientation: f.Orientation, Surface: sr}
	}

	return rec, nil
}

// Compressed rebuilds the compressed shell the record describes.
func (r ShellRecord) Compressed() (CompressedShell, error) {
	cs := CompressedShell{
		Vertices: r.Vertices,
		Edges:    make([]topo.CompressedEdge[curve.Curve], len(r.Edges)),
		Faces:    make([]topo.CompressedFace[surface.Surface], len(r.Faces)),
	}

	for i, e := range r.Edges {
		c, err := e.Curve.Curve()
		if err != nil {
			return CompressedShell{}, err
		}

		cs.Edges[i] = topo.CompressedEdge[curve.Curve]{Front: e.Front, Back: e.Back, Curve: c}
	}

	for i, f := range r.Faces {
		s, err := f.Surface.Surface()
		if err != nil {
			return CompressedShell{}, err
		}

		cs.Faces[i] = topo.CompressedFace[surface.Surface]{Boundaries: f.Boundaries, Orientation: f.Orientation, Surface: s}
	}

	return cs, nil
}

// NewSolidRecord converts a compressed solid into its wire form.
func NewSolidRecord(cs CompressedSolid) (SolidRecord, error) {
	rec := SolidRecord{Boundaries: make([]ShellRecord, len(cs.Boundaries))}

	for i, b := range cs.Boundaries {
		sr, err := NewShellRecord(b)
		if err != nil {
			return SolidRecord{}, err
		}

		rec.Boundaries[i] = sr
	}

	return rec, nil
}

// Compressed rebuilds the compressed solid the record describes.
func (r SolidRecord) Compressed() (CompressedSolid, error) {
	cs := CompressedSolid{Boundaries: make([]CompressedShell, len(r.Boundaries))}

	for i, b := range r.Boundaries {
		bs, err := b.Compressed()
		if err != nil {
			return CompressedSolid{}, err
		}

		cs.Boundaries[i] = bs
	}

	return cs, nil
}

// SaveShell compresses the shell and writes it as a snapshot. The
// returned manifest carries the model id and entity counts.
func SaveShell(w io.Writer, name string, s *Shell, optFns ...Option) (snapshot.Manifest, error) {
	o := applyOptions(optFns)

	start := time.Now()
	m, err := saveShell(w, name, s, o)

	o.logger.LogSnapshotSave(name, err)
	o.metricsCollector.RecordSnapshotSave(time.Since(start), err)

	return m, err
}

func saveShell(w io.Writer, name string, s *Shell, o options) (snapshot.Manifest, error) {
	cs := topo.CompressShell(s)

	rec, err := NewShellRecord(cs)
	if err != nil {
		return snapshot.Manifest{}, err
	}

	m := snapshot.NewManifest(name)
	m.Vertices = len(cs.Vertices)
	m.Edges = len(cs.Edges)
	m.Faces = len(cs.Faces)

	return m, snapshot.Save(w, m, rec, snapshotOptions(o)...)
}

// LoadShell reads a shell snapshot and extracts it into a live shell
// with fresh identities.
func LoadShell(r io.ReadSeeker, optFns ...Option) (snapshot.Manifest, Shell, error) {
	o := applyOptions(optFns)

	start := time.Now()
	m, s, err := loadShell(r)

	o.logger.LogSnapshotLoad(m.Name, err)
	o.metricsCollector.RecordSnapshotLoad(time.Since(start), err)

	return m, s, err
}

func loadShell(r io.ReadSeeker) (snapshot.Manifest, Shell, error) {
	m, rec, err := snapshot.Load[ShellRecord](r)
	if err != nil {
		return snapshot.Manifest{}, Shell{}, err
	}

	cs, err := rec.Compressed()
	if err != nil {
		return snapshot.Manifest{}, Shell{}, err
	}

	s, err := topo.ExtractShell(cs)
	if err != nil {
		return snapshot.Manifest{}, Shell{}, err
	}

	return m, s, nil
}

// SaveSolid compresses the solid and writes it as a snapshot. Manifest
// counts are summed over the boundary shells.
func SaveSolid(w io.Writer, name string, s *Solid, optFns ...Option) (snapshot.Manifest, error) {
	o := applyOptions(optFns)

	start := time.Now()
	m, err := saveSolid(w, name, s, o)

	o.logger.LogSnapshotSave(name, err)
	o.metricsCollector.RecordSnapshotSave(time.Since(start), err)

	return m, err
}

func saveSolid(w io.Writer, name string, s *Solid, o options) (snapshot.Manifest, error) {
	cs := topo.CompressSolid(s)

	rec, err := NewSolidRecord(cs)
	if err != nil {
		return snapshot.Manifest{}, err
	}

	m := snapshot.NewManifest(name)
	for _, b := range cs.Boundaries {
		m.Vertices += len(b.Vertices)
		m.Edges += len(b.Edges)
		m.Faces += len(b.Faces)
	}

	return m, snapshot.Save(w, m, rec, snapshotOptions(o)...)
}

// LoadSolid reads a solid snapshot and extracts it into a live solid
// with fresh identities. Extraction re-validates that every boundary
// shell is closed and oriented.
func LoadSolid(r io.ReadSeeker, optFns ...Option) (snapshot.Manifest, Solid, error) {
	o := applyOptions(optFns)

	start := time.Now()
	m, s, err := loadSolid(r)

	o.logger.LogSnapshotLoad(m.Name, err)
	o.metricsCollector.RecordSnapshotLoad(time.Since(start), err)

	return m, s, err
}

func loadSolid(r io.ReadSeeker) (snapshot.Manifest, Solid, error) {
	m, rec, err := snapshot.Load[SolidRecord](r)
	if err != nil {
		return snapshot.Manifest{}, Solid{}, err
	}

	cs, err := rec.Compressed()
	if err != nil {
		return snapshot.Manifest{}, Solid{}, err
	}

	s, err := topo.ExtractSolid(cs)
	if err != nil {
		return snapshot.Manifest{}, Solid{}, err
	}

	return m, s, nil
}

// snapshotOptions maps the configured codec and compression onto the
// snapshot writer.
func snapshotOptions(o options) []snapshot.Option {
	opts := []snapshot.Option{snapshot.WithCompression(o.compression)}
	if o.codec != nil {
		opts = append(opts, snapshot.WithCodec(o.codec))
	}

	return opts
}
