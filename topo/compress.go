package topo

// CompressedShell is the flat, index-deduplicated projection of a shell:
// a vertex point table, a (front, back, curve) edge table indexing into
// it, and per-face boundary index lists. It carries geometry by value
// and no identities, which makes it the persistence boundary: an
// external encoder maps it to file syntax, and extraction rebuilds fresh
// identities purely from index equality.
type CompressedShell[P, C, S any] struct {
	Vertices []P                 `json:"vertices"`
	Edges    []CompressedEdge[C] `json:"edges"`
	Faces    []CompressedFace[S] `json:"faces"`
}

// CompressedEdge is an edge row: vertex table indices plus the curve.
type CompressedEdge[C any] struct {
	Front int `json:"front"`
	Back  int `json:"back"`
	Curve C   `json:"curve"`
}

// CompressedFace is a face row: boundary index lists (outer first) plus
// the orientation bit and the surface.
type CompressedFace[S any] struct {
	Boundaries  [][]CompressedEdgeIndex `json:"boundaries"`
	Orientation bool                    `json:"orientation"`
	Surface     S                       `json:"surface"`
}

// CompressedEdgeIndex is one oriented edge reference within a boundary.
type CompressedEdgeIndex struct {
	Index   int  `json:"index"`
	Forward bool `json:"forward"`
}

// CompressedSolid is the flat projection of a solid: one compressed
// shell per boundary, outer first.
type CompressedSolid[P, C, S any] struct {
	Boundaries []CompressedShell[P, C, S] `json:"boundaries"`
}

// CompressShell projects the shell onto flat arrays. Each distinct
// vertex and edge identity is assigned a dense index on first encounter
// of the fixed face/boundary walk, so the output is deterministic per
// shell instance.
func CompressShell[P, C, S any](s *Shell[P, C, S]) CompressedShell[P, C, S] {
	var out CompressedShell[P, C, S]
	vertexIdx := make(map[ID]int)
	edgeIdx := make(map[ID]int)

	vertexIndex := func(v Vertex[P]) int {
		if i, ok := vertexIdx[v.ID()]; ok {
			return i
		}
		i := len(out.Vertices)
		vertexIdx[v.ID()] = i
		out.Vertices = append(out.Vertices, v.Point())
		return i
	}
	edgeIndex := func(e Edge[P, C]) int {
		abs := e.Absolute()
		if i, ok := edgeIdx[abs.ID()]; ok {
			return i
		}
		i := len(out.Edges)
		edgeIdx[abs.ID()] = i
		out.Edges = append(out.Edges, CompressedEdge[C]{
			Front: vertexIndex(abs.Front()),
			Back:  vertexIndex(abs.Back()),
			Curve: abs.Curve(),
		})
		return i
	}

	for i := range s.faces {
		f := s.faces[i]
		cf := CompressedFace[S]{
			Orientation: f.Orientation(),
			Surface:     f.Surface(),
		}
		for _, w := range f.AbsoluteBoundaries() {
			boundary := make([]CompressedEdgeIndex, 0, w.Len())
			for _, e := range w.Edges() {
				boundary = append(boundary, CompressedEdgeIndex{
					Index:   edgeIndex(e),
					Forward: e.Orientation(),
				})
			}
			cf.Boundaries = append(cf.Boundaries, boundary)
		}
		out.Faces = append(out.Faces, cf)
	}
	return out
}

// ExtractShell rebuilds a shell from its compressed form with fresh
// identities. Sharing is re-established purely from index equality:
// rows referencing the same index share one new identity. Invalid
// indices and broken boundary chains are reported as errors.
func ExtractShell[P, C, S any](cs CompressedShell[P, C, S]) (Shell[P, C, S], error) {
	vertices := make([]Vertex[P], len(cs.Vertices))
	for i, p := range cs.Vertices {
		vertices[i] = NewVertex(p)
	}
	edges := make([]Edge[P, C], len(cs.Edges))
	for i, ce := range cs.Edges {
		if ce.Front < 0 || ce.Front >= len(vertices) {
			return Shell[P, C, S]{}, &ErrInvalidIndex{Kind: "vertex", Index: ce.Front, Len: len(vertices)}
		}
		if ce.Back < 0 || ce.Back >= len(vertices) {
			return Shell[P, C, S]{}, &ErrInvalidIndex{Kind: "vertex", Index: ce.Back, Len: len(vertices)}
		}
		edges[i] = NewEdgeUnchecked(vertices[ce.Front], vertices[ce.Back], ce.Curve)
	}

	var shell Shell[P, C, S]
	for _, cf := range cs.Faces {
		boundaries := make([]Wire[P, C], 0, len(cf.Boundaries))
		for _, cb := range cf.Boundaries {
			var w Wire[P, C]
			for _, ref := range cb {
				if ref.Index < 0 || ref.Index >= len(edges) {
					return Shell[P, C, S]{}, &ErrInvalidIndex{Kind: "edge", Index: ref.Index, Len: len(edges)}
				}
				e := edges[ref.Index]
				if !ref.Forward {
					e = e.Inverted()
				}
				if err := w.PushBack(e); err != nil {
					return Shell[P, C, S]{}, err
				}
			}
			boundaries = append(boundaries, w)
		}
		f, err := NewFace(boundaries, cf.Surface)
		if err != nil {
			return Shell[P, C, S]{}, err
		}
		if !cf.Orientation {
			f = f.Inverted()
		}
		shell.Push(f)
	}
	return shell, nil
}

// CompressSolid projects every boundary shell of the solid.
func CompressSolid[P, C, S any](s *Solid[P, C, S]) CompressedSolid[P, C, S] {
	out := CompressedSolid[P, C, S]{
		Boundaries: make([]CompressedShell[P, C, S], len(s.shells)),
	}
	for i := range s.shells {
		out.Boundaries[i] = CompressShell(&s.shells[i])
	}
	return out
}

// ExtractSolid rebuilds a solid from its compressed form, re-validating
// that every boundary shell is closed.
func ExtractSolid[P, C, S any](cs CompressedSolid[P, C, S]) (Solid[P, C, S], error) {
	shells := make([]Shell[P, C, S], len(cs.Boundaries))
	for i, b := range cs.Boundaries {
		shell, err := ExtractShell[P, C, S](b)
		if err != nil {
			return Solid[P, C, S]{}, err
		}
		shells[i] = shell
	}
	return NewSolid(shells)
}
