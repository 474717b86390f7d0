package topo

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Shell is a collection of faces. Shared edge identities between faces
// encode adjacency; the shell itself adds no constraint beyond holding
// the faces in insertion order.
type Shell[P, C, S any] struct {
	faces []Face[P, C, S]
}

// NewShell creates a shell over the given faces.
func NewShell[P, C, S any](faces ...Face[P, C, S]) Shell[P, C, S] {
	fs := make([]Face[P, C, S], len(faces))
	copy(fs, faces)
	return Shell[P, C, S]{faces: fs}
}

// Len returns the number of faces.
func (s *Shell[P, C, S]) Len() int {
	return len(s.faces)
}

// Push appends faces to the shell.
func (s *Shell[P, C, S]) Push(faces ...Face[P, C, S]) {
	s.faces = append(s.faces, faces...)
}

// Faces returns a copy of the face list in insertion order.
func (s *Shell[P, C, S]) Faces() []Face[P, C, S] {
	out := make([]Face[P, C, S], len(s.faces))
	copy(out, s.faces)
	return out
}

// Face returns the i-th face.
func (s *Shell[P, C, S]) Face(i int) Face[P, C, S] {
	return s.faces[i]
}

// Inverted returns the shell with every face presented inside out.
func (s *Shell[P, C, S]) Inverted() Shell[P, C, S] {
	inv := make([]Face[P, C, S], len(s.faces))
	for i, f := range s.faces {
		inv[i] = f.Inverted()
	}
	return Shell[P, C, S]{faces: inv}
}

// Edges returns every distinct edge of the shell, deduplicated by
// identity in first-encounter order of the face/boundary walk.
func (s *Shell[P, C, S]) Edges() []Edge[P, C] {
	seen := roaring64.New()
	var out []Edge[P, C]
	for i := range s.faces {
		for _, e := range s.faces[i].BoundaryEdges() {
			if seen.CheckedAdd(uint64(e.ID())) {
				out = append(out, e.Absolute())
			}
		}
	}
	return out
}

// Vertices returns every distinct vertex of the shell, deduplicated by
// identity in first-encounter order of the face/boundary walk.
func (s *Shell[P, C, S]) Vertices() []Vertex[P] {
	seen := roaring64.New()
	var out []Vertex[P]
	for i := range s.faces {
		for _, e := range s.faces[i].BoundaryEdges() {
			for _, v := range []Vertex[P]{e.Front(), e.Back()} {
				if seen.CheckedAdd(uint64(v.ID())) {
					out = append(out, v)
				}
			}
		}
	}
	return out
}

// ShellCondition classifies a shell by how consistently its faces use
// shared edges.
type ShellCondition int

const (
	// ConditionIrregular: some edge is used by three or more faces, or
	// twice within a single face.
	ConditionIrregular ShellCondition = iota
	// ConditionRegular: every edge is used at most twice, but some
	// shared edge is walked in the same direction by both faces.
	ConditionRegular
	// ConditionOriented: shared edges are walked consistently, but some
	// edge is used only once; the shell is open.
	ConditionOriented
	// ConditionClosed: every edge is used exactly twice, in opposite
	// directions; the shell bounds a volume.
	ConditionClosed
)

// String returns the classification name.
func (c ShellCondition) String() string {
	switch c {
	case ConditionIrregular:
		return "irregular"
	case ConditionRegular:
		return "regular"
	case ConditionOriented:
		return "oriented"
	case ConditionClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Condition classifies the shell in one pass over its edges, building an
// edge-to-face-usage map keyed by identity. The effective orientation of
// each use comes from the face's boundary walk.
func (s *Shell[P, C, S]) Condition() ShellCondition {
	type usage struct {
		count   int
		forward int
		selfAdj bool
	}
	usages := make(map[ID]*usage)

	for i := range s.faces {
		perFace := make(map[ID]bool)
		for _, e := range s.faces[i].BoundaryEdges() {
			u := usages[e.ID()]
			if u == nil {
				u = &usage{}
				usages[e.ID()] = u
			}
			u.count++
			if e.Orientation() {
				u.forward++
			}
			if perFace[e.ID()] {
				u.selfAdj = true
			}
			perFace[e.ID()] = true
		}
	}

	cond := ConditionClosed
	for _, u := range usages {
		switch {
		case u.count > 2 || u.selfAdj:
			return ConditionIrregular
		case u.count == 2 && u.forward != 1:
			// Both faces walk the edge the same way.
			cond = min(cond, ConditionRegular)
		case u.count == 1:
			cond = min(cond, ConditionOriented)
		}
	}
	return cond
}
