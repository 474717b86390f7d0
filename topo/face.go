package topo

// Face is a handle to a topological face: an identity, one outer
// boundary wire plus zero or more hole wires, an owned surface payload,
// and a presentation orientation. The orientation bit records whether
// the surface's natural normal matches the face's outward sense.
type Face[P, C, S any] struct {
	id          ID
	orientation bool
	boundaries  []Wire[P, C]
	surface     *cell[S]
}

// NewFace creates a face from its boundary wires and surface. The first
// wire is the outer boundary, the rest are holes; every wire must be
// nonempty and closed.
func NewFace[P, C, S any](boundaries []Wire[P, C], surf S) (Face[P, C, S], error) {
	if len(boundaries) == 0 {
		return Face[P, C, S]{}, ErrNoBoundary
	}
	bs := make([]Wire[P, C], len(boundaries))
	for i := range boundaries {
		if boundaries[i].Len() == 0 {
			return Face[P, C, S]{}, ErrEmptyWire
		}
		if !boundaries[i].IsClosed() {
			return Face[P, C, S]{}, &ErrNotClosedWire{Wire: i}
		}
		bs[i] = Wire[P, C]{edges: boundaries[i].Edges()}
	}
	return Face[P, C, S]{
		id:          newID(),
		orientation: true,
		boundaries:  bs,
		surface:     newCell(surf),
	}, nil
}

// ID returns the face identity.
func (f Face[P, C, S]) ID() ID {
	return f.id
}

// Same reports whether both handles name the same face identity,
// regardless of presentation orientation.
func (f Face[P, C, S]) Same(other Face[P, C, S]) bool {
	return f.id == other.id
}

// Orientation reports whether the surface's natural normal matches the
// face's outward sense.
func (f Face[P, C, S]) Orientation() bool {
	return f.orientation
}

// Inverted returns a handle to the same face presented inside out: the
// orientation bit flips and boundaries present inverted. Shared geometry
// is untouched; inversion is involutive.
func (f Face[P, C, S]) Inverted() Face[P, C, S] {
	f.orientation = !f.orientation
	return f
}

// Boundaries returns the boundary wires in effective orientation: as
// stored for a forward face, inverted for an inverted one. The outer
// boundary stays first.
func (f Face[P, C, S]) Boundaries() []Wire[P, C] {
	out := make([]Wire[P, C], len(f.boundaries))
	for i := range f.boundaries {
		if f.orientation {
			out[i] = Wire[P, C]{edges: f.boundaries[i].Edges()}
		} else {
			out[i] = f.boundaries[i].Inverted()
		}
	}
	return out
}

// AbsoluteBoundaries returns the construction-time boundary wires,
// independent of presentation.
func (f Face[P, C, S]) AbsoluteBoundaries() []Wire[P, C] {
	out := make([]Wire[P, C], len(f.boundaries))
	for i := range f.boundaries {
		out[i] = Wire[P, C]{edges: f.boundaries[i].Edges()}
	}
	return out
}

// BoundaryEdges yields every boundary edge in effective orientation,
// walking the outer wire first, then the holes.
func (f Face[P, C, S]) BoundaryEdges() []Edge[P, C] {
	var out []Edge[P, C]
	for _, w := range f.Boundaries() {
		out = append(out, w.edges...)
	}
	return out
}

// Surface returns the current surface payload.
func (f Face[P, C, S]) Surface() S {
	return f.surface.get()
}

// SetSurface replaces the surface payload, visible through every handle
// of this identity.
func (f Face[P, C, S]) SetSurface(s S) {
	f.surface.set(s)
}

// UpdateSurface applies fn to the surface payload under the lock.
func (f Face[P, C, S]) UpdateSurface(fn func(S) S) {
	f.surface.update(fn)
}
