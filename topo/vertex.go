package topo

// Vertex is a handle to a topological vertex: an identity plus an owned
// point payload. Copies of a Vertex share both; mutating the point
// through one copy is visible through all.
type Vertex[P any] struct {
	id ID
	pt *cell[P]
}

// NewVertex creates a vertex owning the given point.
func NewVertex[P any](pt P) Vertex[P] {
	return Vertex[P]{id: newID(), pt: newCell(pt)}
}

// ID returns the vertex identity.
func (v Vertex[P]) ID() ID {
	return v.id
}

// Same reports whether both handles name the same vertex identity.
func (v Vertex[P]) Same(other Vertex[P]) bool {
	return v.id == other.id
}

// Point returns the current point payload.
func (v Vertex[P]) Point() P {
	return v.pt.get()
}

// SetPoint replaces the point payload, visible through every handle of
// this identity.
func (v Vertex[P]) SetPoint(pt P) {
	v.pt.set(pt)
}

// UpdatePoint applies f to the point payload under the lock.
func (v Vertex[P]) UpdatePoint(f func(P) P) {
	v.pt.update(f)
}
