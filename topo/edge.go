package topo

// NearPoint is the constraint checked edge construction places on point
// payloads: tolerance-aware coincidence.
type NearPoint[P any] interface {
	Near(P) bool
}

// BoundedCurve is the constraint checked edge construction places on
// curve payloads: evaluable endpoints in front-to-back order.
type BoundedCurve[P any] interface {
	Endpoints() (front, back P)
}

// Edge is a handle to a topological edge: an identity, a fixed ordered
// vertex pair, an owned curve payload, and a presentation orientation.
//
// The vertex pair and curve are absolute: they never change under
// inversion. Inversion only flips which end is presented as front.
// Copies share identity and curve cell regardless of orientation.
type Edge[P, C any] struct {
	id          ID
	orientation bool
	front, back Vertex[P]
	curve       *cell[C]
}

// NewEdge creates an edge between v0 and v1 carrying the given curve.
// It rejects a single vertex used for both ends, and a curve whose
// endpoint evaluations do not coincide with the vertices within
// tolerance.
func NewEdge[P NearPoint[P], C BoundedCurve[P]](v0, v1 Vertex[P], curve C) (Edge[P, C], error) {
	if v0.Same(v1) {
		return Edge[P, C]{}, ErrSameVertex
	}
	front, back := curve.Endpoints()
	if !v0.Point().Near(front) {
		return Edge[P, C]{}, &ErrEndpointMismatch{Vertex: v0.ID(), End: "front"}
	}
	if !v1.Point().Near(back) {
		return Edge[P, C]{}, &ErrEndpointMismatch{Vertex: v1.ID(), End: "back"}
	}
	return NewEdgeUnchecked(v0, v1, curve), nil
}

// NewEdgeUnchecked creates an edge trusting the caller that the curve's
// endpoints match v0 and v1. Use only with pre-verified input.
func NewEdgeUnchecked[P, C any](v0, v1 Vertex[P], curve C) Edge[P, C] {
	return Edge[P, C]{
		id:          newID(),
		orientation: true,
		front:       v0,
		back:        v1,
		curve:       newCell(curve),
	}
}

// ID returns the edge identity.
func (e Edge[P, C]) ID() ID {
	return e.id
}

// Same reports whether both handles name the same edge identity,
// regardless of presentation orientation.
func (e Edge[P, C]) Same(other Edge[P, C]) bool {
	return e.id == other.id
}

// Orientation reports whether the edge is presented forward.
func (e Edge[P, C]) Orientation() bool {
	return e.orientation
}

// AbsoluteFront returns the construction-time front vertex, independent
// of presentation.
func (e Edge[P, C]) AbsoluteFront() Vertex[P] {
	return e.front
}

// AbsoluteBack returns the construction-time back vertex, independent
// of presentation.
func (e Edge[P, C]) AbsoluteBack() Vertex[P] {
	return e.back
}

// Front returns the presented front vertex.
func (e Edge[P, C]) Front() Vertex[P] {
	if e.orientation {
		return e.front
	}
	return e.back
}

// Back returns the presented back vertex.
func (e Edge[P, C]) Back() Vertex[P] {
	if e.orientation {
		return e.back
	}
	return e.front
}

// Inverted returns a handle to the same edge presented the other way
// round. The shared curve is untouched; inversion is involutive.
func (e Edge[P, C]) Inverted() Edge[P, C] {
	e.orientation = !e.orientation
	return e
}

// Absolute returns a forward-presented handle to the same edge.
func (e Edge[P, C]) Absolute() Edge[P, C] {
	e.orientation = true
	return e
}

// Curve returns the current curve payload.
func (e Edge[P, C]) Curve() C {
	return e.curve.get()
}

// SetCurve replaces the curve payload, visible through every handle of
// this identity and through every wire and face referencing it.
func (e Edge[P, C]) SetCurve(c C) {
	e.curve.set(c)
}

// UpdateCurve applies f to the curve payload under the lock.
func (e Edge[P, C]) UpdateCurve(f func(C) C) {
	e.curve.update(f)
}
