package topo

// Wire is an ordered chain of oriented edge references. A wire is valid
// when each edge's presented back vertex shares identity with the next
// edge's presented front vertex; PushBack and PushFront maintain this in
// O(1) per append.
type Wire[P, C any] struct {
	edges []Edge[P, C]
}

// NewWire creates a wire from the given connected edge chain.
func NewWire[P, C any](edges ...Edge[P, C]) (Wire[P, C], error) {
	var w Wire[P, C]
	for _, e := range edges {
		if err := w.PushBack(e); err != nil {
			return Wire[P, C]{}, err
		}
	}
	return w, nil
}

// Len returns the number of edges.
func (w *Wire[P, C]) Len() int {
	return len(w.edges)
}

// PushBack appends e to the chain, validating connectivity against the
// current back vertex.
func (w *Wire[P, C]) PushBack(e Edge[P, C]) error {
	if len(w.edges) > 0 {
		back := w.edges[len(w.edges)-1].Back()
		if !back.Same(e.Front()) {
			return &ErrDisconnectedWire{Expected: back.ID(), Actual: e.Front().ID()}
		}
	}
	w.edges = append(w.edges, e)
	return nil
}

// PushFront prepends e to the chain, validating connectivity against the
// current front vertex.
func (w *Wire[P, C]) PushFront(e Edge[P, C]) error {
	if len(w.edges) > 0 {
		front := w.edges[0].Front()
		if !e.Back().Same(front) {
			return &ErrDisconnectedWire{Expected: front.ID(), Actual: e.Back().ID()}
		}
	}
	w.edges = append([]Edge[P, C]{e}, w.edges...)
	return nil
}

// Edges returns a copy of the oriented edge chain.
func (w *Wire[P, C]) Edges() []Edge[P, C] {
	out := make([]Edge[P, C], len(w.edges))
	copy(out, w.edges)
	return out
}

// Edge returns the i-th oriented edge.
func (w *Wire[P, C]) Edge(i int) Edge[P, C] {
	return w.edges[i]
}

// FrontVertex returns the first edge's presented front vertex.
// ok is false on an empty wire.
func (w *Wire[P, C]) FrontVertex() (Vertex[P], bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}
	return w.edges[0].Front(), true
}

// BackVertex returns the last edge's presented back vertex.
// ok is false on an empty wire.
func (w *Wire[P, C]) BackVertex() (Vertex[P], bool) {
	if len(w.edges) == 0 {
		return Vertex[P]{}, false
	}
	return w.edges[len(w.edges)-1].Back(), true
}

// IsClosed reports whether the chain returns to its starting vertex.
// An empty wire is not closed.
func (w *Wire[P, C]) IsClosed() bool {
	front, ok := w.FrontVertex()
	if !ok {
		return false
	}
	back, _ := w.BackVertex()
	return front.Same(back)
}

// Inverted returns the wire walked the other way: reversed edge order
// with every edge's presentation flipped. Shared geometry is untouched
// and inversion is involutive.
func (w *Wire[P, C]) Inverted() Wire[P, C] {
	inv := make([]Edge[P, C], len(w.edges))
	for i, e := range w.edges {
		inv[len(w.edges)-1-i] = e.Inverted()
	}
	return Wire[P, C]{edges: inv}
}

// Vertices returns the chain's vertices in walk order: each edge's
// presented front vertex, then the final back vertex of an open wire.
func (w *Wire[P, C]) Vertices() []Vertex[P] {
	if len(w.edges) == 0 {
		return nil
	}
	out := make([]Vertex[P], 0, len(w.edges)+1)
	for _, e := range w.edges {
		out = append(out, e.Front())
	}
	if !w.IsClosed() {
		out = append(out, w.edges[len(w.edges)-1].Back())
	}
	return out
}
