package topo

import (
	"errors"
	"fmt"
)

var (
	// ErrSameVertex is returned when an edge is constructed over a single
	// vertex identity.
	ErrSameVertex = errors.New("edge endpoints must be distinct vertices")

	// ErrEmptyWire is returned when a face boundary has no edges.
	ErrEmptyWire = errors.New("wire has no edges")

	// ErrEmptyShell is returned when a solid shell has no faces.
	ErrEmptyShell = errors.New("shell has no faces")

	// ErrNoBoundary is returned when a face is constructed without
	// boundary wires.
	ErrNoBoundary = errors.New("face requires at least one boundary wire")
)

// ErrEndpointMismatch indicates a curve whose endpoint evaluation does
// not coincide with the vertex it is attached to within tolerance.
type ErrEndpointMismatch struct {
	Vertex ID
	End    string // "front" or "back"
}

func (e *ErrEndpointMismatch) Error() string {
	return fmt.Sprintf("curve %s endpoint does not match vertex %d within tolerance", e.End, e.Vertex)
}

// ErrDisconnectedWire indicates an edge append whose front vertex does
// not share identity with the wire's current back vertex.
type ErrDisconnectedWire struct {
	Expected, Actual ID
}

func (e *ErrDisconnectedWire) Error() string {
	return fmt.Sprintf("wire is disconnected: expected vertex %d, got %d", e.Expected, e.Actual)
}

// ErrNotClosedWire indicates a face boundary wire whose ends do not meet.
type ErrNotClosedWire struct {
	Wire int // boundary position within the face
}

func (e *ErrNotClosedWire) Error() string {
	return fmt.Sprintf("boundary wire %d is not closed", e.Wire)
}

// ErrNotClosedShell indicates a solid shell that does not bound a volume.
type ErrNotClosedShell struct {
	Shell     int
	Condition ShellCondition
}

func (e *ErrNotClosedShell) Error() string {
	return fmt.Sprintf("shell %d is not closed: condition %s", e.Shell, e.Condition)
}

// ErrInvalidIndex indicates a compressed entity referencing an index
// outside its table.
type ErrInvalidIndex struct {
	Kind  string // "vertex" or "edge"
	Index int
	Len   int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("compressed %s index %d out of range [0, %d)", e.Kind, e.Index, e.Len)
}
