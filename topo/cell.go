package topo

import (
	"sync"
	"sync/atomic"
)

// ID is a process-unique opaque identity of a topological entity.
// Identities are never reused within a process; the zero ID is invalid.
type ID uint64

// idCounter issues identities. Starting at 1 keeps the zero ID invalid.
var idCounter atomic.Uint64

func newID() ID {
	return ID(idCounter.Add(1))
}

// cell is the shared, exclusively-locked home of a geometry payload.
// All handles of one entity point at the same cell; the lock spans a
// single read-modify-write, never a whole algorithm call.
type cell[T any] struct {
	mu sync.Mutex
	v  T
}

func newCell[T any](v T) *cell[T] {
	return &cell[T]{v: v}
}

// get returns a copy of the payload under the lock.
func (c *cell[T]) get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// set replaces the payload under the lock.
func (c *cell[T]) set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = v
}

// update applies f to the payload under the lock.
func (c *cell[T]) update(f func(T) T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = f(c.v)
}
