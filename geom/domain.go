package geom

import (
	"fmt"
	"math"
)

// BoundKind describes one side of a parameter domain.
type BoundKind int

const (
	// BoundIncluded is a closed bound: the endpoint belongs to the domain.
	BoundIncluded BoundKind = iota
	// BoundExcluded is an open bound: values approach but never reach it.
	BoundExcluded
	// BoundUnbounded means the domain extends to infinity on this side.
	BoundUnbounded
)

// Bound is one side of a parameter domain.
type Bound struct {
	Kind  BoundKind
	Value float64
}

// Included returns a closed bound at v.
func Included(v float64) Bound { return Bound{Kind: BoundIncluded, Value: v} }

// Excluded returns an open bound at v.
func Excluded(v float64) Bound { return Bound{Kind: BoundExcluded, Value: v} }

// Unbounded returns an unbounded side.
func Unbounded() Bound { return Bound{Kind: BoundUnbounded} }

// Domain is a parameter interval of a curve or one direction of a surface.
// Either side may be unbounded.
type Domain struct {
	Min, Max Bound
}

// ClosedDomain returns the closed interval [min, max].
func ClosedDomain(min, max float64) Domain {
	return Domain{Min: Included(min), Max: Included(max)}
}

// FullDomain returns the domain unbounded on both sides.
func FullDomain() Domain {
	return Domain{Min: Unbounded(), Max: Unbounded()}
}

// Bounded reports whether both sides of the domain are finite.
func (d Domain) Bounded() bool {
	return d.Min.Kind != BoundUnbounded && d.Max.Kind != BoundUnbounded
}

// MustRange returns the finite (min, max) range of the domain.
//
// Calling MustRange on a domain with an unbounded side is a programming
// error and panics. Callers that may face unbounded geometry must check
// Bounded first.
func (d Domain) MustRange() (min, max float64) {
	if !d.Bounded() {
		panic(fmt.Sprintf("geom: MustRange on unbounded domain %+v", d))
	}
	return d.Min.Value, d.Max.Value
}

// Contains reports whether t lies inside the domain, honoring open,
// closed and unbounded sides.
func (d Domain) Contains(t float64) bool {
	switch d.Min.Kind {
	case BoundIncluded:
		if t < d.Min.Value {
			return false
		}
	case BoundExcluded:
		if t <= d.Min.Value {
			return false
		}
	}
	switch d.Max.Kind {
	case BoundIncluded:
		if t > d.Max.Value {
			return false
		}
	case BoundExcluded:
		if t >= d.Max.Value {
			return false
		}
	}
	return true
}

// Clamp returns t clamped to the finite sides of the domain. Unbounded
// sides leave t unchanged in that direction.
func (d Domain) Clamp(t float64) float64 {
	if d.Min.Kind != BoundUnbounded && t < d.Min.Value {
		t = d.Min.Value
	}
	if d.Max.Kind != BoundUnbounded && t > d.Max.Value {
		t = d.Max.Value
	}
	return t
}

// Span returns the finite width of the domain, or +Inf when a side is
// unbounded.
func (d Domain) Span() float64 {
	if !d.Bounded() {
		return math.Inf(1)
	}
	return d.Max.Value - d.Min.Value
}
