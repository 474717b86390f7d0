package brepgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/brepgo/geom"
)

var (
	// ErrCollinearArc is returned by Arc when the transit point lies on
	// the line through the endpoints, so no circle passes through all
	// three.
	ErrCollinearArc = errors.New("arc transit point is collinear with its endpoints")

	// ErrTooFewControlPoints is returned by BezierEdge when no interior
	// control points are given; a two-point Bezier is a Line.
	ErrTooFewControlPoints = errors.New("bezier edge needs at least one interior control point")

	// ErrTooFewPoints is returned by Polygon for fewer than three
	// corner points.
	ErrTooFewPoints = errors.New("polygon needs at least three points")
)

// ErrNotPlanar is returned by AttachPlane when the boundary vertices do
// not fit a single plane within tolerance, or when they are too
// degenerate to define one.
type ErrNotPlanar struct {
	// Deviation is the largest out-of-plane vertex distance, or zero
	// when no plane could be fit at all.
	Deviation float64
}

func (e *ErrNotPlanar) Error() string {
	if e.Deviation == 0 {
		return "boundary does not define a plane"
	}

	return fmt.Sprintf("boundary deviates %g from the fitted plane", e.Deviation)
}

// ErrParameterSearch is returned by tessellation when a boundary sample
// point cannot be located on the face's surface.
type ErrParameterSearch struct {
	Point geom.Point3
}

func (e *ErrParameterSearch) Error() string {
	return fmt.Sprintf("surface parameter search failed for boundary point (%g, %g, %g)", e.Point.X, e.Point.Y, e.Point.Z)
}

// ErrUnknownKind is returned when decoding a geometry record whose kind
// tag names no known curve or surface kind.
type ErrUnknownKind struct {
	Kind string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown geometry kind %q", e.Kind)
}
