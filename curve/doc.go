// Package curve provides the kernel's built-in parametric curve kinds:
// straight segments, circular arcs, Bezier free-form curves,
// parameter-trimmed sub-curves, and surface-riding PCurves, plus the 2D
// kinds used as parameter-space curves.
//
// The Curve interface is a closed union: the kind set is fixed and a
// marker method keeps foreign implementations out. Open-ended geometry
// providers integrate through the numeric package's capability
// interfaces instead.
package curve
