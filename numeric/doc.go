// Package numeric implements the kernel's generic numerical algorithms:
// grid presearch, Newton-Raphson parameter search for curves and
// surfaces, adaptive tolerance-driven tessellation, and the double
// projection iteration used to track surface/surface intersections.
//
// All algorithms operate against the small Curve/Surface capability
// interfaces and are agnostic to how evaluation is implemented. Failure
// is always an explicit ok=false result: a search that does not converge
// within its trial budget, or lands off the geometry, never panics.
//
// Determinism matters here. Presearch samples a regular grid, and the
// tessellation jitter is derived by hashing the interval's own endpoint
// bits, so identical inputs always produce identical outputs.
package numeric
