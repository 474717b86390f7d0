// Package brepgo is an embedded boundary-representation modeling kernel.
//
// The root package is the modeling layer: it binds the generic topology
// graph of package topo to the concrete geometry kinds of packages curve
// and surface, and layers builders, transforms, tessellation and
// intersection tracking on top. The layers below stay independent:
//
//   - tolerance: the kernel-wide distance tolerance
//   - geom: points, vectors, transforms and parameter domains
//   - numeric: Newton searches, adaptive subdivision, double projection
//   - curve, surface: the closed geometry unions
//   - topo: the identity-based vertex/edge/wire/face/shell/solid graph
//   - codec, snapshot, blobstore: the persistence boundary
//
// All kernel operations are synchronous and return when their work is
// done; the only concurrency the kernel itself introduces is the
// per-face fan-out of Tessellator.TessellateShellParallel. Numeric
// no-answer outcomes are (value, ok) returns, structural violations are
// errors from fallible constructors, and domain misuse panics.
package brepgo
