// Package topo implements the boundary-representation topology graph:
// vertices, edges, wires, faces, shells and solids.
//
// Every vertex, edge and face carries a process-unique identity distinct
// from its geometry payload. Entities are lightweight handles: copying
// one shares the identity and the payload cell, so a geometry edit made
// through any copy is visible through all of them. Graph equality is by
// identity, never by geometric value.
//
// Payload cells are guarded by a short-lived mutex held only across the
// single read-modify-write, never across a whole algorithm. Operations
// touching several entities must acquire in the fixed global order
// vertices, then edges, then faces to stay deadlock-free.
//
// Orientation is presentation only. Inverting an edge, wire or face
// flips how its boundary is walked and never touches shared geometry;
// inversion is involutive.
//
// CompressShell/ExtractShell are the persistence boundary: they project
// the identity graph onto flat index-deduplicated arrays and rebuild
// fresh identities from index equality.
package topo
