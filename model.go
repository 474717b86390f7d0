package brepgo

import (
	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/topo"
)

// The modeling layer fixes the generic topology graph to the kernel's
// geometry unions: 3D points carry vertices, the curve union carries
// edges and the surface union carries faces.
type (
	// Vertex is a topological vertex carrying a 3D point.
	Vertex = topo.Vertex[geom.Point3]

	// Edge is a topological edge carrying a bounded 3D curve.
	Edge = topo.Edge[geom.Point3, curve.Curve]

	// Wire is a connected sequence of edges.
	Wire = topo.Wire[geom.Point3, curve.Curve]

	// Face is a surface patch bounded by closed wires.
	Face = topo.Face[geom.Point3, curve.Curve, surface.Surface]

	// Shell is a collection of faces.
	Shell = topo.Shell[geom.Point3, curve.Curve, surface.Surface]

	// Solid is a volume bounded by closed oriented shells.
	Solid = topo.Solid[geom.Point3, curve.Curve, surface.Surface]

	// CompressedShell is the index-based serializable form of a Shell.
	CompressedShell = topo.CompressedShell[geom.Point3, curve.Curve, surface.Surface]

	// CompressedSolid is the index-based serializable form of a Solid.
	CompressedSolid = topo.CompressedSolid[geom.Point3, curve.Curve, surface.Surface]
)

// NewVertex creates a vertex at the given point.
func NewVertex(pt geom.Point3) Vertex {
	return topo.NewVertex(pt)
}

// WireFromEdges assembles edges into a wire. The edges must connect
// head to tail by vertex identity.
func WireFromEdges(edges ...Edge) (Wire, error) {
	return topo.NewWire(edges...)
}

// ShellFromFaces assembles faces into a shell.
func ShellFromFaces(faces ...Face) Shell {
	return topo.NewShell(faces...)
}

// SolidFromShells assembles closed oriented shells into a solid.
func SolidFromShells(shells ...Shell) (Solid, error) {
	return topo.NewSolid(shells)
}

// CompressShell converts a shell into its index-based form.
func CompressShell(s *Shell) CompressedShell {
	return topo.CompressShell(s)
}

// ExtractShell rebuilds a shell, with fresh identities, from its
// index-based form.
func ExtractShell(cs CompressedShell) (Shell, error) {
	return topo.ExtractShell(cs)
}

// CompressSolid converts a solid into its index-based form.
func CompressSolid(s *Solid) CompressedSolid {
	return topo.CompressSolid(s)
}

// ExtractSolid rebuilds a solid, with fresh identities, from its
// index-based form.
func ExtractSolid(cs CompressedSolid) (Solid, error) {
	return topo.ExtractSolid(cs)
}
