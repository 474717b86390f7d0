package brepgo

import (
	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/topo"
)

// Translated returns a deep copy of the shell moved by offset. The copy
// carries fresh identities; vertices and edges shared between faces of
// the source stay shared in the copy.
func Translated(s *Shell, offset geom.Vec3) (Shell, error) {
	return TransformedCopy(s, geom.Translate(offset))
}

// Rotated returns a deep copy of the shell rotated by angle radians
// around the axis through origin.
func Rotated(s *Shell, origin geom.Point3, axis geom.Vec3, angle float64) (Shell, error) {
	return TransformedCopy(s, aboutPoint(origin, geom.Rotate(axis, angle)))
}

// Scaled returns a deep copy of the shell scaled uniformly about origin.
func Scaled(s *Shell, origin geom.Point3, factor float64) (Shell, error) {
	return TransformedCopy(s, aboutPoint(origin, geom.Scale(factor)))
}

// aboutPoint conjugates an origin-fixed transform to fix p instead.
func aboutPoint(p geom.Point3, m geom.Matrix) geom.Matrix {
	return geom.Translate(p.Vec()).Mul(m).Mul(geom.Translate(p.Vec().Neg()))
}

// TransformedCopy returns a deep copy of the shell mapped through the
// affine transform. Vertex and edge sharing is preserved through
// identity maps keyed by the source entities.
func TransformedCopy(s *Shell, m geom.Matrix) (Shell, error) {
	vmap := make(map[topo.ID]Vertex)
	emap := make(map[topo.ID]Edge)

	mapVertex := func(v Vertex) Vertex {
		if nv, ok := vmap[v.ID()]; ok {
			return nv
		}
		nv := topo.NewVertex(m.TransformPoint(v.Point()))
		vmap[v.ID()] = nv
		return nv
	}

	mapEdge := func(e Edge) Edge {
		abs := e.Absolute()
		ne, ok := emap[abs.ID()]
		if !ok {
			ne = topo.NewEdgeUnchecked(
				mapVertex(abs.AbsoluteFront()),
				mapVertex(abs.AbsoluteBack()),
				abs.Curve().Transformed(m),
			)
			emap[abs.ID()] = ne
		}
		if !e.Orientation() {
			return ne.Inverted()
		}
		return ne
	}

	faces := make([]Face, 0, s.Len())

	for _, f := range s.Faces() {
		boundaries := f.AbsoluteBoundaries()

		wires := make([]Wire, len(boundaries))
		for i, w := range boundaries {
			srcEdges := w.Edges()

			edges := make([]Edge, len(srcEdges))
			for j, e := range srcEdges {
				edges[j] = mapEdge(e)
			}

			nw, err := topo.NewWire(edges...)
			if err != nil {
				return Shell{}, err
			}

			wires[i] = nw
		}

		nf, err := topo.NewFace(wires, f.Surface().Transformed(m))
		if err != nil {
			return Shell{}, err
		}

		if !f.Orientation() {
			nf = nf.Inverted()
		}

		faces = append(faces, nf)
	}

	return topo.NewShell(faces...), nil
}

// TransformShell maps the shell through the affine transform in place,
// mutating the shared geometry payloads of its vertices, edges and
// faces. Entities shared with other shells move with them.
//
// Payload locks are taken one entity at a time, vertices first, then
// edges, then faces; no lock is held across entities.
func TransformShell(s *Shell, m geom.Matrix) {
	for _, v := range s.Vertices() {
		v.UpdatePoint(func(pt geom.Point3) geom.Point3 {
			return m.TransformPoint(pt)
		})
	}

	for _, e := range s.Edges() {
		e.UpdateCurve(func(c curve.Curve) curve.Curve {
			return c.Transformed(m)
		})
	}

	for _, f := range s.Faces() {
		f.UpdateSurface(func(sf surface.Surface) surface.Surface {
			return sf.Transformed(m)
		})
	}
}
