package brepgo

import (
	"math"

	"github.com/hupe1980/brepgo/curve"
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/tolerance"
	"github.com/hupe1980/brepgo/topo"
)

// Line creates a straight edge between two vertices.
func Line(v0, v1 Vertex) (Edge, error) {
	var c curve.Curve = curve.NewLine(v0.Point(), v1.Point())

	return topo.NewEdge(v0, v1, c)
}

// Arc creates a circular arc edge from v0 to v1 passing through the
// transit point. The transit must not be collinear with the endpoints.
func Arc(v0, v1 Vertex, transit geom.Point3) (Edge, error) {
	p0, p1 := v0.Point(), v1.Point()

	ab := transit.Sub(p0)
	ac := p1.Sub(p0)

	n := ab.Cross(ac)
	if tolerance.Zero2(n.LengthSq()) {
		return Edge{}, ErrCollinearArc
	}

	// Circumcenter of the three points, relative to p0.
	inv := 1 / (2 * n.LengthSq())
	rel := n.Cross(ab).Mul(ac.LengthSq() * inv).Add(ac.Cross(n).Mul(ab.LengthSq() * inv))
	center := p0.Add(rel)

	radius := rel.Length()
	xAxis := rel.Neg().Normalize()
	yAxis := n.Normalize().Cross(xAxis)

	// The frame is oriented so the sweep p0 -> transit -> p1 advances
	// counterclockwise; the end angle is therefore in (0, 2*pi).
	end := p1.Sub(center)
	angle := math.Atan2(end.Dot(yAxis), end.Dot(xAxis))
	if angle <= 0 {
		angle += 2 * math.Pi
	}

	var c curve.Curve = curve.Arc{
		Center: center,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Radius: radius,
		Angle:  angle,
	}

	return topo.NewEdge(v0, v1, c)
}

// BezierEdge creates a Bezier edge from v0 to v1 through the given
// interior control points.
func BezierEdge(v0, v1 Vertex, ctrls []geom.Point3) (Edge, error) {
	if len(ctrls) == 0 {
		return Edge{}, ErrTooFewControlPoints
	}

	pts := make([]geom.Point3, 0, len(ctrls)+2)
	pts = append(pts, v0.Point())
	pts = append(pts, ctrls...)
	pts = append(pts, v1.Point())

	var c curve.Curve = curve.NewBezier(pts)

	return topo.NewEdge(v0, v1, c)
}

// Polygon creates a closed wire of straight edges through the given
// corner points, in order.
func Polygon(points ...geom.Point3) (Wire, error) {
	if len(points) < 3 {
		return Wire{}, ErrTooFewPoints
	}

	vertices := make([]Vertex, len(points))
	for i, pt := range points {
		vertices[i] = topo.NewVertex(pt)
	}

	edges := make([]Edge, len(points))
	for i := range points {
		v0 := vertices[i]
		v1 := vertices[(i+1)%len(points)]

		e, err := Line(v0, v1)
		if err != nil {
			return Wire{}, err
		}

		edges[i] = e
	}

	return topo.NewWire(edges...)
}

// AttachPlane fits a plane through the boundary wires and creates the
// face they bound. The plane normal follows the winding of the first
// wire (Newell's method) and every boundary vertex must lie on the
// fitted plane within tolerance.
func AttachPlane(wires []Wire) (Face, error) {
	if len(wires) == 0 {
		return Face{}, topo.ErrNoBoundary
	}

	outer := wires[0].Vertices()
	if len(outer) < 3 {
		return Face{}, &ErrNotPlanar{}
	}

	var normal geom.Vec3
	var centroid geom.Vec3

	for i, v := range outer {
		p := v.Point()
		q := outer[(i+1)%len(outer)].Point()

		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)

		centroid = centroid.Add(p.Vec())
	}

	if normal.IsZero() {
		return Face{}, &ErrNotPlanar{}
	}

	normal = normal.Normalize()
	origin := geom.Origin3.Add(centroid.Mul(1 / float64(len(outer))))

	var deviation float64
	for _, w := range wires {
		for _, v := range w.Vertices() {
			d := math.Abs(v.Point().Sub(origin).Dot(normal))
			if d > deviation {
				deviation = d
			}
		}
	}

	if deviation > tolerance.Tolerance {
		return Face{}, &ErrNotPlanar{Deviation: deviation}
	}

	uAxis := planeAxis(normal)
	vAxis := normal.Cross(uAxis)

	var s surface.Surface = surface.NewPlane(origin, uAxis, vAxis)

	return topo.NewFace(wires, s)
}

// planeAxis picks a unit vector orthogonal to the unit normal, seeded
// from the coordinate axis the normal is least aligned with.
func planeAxis(normal geom.Vec3) geom.Vec3 {
	seed := geom.V3(1, 0, 0)
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		seed = geom.V3(0, 1, 0)
	}

	return normal.Cross(seed).Normalize()
}
