package brepgo

import (
	"time"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/surface"
	"github.com/hupe1980/brepgo/tolerance"
)

// TraceIntersection marches a point sequence along the intersection
// curve of two surfaces. The seed is first double-projected onto both
// surfaces; each following point steps the given distance along the
// local intersection tangent and is double-projected back. Tracing
// produces at most n points.
//
// ok is true when all n points were found. It is false when the seed
// does not project onto both surfaces, or when the trace stalls early
// on tangential contact or a diverged projection; the points found so
// far are still returned.
func TraceIntersection(s0, s1 surface.Surface, seed geom.Point3, step float64, n int, optFns ...Option) ([]numeric.DoubleProjectResult, bool) {
	o := applyOptions(optFns)

	start := time.Now()
	out, ok := traceIntersection(s0, s1, seed, step, n, o.trials)

	o.logger.LogTrace(len(out), ok)
	o.metricsCollector.RecordTrace(len(out), time.Since(start), ok)

	return out, ok
}

func traceIntersection(s0, s1 surface.Surface, seed geom.Point3, step float64, n int, trials int) ([]numeric.DoubleProjectResult, bool) {
	if n <= 0 {
		return nil, true
	}

	uv0, ok := s0.SearchNearestParameter(seed, numeric.SurfaceParam{})
	if !ok {
		return nil, false
	}

	uv1, ok := s1.SearchNearestParameter(seed, numeric.SurfaceParam{})
	if !ok {
		return nil, false
	}

	dir, ok := intersectionTangent(s0, s1, uv0, uv1)
	if !ok {
		return nil, false
	}

	cur, ok := numeric.DoubleProject(s0, s1, seed, dir, uv0, uv1, trials)
	if !ok {
		return nil, false
	}

	out := make([]numeric.DoubleProjectResult, 0, n)
	out = append(out, cur)

	for len(out) < n {
		tangent, ok := intersectionTangent(s0, s1, cur.Param0, cur.Param1)
		if !ok {
			// Tangential contact; the marching direction is lost.
			return out, false
		}

		// Keep marching the same way along the curve.
		if tangent.Dot(dir) < 0 {
			tangent = tangent.Neg()
		}
		dir = tangent

		next, ok := numeric.DoubleProject(s0, s1, cur.Point.Add(tangent.Mul(step)), tangent, cur.Param0, cur.Param1, trials)
		if !ok {
			return out, false
		}

		cur = next
		out = append(out, cur)
	}

	return out, true
}

// intersectionTangent is the unit cross product of the surface normals,
// the direction of the intersection curve where the surfaces are
// transversal. ok=false reports tangential contact.
func intersectionTangent(s0, s1 surface.Surface, uv0, uv1 numeric.SurfaceParam) (geom.Vec3, bool) {
	cross := s0.Normal(uv0.U, uv0.V).Cross(s1.Normal(uv1.U, uv1.V))
	if tolerance.Zero2(cross.LengthSq()) {
		return geom.Vec3{}, false
	}

	return cross.Normalize(), true
}
