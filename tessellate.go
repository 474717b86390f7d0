package brepgo

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/topo"
)

// DefaultMeshTolerance is the default chord tolerance of tessellation.
// It is a sampling density knob, far coarser than the kernel's
// coincidence tolerance.
const DefaultMeshTolerance = 1e-3

// BoundaryPolyline is a sampled boundary loop of a face: positions on
// the boundary curves paired with their parameters on the face surface.
// The loop is explicitly closed; the last sample repeats the first.
type BoundaryPolyline struct {
	Points []geom.Point3
	UV     []numeric.SurfaceParam
}

// SurfaceGrid is an adaptive sample grid over a face's surface,
// spanning the UV bounding box of its boundary loops. Points[i][j] is
// the surface evaluated at (U[i], V[j]).
type SurfaceGrid struct {
	U, V   []float64
	Points [][]geom.Point3
}

// FaceMesh is the tessellation of one face: its boundary polylines in
// effective orientation, outer loop first, plus the interior sample
// grid. Consumers triangulate or rasterize it themselves; the kernel
// emits parameters and sample points only.
type FaceMesh struct {
	FaceID     topo.ID
	Boundaries []BoundaryPolyline
	Grid       SurfaceGrid
}

// ShellMesh is the tessellation of a shell, one mesh per face in shell
// order.
type ShellMesh struct {
	Faces []FaceMesh
}

// Tessellator samples faces and shells into meshes.
type Tessellator struct {
	tol     float64
	workers int
	logger  *Logger
	metrics MetricsCollector
}

// NewTessellator creates a tessellator.
func NewTessellator(optFns ...Option) *Tessellator {
	o := applyOptions(optFns)

	return &Tessellator{
		tol:     o.tolerance,
		workers: o.workers,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// TessellateFace samples a single face.
func (t *Tessellator) TessellateFace(f Face) (FaceMesh, error) {
	start := time.Now()

	mesh, err := t.tessellateFace(f)

	t.logger.LogTessellate(1, err)
	t.metrics.RecordTessellation(1, time.Since(start), err)

	return mesh, err
}

// TessellateShell samples every face of the shell sequentially.
func (t *Tessellator) TessellateShell(s *Shell) (ShellMesh, error) {
	start := time.Now()

	meshes := make([]FaceMesh, s.Len())

	var err error
	for i, f := range s.Faces() {
		meshes[i], err = t.tessellateFace(f)
		if err != nil {
			break
		}
	}

	t.logger.LogTessellate(s.Len(), err)
	t.metrics.RecordTessellation(s.Len(), time.Since(start), err)

	if err != nil {
		return ShellMesh{}, err
	}

	return ShellMesh{Faces: meshes}, nil
}

// TessellateShellParallel samples the shell's faces concurrently, at
// most workers faces at a time. Each face is still sampled
// synchronously, so the result is identical to TessellateShell.
func (t *Tessellator) TessellateShellParallel(ctx context.Context, s *Shell) (ShellMesh, error) {
	start := time.Now()

	meshes := make([]FaceMesh, s.Len())

	g, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(t.workers))

	for i, f := range s.Faces() {
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			mesh, err := t.tessellateFace(f)
			if err != nil {
				return err
			}

			meshes[i] = mesh

			return nil
		})
	}

	err := g.Wait()

	t.logger.LogTessellate(s.Len(), err)
	t.metrics.RecordTessellation(s.Len(), time.Since(start), err)

	if err != nil {
		return ShellMesh{}, err
	}

	return ShellMesh{Faces: meshes}, nil
}

func (t *Tessellator) tessellateFace(f Face) (FaceMesh, error) {
	surf := f.Surface()

	uvMin := numeric.SurfaceParam{U: math.Inf(1), V: math.Inf(1)}
	uvMax := numeric.SurfaceParam{U: math.Inf(-1), V: math.Inf(-1)}

	boundaries := f.Boundaries()
	polylines := make([]BoundaryPolyline, len(boundaries))

	for bi, w := range boundaries {
		var (
			pts  []geom.Point3
			uvs  []numeric.SurfaceParam
			hint numeric.SurfaceParam
		)

		first := true

		for _, e := range w.Edges() {
			c := e.Curve()

			params := c.Subdivide(t.tol)
			if !e.Orientation() {
				reverse(params)
			}

			for i, tc := range params {
				// Consecutive edges share their junction vertex;
				// sample it once.
				if !first && i == 0 {
					continue
				}

				p := c.At(tc)

				var (
					uv numeric.SurfaceParam
					ok bool
				)
				if first {
					// No hint yet; fall back to the global search.
					uv, ok = surf.SearchNearestParameter(p, hint)
				} else {
					uv, ok = surf.SearchParameter(p, hint)
				}
				if !ok {
					return FaceMesh{}, &ErrParameterSearch{Point: p}
				}

				hint = uv
				first = false

				pts = append(pts, p)
				uvs = append(uvs, uv)

				uvMin.U = math.Min(uvMin.U, uv.U)
				uvMin.V = math.Min(uvMin.V, uv.V)
				uvMax.U = math.Max(uvMax.U, uv.U)
				uvMax.V = math.Max(uvMax.V, uv.V)
			}
		}

		polylines[bi] = BoundaryPolyline{Points: pts, UV: uvs}
	}

	us, vs := numeric.SubdivideSurface(surf, uvMin.U, uvMax.U, uvMin.V, uvMax.V, t.tol)

	grid := make([][]geom.Point3, len(us))
	for i, u := range us {
		row := make([]geom.Point3, len(vs))
		for j, v := range vs {
			row[j] = surf.At(u, v)
		}
		grid[i] = row
	}

	return FaceMesh{
		FaceID:     f.ID(),
		Boundaries: polylines,
		Grid:       SurfaceGrid{U: us, V: vs, Points: grid},
	}, nil
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
