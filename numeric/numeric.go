package numeric

import "github.com/hupe1980/brepgo/geom"

// Curve is the minimal capability a parametric curve must provide for the
// generic search and tessellation algorithms. Any type with analytic
// position and first/second derivatives satisfies it implicitly; the
// algorithms never downcast.
type Curve interface {
	// At evaluates the position at parameter t.
	At(t float64) geom.Point3
	// Deriv evaluates the first derivative at t.
	Deriv(t float64) geom.Vec3
	// Deriv2 evaluates the analytic second derivative at t.
	// Finite differences are not good enough for Newton convergence.
	Deriv2(t float64) geom.Vec3
}

// Surface is the minimal capability a parametric surface must provide.
type Surface interface {
	// At evaluates the position at parameters (u, v).
	At(u, v float64) geom.Point3
	// DerivU evaluates the first partial derivative in u.
	DerivU(u, v float64) geom.Vec3
	// DerivV evaluates the first partial derivative in v.
	DerivV(u, v float64) geom.Vec3
	// DerivUU evaluates the analytic second partial in u.
	DerivUU(u, v float64) geom.Vec3
	// DerivUV evaluates the analytic mixed second partial.
	DerivUV(u, v float64) geom.Vec3
	// DerivVV evaluates the analytic second partial in v.
	DerivVV(u, v float64) geom.Vec3
}

// DefaultTrials is the default Newton iteration budget. Exhausting it is
// reported as an explicit no-result, never an error or panic.
const DefaultTrials = 100

// PresearchDivision is the default grid resolution for Presearch.
const PresearchDivision = 50

// SurfaceParam is a (u, v) parameter pair on a surface.
type SurfaceParam struct {
	U, V float64
}
