package curve

import (
	"github.com/hupe1980/brepgo/geom"
	"github.com/hupe1980/brepgo/numeric"
	"github.com/hupe1980/brepgo/surface"
)

// PCurve is a surface-riding curve: a 2D curve in the parameter space of
// a surface, evaluated by composition. It is how trimming curves and
// surface seams keep exact contact with their carrier surface.
type PCurve struct {
	C Curve2
	S surface.Surface
}

// NewPCurve creates a surface-riding curve from a parameter-space curve
// and its carrier surface.
func NewPCurve(c Curve2, s surface.Surface) PCurve {
	return PCurve{C: c, S: s}
}

func (PCurve) isCurve() {}

// At evaluates the composition S(C(t)).
func (p PCurve) At(t float64) geom.Point3 {
	uv := p.C.At(t)
	return p.S.At(uv.X, uv.Y)
}

// Deriv evaluates the first derivative by the chain rule.
func (p PCurve) Deriv(t float64) geom.Vec3 {
	uv := p.C.At(t)
	d := p.C.Deriv(t)
	return p.S.DerivU(uv.X, uv.Y).Mul(d.X).Add(p.S.DerivV(uv.X, uv.Y).Mul(d.Y))
}

// Deriv2 evaluates the analytic second derivative by the chain rule.
func (p PCurve) Deriv2(t float64) geom.Vec3 {
	uv := p.C.At(t)
	d := p.C.Deriv(t)
	dd := p.C.Deriv2(t)
	return p.S.DerivUU(uv.X, uv.Y).Mul(d.X * d.X).
		Add(p.S.DerivUV(uv.X, uv.Y).Mul(2 * d.X * d.Y)).
		Add(p.S.DerivVV(uv.X, uv.Y).Mul(d.Y * d.Y)).
		Add(p.S.DerivU(uv.X, uv.Y).Mul(dd.X)).
		Add(p.S.DerivV(uv.X, uv.Y).Mul(dd.Y))
}

// ParamDomain returns the parameter-space curve's domain.
func (p PCurve) ParamDomain() geom.Domain {
	return p.C.ParamDomain()
}

// Period reports that a surface-riding curve is not periodic.
func (PCurve) Period() (float64, bool) {
	return 0, false
}

// Endpoints evaluates the composition at the domain bounds.
func (p PCurve) Endpoints() (geom.Point3, geom.Point3) {
	t0, t1 := p.ParamDomain().MustRange()
	return p.At(t0), p.At(t1)
}

// Inverted returns the composition with the inverted parameter curve.
func (p PCurve) Inverted() Curve {
	return PCurve{C: p.C.Inverted(), S: p.S}
}

// Transformed maps the carrier surface; the parameter curve is
// coordinate-free and stays as-is.
func (p PCurve) Transformed(m geom.Matrix) Curve {
	return PCurve{C: p.C, S: p.S.Transformed(m)}
}

// SearchNearestParameter refines the hint by Newton iteration. A hint
// outside the domain is replaced by a grid presearch.
func (p PCurve) SearchNearestParameter(pt geom.Point3, hint float64) (float64, bool) {
	if !p.ParamDomain().Contains(hint) {
		hint = presearchHint(p, p.ParamDomain(), pt)
	}
	return numeric.SearchNearestParameterCurve(p, pt, hint, 0)
}

// SearchParameter locates the exact parameter of pt on the composition.
func (p PCurve) SearchParameter(pt geom.Point3, hint float64) (float64, bool) {
	if !p.ParamDomain().Contains(hint) {
		hint = presearchHint(p, p.ParamDomain(), pt)
	}
	return numeric.SearchParameterCurve(p, pt, hint, 0)
}

// Subdivide returns the adaptive tessellation parameters over the
// parameter curve's domain.
func (p PCurve) Subdivide(tol float64) []float64 {
	t0, t1 := p.ParamDomain().MustRange()
	return numeric.SubdivideCurve(p, t0, t1, tol)
}
