package curve

import "github.com/hupe1980/brepgo/geom"

// Curve2 is the closed union of 2D curve kinds, used as parameter-space
// curves riding on a surface (see PCurve).
type Curve2 interface {
	// At evaluates the position at parameter t.
	At(t float64) geom.Point2
	// Deriv evaluates the first derivative at t.
	Deriv(t float64) geom.Vec2
	// Deriv2 evaluates the analytic second derivative at t.
	Deriv2(t float64) geom.Vec2
	// ParamDomain returns the parameter domain.
	ParamDomain() geom.Domain
	// Inverted returns the curve traversed in the opposite direction.
	Inverted() Curve2

	isCurve2()
}

// Line2 is a straight 2D segment from P0 to P1 over [0, 1].
type Line2 struct {
	P0, P1 geom.Point2
}

// NewLine2 creates a straight 2D segment between two points.
func NewLine2(p0, p1 geom.Point2) Line2 {
	return Line2{P0: p0, P1: p1}
}

func (Line2) isCurve2() {}

// At evaluates the segment at t.
func (l Line2) At(t float64) geom.Point2 {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the constant direction P1-P0.
func (l Line2) Deriv(float64) geom.Vec2 {
	return l.P1.Sub(l.P0)
}

// Deriv2 returns the zero vector.
func (Line2) Deriv2(float64) geom.Vec2 {
	return geom.Vec2{}
}

// ParamDomain returns the closed interval [0, 1].
func (Line2) ParamDomain() geom.Domain {
	return geom.ClosedDomain(0, 1)
}

// Inverted returns the segment traversed from P1 to P0.
func (l Line2) Inverted() Curve2 {
	return Line2{P0: l.P1, P1: l.P0}
}

// Bezier2 is a 2D Bezier curve of arbitrary degree over [0, 1].
type Bezier2 struct {
	Ctrl []geom.Point2
}

// NewBezier2 creates a 2D Bezier curve from its control points.
func NewBezier2(ctrl []geom.Point2) Bezier2 {
	cp := make([]geom.Point2, len(ctrl))
	copy(cp, ctrl)
	return Bezier2{Ctrl: cp}
}

func (Bezier2) isCurve2() {}

// At evaluates the curve at t using de Casteljau's algorithm.
func (b Bezier2) At(t float64) geom.Point2 {
	tmp := make([]geom.Point2, len(b.Ctrl))
	copy(tmp, b.Ctrl)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], t)
		}
	}
	return tmp[0]
}

func (b Bezier2) hodograph() []geom.Vec2 {
	n := len(b.Ctrl) - 1
	der := make([]geom.Vec2, n)
	for i := 0; i < n; i++ {
		der[i] = b.Ctrl[i+1].Sub(b.Ctrl[i]).Mul(float64(n))
	}
	return der
}

func evalVec2Bezier(ctrl []geom.Vec2, t float64) geom.Vec2 {
	tmp := make([]geom.Vec2, len(ctrl))
	copy(tmp, ctrl)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			a, b := tmp[i], tmp[i+1]
			tmp[i] = geom.V2(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
		}
	}
	return tmp[0]
}

// Deriv evaluates the first derivative at t via the hodograph.
func (b Bezier2) Deriv(t float64) geom.Vec2 {
	if len(b.Ctrl) < 2 {
		return geom.Vec2{}
	}
	return evalVec2Bezier(b.hodograph(), t)
}

// Deriv2 evaluates the analytic second derivative at t.
func (b Bezier2) Deriv2(t float64) geom.Vec2 {
	n := len(b.Ctrl) - 1
	if n < 2 {
		return geom.Vec2{}
	}
	first := b.hodograph()
	second := make([]geom.Vec2, n-1)
	for i := 0; i < n-1; i++ {
		second[i] = first[i+1].Sub(first[i]).Mul(float64(n - 1))
	}
	return evalVec2Bezier(second, t)
}

// ParamDomain returns the closed interval [0, 1].
func (Bezier2) ParamDomain() geom.Domain {
	return geom.ClosedDomain(0, 1)
}

// Inverted returns the curve with reversed control points.
func (b Bezier2) Inverted() Curve2 {
	rev := make([]geom.Point2, len(b.Ctrl))
	for i, p := range b.Ctrl {
		rev[len(b.Ctrl)-1-i] = p
	}
	return Bezier2{Ctrl: rev}
}
