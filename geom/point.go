package geom

import (
	"math"

	"github.com/hupe1980/brepgo/tolerance"
)

// Point2 represents a 2D position.
type Point2 struct {
	X, Y float64
}

// Pt2 is a convenience function to create a Point2.
func Pt2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the point translated by the vector v.
func (p Point2) Add(v Vec2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement vector from q to p.
func (p Point2) Sub(q Point2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec returns the point as a displacement vector from the origin.
func (p Point2) Vec() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point2) Lerp(q Point2, t float64) Point2 {
	return Point2{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Distance returns the distance between two points.
func (p Point2) Distance(q Point2) float64 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two points.
func (p Point2) DistanceSq(q Point2) float64 {
	return p.Sub(q).LengthSq()
}

// Near reports whether two points coincide within the modeling tolerance.
func (p Point2) Near(q Point2) bool {
	return p.DistanceSq(q) < tolerance.Tolerance2
}

// Point3 represents a 3D position.
type Point3 struct {
	X, Y, Z float64
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the point translated by the vector v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Sub returns the displacement vector from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Vec returns the point as a displacement vector from the origin.
func (p Point3) Vec() Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point3) Lerp(q Point3, t float64) Point3 {
	return Point3{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// DistanceSq returns the squared distance between two points.
func (p Point3) DistanceSq(q Point3) float64 {
	return p.Sub(q).LengthSq()
}

// Near reports whether two points coincide within the modeling tolerance.
func (p Point3) Near(q Point3) bool {
	return p.DistanceSq(q) < tolerance.Tolerance2
}

// Midpoint returns the midpoint of p and q.
func (p Point3) Midpoint(q Point3) Point3 {
	return p.Lerp(q, 0.5)
}

// Origin3 is the 3D origin.
var Origin3 = Point3{}

// IsFinite reports whether all coordinates are finite.
func (p Point3) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0) &&
		!math.IsNaN(p.Z) && !math.IsInf(p.Z, 0)
}
