package geom

import "math"

// Matrix represents a 3D affine transformation as a 4x4 matrix in
// row-major order. The last row is always (0, 0, 0, 1) for affine
// transforms produced by the constructors below.
type Matrix struct {
	M [16]float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{M: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Matrix {
	return Matrix{M: [16]float64{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}}
}

// Scale creates a uniform scaling matrix about the origin.
func Scale(s float64) Matrix {
	return Matrix{M: [16]float64{
		s, 0, 0, 0,
		0, s, 0, 0,
		0, 0, s, 0,
		0, 0, 0, 1,
	}}
}

// Rotate creates a rotation matrix of angle radians about the given axis
// through the origin (Rodrigues' rotation formula). The axis is normalized
// internally.
func Rotate(axis Vec3, angle float64) Matrix {
	a := axis.Normalize()
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	return Matrix{M: [16]float64{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y, 0,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X, 0,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c, 0,
		0, 0, 0, 1,
	}}
}

// Mul returns the matrix product m * n (n applied first).
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.M[i*4+k] * n.M[k*4+j]
			}
			out.M[i*4+j] = sum
		}
	}
	return out
}

// TransformPoint applies the transform to a position (with translation).
func (m Matrix) TransformPoint(p Point3) Point3 {
	return Point3{
		X: m.M[0]*p.X + m.M[1]*p.Y + m.M[2]*p.Z + m.M[3],
		Y: m.M[4]*p.X + m.M[5]*p.Y + m.M[6]*p.Z + m.M[7],
		Z: m.M[8]*p.X + m.M[9]*p.Y + m.M[10]*p.Z + m.M[11],
	}
}

// TransformVec applies the linear part of the transform to a direction
// (without translation).
func (m Matrix) TransformVec(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0]*v.X + m.M[1]*v.Y + m.M[2]*v.Z,
		Y: m.M[4]*v.X + m.M[5]*v.Y + m.M[6]*v.Z,
		Z: m.M[8]*v.X + m.M[9]*v.Y + m.M[10]*v.Z,
	}
}

// Det returns the determinant of the 3x3 linear part.
func (m Matrix) Det() float64 {
	return m.M[0]*(m.M[5]*m.M[10]-m.M[6]*m.M[9]) -
		m.M[1]*(m.M[4]*m.M[10]-m.M[6]*m.M[8]) +
		m.M[2]*(m.M[4]*m.M[9]-m.M[5]*m.M[8])
}

// Inverse returns the inverse transform.
// Returns the identity and false if the matrix is singular.
func (m Matrix) Inverse() (Matrix, bool) {
	det := m.Det()
	if det == 0 {
		return Identity(), false
	}
	inv := 1 / det

	// Inverse of the 3x3 linear part (adjugate / det).
	var r Matrix
	r.M[0] = (m.M[5]*m.M[10] - m.M[6]*m.M[9]) * inv
	r.M[1] = (m.M[2]*m.M[9] - m.M[1]*m.M[10]) * inv
	r.M[2] = (m.M[1]*m.M[6] - m.M[2]*m.M[5]) * inv
	r.M[4] = (m.M[6]*m.M[8] - m.M[4]*m.M[10]) * inv
	r.M[5] = (m.M[0]*m.M[10] - m.M[2]*m.M[8]) * inv
	r.M[6] = (m.M[2]*m.M[4] - m.M[0]*m.M[6]) * inv
	r.M[8] = (m.M[4]*m.M[9] - m.M[5]*m.M[8]) * inv
	r.M[9] = (m.M[1]*m.M[8] - m.M[0]*m.M[9]) * inv
	r.M[10] = (m.M[0]*m.M[5] - m.M[1]*m.M[4]) * inv

	// Translation: -R * t.
	tx, ty, tz := m.M[3], m.M[7], m.M[11]
	r.M[3] = -(r.M[0]*tx + r.M[1]*ty + r.M[2]*tz)
	r.M[7] = -(r.M[4]*tx + r.M[5]*ty + r.M[6]*tz)
	r.M[11] = -(r.M[8]*tx + r.M[9]*ty + r.M[10]*tz)

	r.M[15] = 1
	return r, true
}
