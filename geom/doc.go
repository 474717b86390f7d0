// Package geom provides the value types the kernel is built on: 2D/3D
// points and vectors, 3D affine transforms, and parameter domains.
//
// Points and vectors are distinct types on purpose: a Point3 is a
// position, a Vec3 a direction and magnitude. The distinction keeps
// curve and surface code honest about what transforms under translation.
package geom
