// Package surface provides the kernel's built-in parametric surface
// kinds: planes, spheres and cylinders.
//
// The kind set is deliberately closed. Faces own exactly one of these
// kinds, while the generic numeric algorithms accept any type with the
// evaluation capabilities, so external geometry providers (NURBS
// patches) can still be searched and tessellated without being part of
// the union.
package surface
