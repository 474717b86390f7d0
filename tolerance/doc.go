// Package tolerance defines the single numeric threshold below which two
// geometric quantities are considered equal.
//
// Every equality decision in the kernel (endpoint matching, convergence
// checks, tessellation deviation) goes through Near/Near2 so that "near
// enough" means the same thing everywhere.
package tolerance
