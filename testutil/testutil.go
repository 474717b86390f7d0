// Package testutil provides deterministic random fixtures for tests.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/brepgo/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Range returns a pseudo-random number in [minVal,maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Param returns a pseudo-random curve parameter in [0,1].
func (r *RNG) Param() float64 {
	return r.Float64()
}

// PointInBox returns a pseudo-random point in the axis-aligned box
// [lo, hi] per coordinate.
func (r *RNG) PointInBox(lo, hi float64) geom.Point3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := hi - lo
	return geom.Pt3(
		lo+r.rand.Float64()*span,
		lo+r.rand.Float64()*span,
		lo+r.rand.Float64()*span,
	)
}

// PointsInBox returns n pseudo-random points in the box [lo, hi].
func (r *RNG) PointsInBox(n int, lo, hi float64) []geom.Point3 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := hi - lo
	pts := make([]geom.Point3, n)
	for i := range pts {
		pts[i] = geom.Pt3(
			lo+r.rand.Float64()*span,
			lo+r.rand.Float64()*span,
			lo+r.rand.Float64()*span,
		)
	}
	return pts
}

// UnitVec returns a pseudo-random unit vector, uniformly distributed on
// the sphere. Gaussian coordinates normalized.
func (r *RNG) UnitVec() geom.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		v := geom.V3(r.rand.NormFloat64(), r.rand.NormFloat64(), r.rand.NormFloat64())
		n := v.Length()
		if n > 1e-12 {
			return v.Mul(1 / n)
		}
	}
}

// PointOnSphere returns a pseudo-random point on the sphere with the
// given center and radius.
func (r *RNG) PointOnSphere(center geom.Point3, radius float64) geom.Point3 {
	return center.Add(r.UnitVec().Mul(radius))
}

// Perturbed returns p displaced by a pseudo-random offset of at most
// maxDist.
func (r *RNG) Perturbed(p geom.Point3, maxDist float64) geom.Point3 {
	d := r.Float64() * maxDist
	return p.Add(r.UnitVec().Mul(d))
}

// Angle returns a pseudo-random angle in [0, 2π).
func (r *RNG) Angle() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() * 2 * math.Pi
}
