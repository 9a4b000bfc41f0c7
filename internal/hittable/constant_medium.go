package hittable

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// ConstantMedium wraps a boundary shape with a homogeneous participating
// medium (smoke, fog): rays that enter the boundary have a probability of
// scattering before they exit, governed by Density.
type ConstantMedium struct {
	nonSampled

	Boundary Hittable
	Density  float64
	Phase    material.Material
}

// NewConstantMedium creates a constant-density volume bounded by
// boundary, with an isotropic phase function tinted by albedo.
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, Phase: material.NewIsotropic(albedo)}
}

// Hit implements Hittable: finds the ray's entry/exit through the
// boundary, then samples a free-flight distance; rays that fly past the
// exit point pass through untouched.
func (c *ConstantMedium) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rec1, ok := c.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}

	rec2, ok := c.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1))
	if !ok {
		return nil, false
	}

	t1 := math.Max(rec1.T, tMin)
	t2 := math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := -math.Log(rand.Float64()) / c.Density

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength

	return &material.HitRecord{
		T:         t,
		P:         r.At(t),
		Normal:    core.Vec3{X: 1, Y: 0, Z: 0}, // arbitrary: never used, the phase function is isotropic
		FrontFace: true,
		Material:  c.Phase,
	}, true
}

// BoundingBox implements Hittable: same as the boundary shape's.
func (c *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return c.Boundary.BoundingBox(t0, t1)
}
