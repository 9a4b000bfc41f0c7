// Package hittable implements the intersection stack: the Hittable
// contract, its geometric primitives, decorators, and the flat list
// that feeds the BVH.
package hittable

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// Hittable is anything a ray can intersect. PDFValue and Random default
// to 0 and an arbitrary unit vector for shapes that are never
// importance-sampled as lights; primitives meant to be explicit light
// sources override them.
type Hittable interface {
	Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	BoundingBox(t0, t1 float64) (core.AABB, bool)
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// nonSampled is embedded by shapes that are never used as explicit
// lights (MovingSphere, Box, ConstantMedium), giving them the default
// PDFValue/Random behavior without repeating it on every type.
type nonSampled struct{}

func (nonSampled) PDFValue(origin, direction core.Vec3) float64 { return 0 }

func (nonSampled) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.Vec3{X: 1, Y: 0, Z: 0}
}
