package core

import (
	"math"
	"math/rand"
)

// RandomInUnitDisk returns a point uniform over the unit disk in the XY
// plane, used for thin-lens defocus-blur sampling.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitSphere returns a point uniform over the solid unit ball,
// used to fuzz metal reflections.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a point uniform over the unit sphere's surface,
// used by the isotropic phase function.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Unit()
}

// randomCosineDirectionLocal draws a direction from the cosine-weighted
// hemisphere around local +Z; ONB.Local rotates it to world space around
// an arbitrary normal.
func randomCosineDirectionLocal(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	phi := 2 * math.Pi * r1
	z := math.Sqrt(1 - r2)
	sqrtR2 := math.Sqrt(r2)
	x := math.Cos(phi) * sqrtR2
	y := math.Sin(phi) * sqrtR2

	return Vec3{x, y, z}
}

// RandomCosineDirection draws a direction from the cosine-weighted
// hemisphere around the given normal.
func RandomCosineDirection(normal Vec3, rng *rand.Rand) Vec3 {
	return NewONB(normal).Local(randomCosineDirectionLocal(rng))
}

// RandomToSphere draws a direction, from a point at distance dist from a
// sphere of the given radius, uniform over the solid angle the sphere
// subtends (importance sampling for direct light sampling of a sphere
// light). The returned direction is in the local frame of an ONB built
// around the vector from the point to the sphere's center; callers
// transform it to world space themselves.
func RandomToSphere(radius, distSquared float64, rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	cosThetaMax := math.Sqrt(1 - radius*radius/distSquared)
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sinTheta := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sinTheta
	y := math.Sin(phi) * sinTheta

	return Vec3{x, y, z}
}
