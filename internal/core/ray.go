package core

import "math"

// Infinity is the largest finite search bound used when intersecting a
// ray with no a priori far-plane limit.
const Infinity = math.MaxFloat64

// DegreesToRadians converts an angle in degrees to one in radians.
const DegreesToRadians = math.Pi / 180

// Ray is a half-line: origin, direction, and the shutter time it was cast
// at (used for motion blur). Direction is not required to be normalized;
// callers that need the parametrization in world units normalize at use
// sites.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay creates a ray at time 0.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAtTime creates a ray stamped with an explicit shutter time.
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
