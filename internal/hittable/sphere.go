package hittable

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// Sphere is a sphere primitive. A negative Radius is a deliberate,
// documented trick for building a hollow dielectric shell: the outward
// normal (p-c)/r flips sign with r, inverting the surface's facing
// without a separate "inside-out" flag.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a sphere primitive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements Hittable.
func (s *Sphere) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LengthSquared()
	h := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-h - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-h + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	p := r.At(root)
	outward := p.Sub(s.Center).Div(s.Radius)

	hit := &material.HitRecord{T: root, P: p, Material: s.Material}
	hit.SetFaceNormal(r, outward)
	hit.U, hit.V = sphereUV(outward)

	return hit, true
}

// sphereUV computes the (u, v) parametrization of a point on the unit
// sphere given its outward normal.
func sphereUV(outward core.Vec3) (u, v float64) {
	phi := math.Atan2(outward.Z, outward.X)
	theta := math.Asin(outward.Y)
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

// BoundingBox implements Hittable.
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	r := math.Abs(s.Radius)
	rad := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Sub(rad), s.Center.Add(rad)), true
}

// PDFValue implements Hittable: the sphere subtends a cone of half-angle
// thetaMax from origin; sampling it uniformly over that solid angle
// gives pdf = 1 / (2*pi*(1-cos(thetaMax))).
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, hit := s.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1)); !hit {
		return 0
	}

	distSquared := s.Center.Sub(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSquared))
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random implements Hittable: draws a direction uniform over the cone
// the sphere subtends from origin.
func (s *Sphere) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	direction := s.Center.Sub(origin)
	distSquared := direction.LengthSquared()
	uvw := core.NewONB(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, distSquared, rng))
}
