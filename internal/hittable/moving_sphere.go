package hittable

import (
	"math"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// MovingSphere is a sphere whose center interpolates linearly between
// Center0 at Time0 and Center1 at Time1, used for motion blur.
type MovingSphere struct {
	nonSampled

	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a moving sphere primitive.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// centerAt returns the sphere's center at ray time t.
func (s *MovingSphere) centerAt(t float64) core.Vec3 {
	frac := (t - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(frac))
}

// Hit implements Hittable.
func (s *MovingSphere) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.centerAt(r.Time)

	oc := r.Origin.Sub(center)
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
	outward := p.Sub(center).Div(s.Radius)

	hit := &material.HitRecord{T: root, P: p, Material: s.Material}
	hit.SetFaceNormal(r, outward)
	hit.U, hit.V = sphereUV(outward)

	return hit, true
}

// BoundingBox implements Hittable: the union of the box at Time0 and at
// Time1.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	rad := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.centerAt(t0).Sub(rad), s.centerAt(t0).Add(rad))
	box1 := core.NewAABB(s.centerAt(t1).Sub(rad), s.centerAt(t1).Add(rad))
	return core.Union(box0, box1), true
}
