package hittable

import (
	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// Box is a cuboid built from six axis-aligned rectangles, two per plane.
type Box struct {
	nonSampled

	Min, Max core.Vec3
	sides    *List
}

// NewBox creates an axis-aligned cuboid between corners min and max.
func NewBox(min, max core.Vec3, mat material.Material) *Box {
	sides := NewList(
		NewRect(PlaneXY, min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewRect(PlaneXY, min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewRect(PlaneXZ, min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewRect(PlaneXZ, min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewRect(PlaneYZ, min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewRect(PlaneYZ, min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Box{Min: min, Max: max, sides: sides}
}

// Hit implements Hittable by forwarding to the embedded rectangle list.
func (b *Box) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(r, tMin, tMax)
}

// BoundingBox implements Hittable.
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
