package hittable

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// List is a flat collection of Hittables, used both as the catch-all
// "everything intersectable" world before BVH construction and as the
// "lights" collection handed to HittablePDF for next-event estimation.
type List struct {
	Objects []Hittable
}

// NewList creates a list from the given objects.
func NewList(objects ...Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list.
func (l *List) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
}

// Hit implements Hittable: the closest intersection among all members.
func (l *List) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if hit, ok := obj.Hit(r, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox implements Hittable: the union of every member's box. A
// member with no bounding box (an unbounded plane, say) is a
// scene-construction error the caller should have excluded from any
// list destined for the BVH.
func (l *List) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	box := core.EmptyAABB()
	for _, obj := range l.Objects {
		objBox, ok := obj.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		box = core.Union(box, objBox)
	}
	return box, true
}

// PDFValue implements Hittable: the average of each member's PDF value,
// so a lights list behaves as a single mixture light for next-event
// estimation.
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, obj := range l.Objects {
		sum += weight * obj.PDFValue(origin, direction)
	}
	return sum
}

// Random implements Hittable: samples a uniformly-chosen member.
func (l *List) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.Vec3{X: 1, Y: 0, Z: 0}
	}
	return l.Objects[rng.Intn(len(l.Objects))].Random(origin, rng)
}
