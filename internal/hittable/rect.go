package hittable

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// Plane names which two axes an axis-aligned rectangle spans; the third
// axis is the orthogonal one the rectangle sits at offset K on.
type Plane int

const (
	PlaneXY Plane = iota // spans X, Y; orthogonal axis is Z
	PlaneXZ              // spans X, Z; orthogonal axis is Y
	PlaneYZ              // spans Y, Z; orthogonal axis is X
)

func (p Plane) axes() (a, b, ortho int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default: // PlaneYZ
		return 1, 2, 0
	}
}

// rectThickness pads a rectangle's infinitely-thin bounding box on its
// orthogonal axis so the BVH never has to reason about a zero-volume box.
const rectThickness = 1e-4

// Rect is an axis-aligned rectangle spanning (a0,a1)x(b0,b1) on Plane at
// offset K on the orthogonal axis.
type Rect struct {
	Plane          Plane
	A0, A1, B0, B1 float64
	K              float64
	Material       material.Material
}

// NewRect creates an axis-aligned rectangle primitive.
func NewRect(plane Plane, a0, a1, b0, b1, k float64, mat material.Material) *Rect {
	return &Rect{Plane: plane, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: mat}
}

// Hit implements Hittable.
func (rect *Rect) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, orthoAxis := rect.Plane.axes()

	orthoDir := core.Component(r.Direction, orthoAxis)
	if orthoDir == 0 {
		return nil, false
	}

	t := (rect.K - core.Component(r.Origin, orthoAxis)) / orthoDir
	if t <= tMin || t >= tMax {
		return nil, false
	}

	a := core.Component(r.Origin, aAxis) + t*core.Component(r.Direction, aAxis)
	b := core.Component(r.Origin, bAxis) + t*core.Component(r.Direction, bAxis)
	if a < rect.A0 || a > rect.A1 || b < rect.B0 || b > rect.B1 {
		return nil, false
	}

	u := (a - rect.A0) / (rect.A1 - rect.A0)
	v := (b - rect.B0) / (rect.B1 - rect.B0)

	outward := core.WithComponent(core.Vec3{}, orthoAxis, 1)
	p := r.At(t)

	hit := &material.HitRecord{T: t, P: p, Material: rect.Material, U: u, V: v}
	hit.SetFaceNormal(r, outward)

	return hit, true
}

// BoundingBox implements Hittable.
func (rect *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	var min, max core.Vec3
	switch rect.Plane {
	case PlaneXY:
		min, max = core.NewVec3(rect.A0, rect.B0, rect.K), core.NewVec3(rect.A1, rect.B1, rect.K)
	case PlaneXZ:
		min, max = core.NewVec3(rect.A0, rect.K, rect.B0), core.NewVec3(rect.A1, rect.K, rect.B1)
	case PlaneYZ:
		min, max = core.NewVec3(rect.K, rect.A0, rect.B0), core.NewVec3(rect.K, rect.A1, rect.B1)
	}
	return core.NewAABB(min, max).Pad(2 * rectThickness), true
}

func (rect *Rect) area() float64 {
	return (rect.A1 - rect.A0) * (rect.B1 - rect.B0)
}

// PDFValue implements Hittable: uniform area sampling, pdf =
// distance^2 / (|cos(theta)| * area).
func (rect *Rect) PDFValue(origin, direction core.Vec3) float64 {
	hit, ok := rect.Hit(core.NewRay(origin, direction), 0.001, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * rect.area())
}

// Random implements Hittable: draws a point uniform over the rectangle's
// area and returns the direction toward it from origin.
func (rect *Rect) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	aAxis, bAxis, _ := rect.Plane.axes()

	a := rect.A0 + rng.Float64()*(rect.A1-rect.A0)
	b := rect.B0 + rng.Float64()*(rect.B1-rect.B0)

	p := core.WithComponent(core.WithComponent(core.Vec3{}, aAxis, a), bAxis, b)
	p = core.WithComponent(p, rect.orthoAxis(), rect.K)

	return p.Sub(origin)
}

func (rect *Rect) orthoAxis() int {
	_, _, ortho := rect.Plane.axes()
	return ortho
}
