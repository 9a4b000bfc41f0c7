package hittable

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

// Translate shifts an inner hittable by a fixed offset.
type Translate struct {
	Inner  Hittable
	Offset core.Vec3
}

// NewTranslate wraps inner, shifted by offset.
func NewTranslate(inner Hittable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit implements Hittable: shift the ray into the inner's local space,
// intersect, then shift the hit point back into world space.
func (t *Translate) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(r.Origin.Sub(t.Offset), r.Direction, r.Time)

	hit, ok := t.Inner.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit.P = hit.P.Add(t.Offset)
	return hit, true
}

// BoundingBox implements Hittable.
func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// PDFValue implements Hittable.
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return t.Inner.PDFValue(origin.Sub(t.Offset), direction)
}

// Random implements Hittable.
func (t *Translate) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return t.Inner.Random(origin.Sub(t.Offset), rng)
}

// RotateY rotates an inner hittable around the Y axis by a fixed angle,
// stored as its sine and cosine.
type RotateY struct {
	Inner      Hittable
	sinT, cosT float64
	bbox       core.AABB
	hasBox     bool
}

// NewRotateY wraps inner, rotated by angleRadians around Y.
func NewRotateY(inner Hittable, angleRadians float64) *RotateY {
	ry := &RotateY{Inner: inner, sinT: math.Sin(angleRadians), cosT: math.Cos(angleRadians)}

	box, ok := inner.BoundingBox(0, 1)
	ry.hasBox = ok
	if !ok {
		return ry
	}

	min := core.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max := core.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := lerp(box.Min.X, box.Max.X, i)
				y := lerp(box.Min.Y, box.Max.Y, j)
				z := lerp(box.Min.Z, box.Max.Z, k)

				newX := ry.cosT*x + ry.sinT*z
				newZ := -ry.sinT*x + ry.cosT*z
				corner := core.NewVec3(newX, y, newZ)

				min = min.Min(corner)
				max = max.Max(corner)
			}
		}
	}

	ry.bbox = core.NewAABB(min, max)
	return ry
}

func lerp(a, b float64, i int) float64 {
	if i == 0 {
		return a
	}
	return b
}

// rotateForward rotates a vector by +angle around Y (cosT/sinT of angle).
func (ry *RotateY) rotateForward(v core.Vec3) core.Vec3 {
	x := ry.cosT*v.X + ry.sinT*v.Z
	z := -ry.sinT*v.X + ry.cosT*v.Z
	return core.NewVec3(x, v.Y, z)
}

// rotateBackward rotates a vector by -angle around Y.
func (ry *RotateY) rotateBackward(v core.Vec3) core.Vec3 {
	x := ry.cosT*v.X - ry.sinT*v.Z
	z := ry.sinT*v.X + ry.cosT*v.Z
	return core.NewVec3(x, v.Y, z)
}

// Hit implements Hittable: inverse-rotate the ray, intersect, then
// forward-rotate the returned point and normal.
func (ry *RotateY) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	origin := ry.rotateBackward(r.Origin)
	direction := ry.rotateBackward(r.Direction)
	rotated := core.NewRayAtTime(origin, direction, r.Time)

	hit, ok := ry.Inner.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	outwardLocal := hit.Normal
	if !hit.FrontFace {
		outwardLocal = outwardLocal.Negate()
	}

	hit.P = ry.rotateForward(hit.P)
	hit.SetFaceNormal(r, ry.rotateForward(outwardLocal))
	return hit, true
}

// BoundingBox implements Hittable.
func (ry *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return ry.bbox, ry.hasBox
}

// PDFValue implements Hittable.
func (ry *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return ry.Inner.PDFValue(ry.rotateBackward(origin), ry.rotateBackward(direction))
}

// Random implements Hittable.
func (ry *RotateY) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	local := ry.Inner.Random(ry.rotateBackward(origin), rng)
	return ry.rotateForward(local)
}

// FlipFace forwards Hit to an inner hittable but inverts FrontFace,
// turning a one-sided emissive quad into a one-sided light that faces
// the opposite way -- required to make area lights one-sided for
// unbiased MIS.
type FlipFace struct {
	Inner Hittable
}

// NewFlipFace wraps inner with an inverted FrontFace.
func NewFlipFace(inner Hittable) *FlipFace {
	return &FlipFace{Inner: inner}
}

// Hit implements Hittable.
func (f *FlipFace) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Inner.Hit(r, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox implements Hittable.
func (f *FlipFace) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Inner.BoundingBox(t0, t1)
}

// PDFValue implements Hittable.
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	return f.Inner.PDFValue(origin, direction)
}

// Random implements Hittable.
func (f *FlipFace) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return f.Inner.Random(origin, rng)
}
