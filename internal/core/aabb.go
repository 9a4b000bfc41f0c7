package core

import "math"

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from two corners (not necessarily ordered).
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// EmptyAABB returns a degenerate box with Min > Max on every axis, a safe
// starting point for an accumulating Union.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{Min: Vec3{inf, inf, inf}, Max: Vec3{-inf, -inf, -inf}}
}

// axis returns the min and max extent of the box along the given axis
// (0=X, 1=Y, 2=Z).
func (b AABB) axis(a int) (min, max float64) {
	switch a {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}

// Hit performs the slab test against the box over ray parameter range
// (tMin, tMax).
func (b AABB) Hit(r Ray, tMin, tMax float64) bool {
	for a := 0; a < 3; a++ {
		lo, hi := b.axis(a)
		invD := 1.0 / Component(r.Direction, a)
		t0 := (lo - Component(r.Origin, a)) * invD
		t1 := (hi - Component(r.Origin, a)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the box bounding both a and b.
func Union(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Contains reports whether the box fully contains other, componentwise.
func (b AABB) Contains(other AABB) bool {
	return b.Min.X <= other.Min.X && b.Min.Y <= other.Min.Y && b.Min.Z <= other.Min.Z &&
		b.Max.X >= other.Max.X && b.Max.Y >= other.Max.Y && b.Max.Z >= other.Max.Z
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (b AABB) LongestAxis() int {
	size := b.Max.Sub(b.Min)
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Pad returns the box with every axis whose extent is below minSize
// widened about its midpoint to an extent of at least minSize, used to
// give axis-aligned rectangles (infinitely thin on their orthogonal axis)
// a non-zero bounding box for the BVH.
func (b AABB) Pad(minSize float64) AABB {
	pad := func(lo, hi float64) (float64, float64) {
		if hi-lo >= minSize {
			return lo, hi
		}
		half := minSize / 2
		mid := (lo + hi) / 2
		lo, hi = mid-half, mid+half
		// Rounding in mid±half can leave the extent a hair short of minSize.
		for hi-lo < minSize {
			lo = math.Nextafter(lo, math.Inf(-1))
			hi = math.Nextafter(hi, math.Inf(1))
		}
		return lo, hi
	}
	minX, maxX := pad(b.Min.X, b.Max.X)
	minY, maxY := pad(b.Min.Y, b.Max.Y)
	minZ, maxZ := pad(b.Min.Z, b.Max.Z)
	return AABB{Min: Vec3{minX, minY, minZ}, Max: Vec3{maxX, maxY, maxZ}}
}
