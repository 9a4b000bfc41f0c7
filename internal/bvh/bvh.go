// Package bvh implements a binary bounding-volume hierarchy over a slice
// of hittables, accelerating the single ray/scene intersection the
// integrator performs at every bounce.
package bvh

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/material"
)

// Node is a binary BVH node: either a leaf (both children equal to the
// same underlying object when the span is 1) or an internal node
// covering the union of its two children's boxes.
type Node struct {
	box   core.AABB
	left  hittable.Hittable
	right hittable.Hittable
}

// New builds a BVH over objects. rng controls the random per-node split
// axis, so callers that need deterministic BVH shape (tests, regression
// fixtures) pass a seeded source. Any object with no bounding box over
// [t0, t1] is a scene-construction error: a BVH cannot bound something
// with no box.
func New(objects []hittable.Hittable, t0, t1 float64, rng *rand.Rand) (*Node, error) {
	span := make([]hittable.Hittable, len(objects))
	copy(span, objects)
	return build(span, t0, t1, rng)
}

func build(objects []hittable.Hittable, t0, t1 float64, rng *rand.Rand) (*Node, error) {
	axis := rng.Intn(3)

	boxOf := func(o hittable.Hittable) (core.AABB, error) {
		b, ok := o.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, fmt.Errorf("bvh: object has no bounding box")
		}
		return b, nil
	}

	less := func(i, j int) bool {
		bi, _ := boxOf(objects[i])
		bj, _ := boxOf(objects[j])
		return core.Component(bi.Min, axis) < core.Component(bj.Min, axis)
	}

	var node Node

	switch len(objects) {
	case 0:
		return nil, fmt.Errorf("bvh: cannot build from zero objects")
	case 1:
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		if less(0, 1) {
			node.left, node.right = objects[0], objects[1]
		} else {
			node.left, node.right = objects[1], objects[0]
		}
	default:
		sort.Slice(objects, less)
		mid := len(objects) / 2

		left, err := build(objects[:mid], t0, t1, rng)
		if err != nil {
			return nil, err
		}
		right, err := build(objects[mid:], t0, t1, rng)
		if err != nil {
			return nil, err
		}
		node.left, node.right = left, right
	}

	leftBox, err := boxOf(node.left)
	if err != nil {
		return nil, err
	}
	rightBox, err := boxOf(node.right)
	if err != nil {
		return nil, err
	}
	node.box = core.Union(leftBox, rightBox)

	return &node, nil
}

// BoundingBox implements hittable.Hittable.
func (n *Node) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.box, true
}

// PDFValue implements hittable.Hittable: a BVH is never itself used as an
// explicit light.
func (n *Node) PDFValue(origin, direction core.Vec3) float64 { return 0 }

// Random implements hittable.Hittable.
func (n *Node) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	return core.Vec3{X: 1, Y: 0, Z: 0}
}

// Hit descends the hierarchy: on a hit in the left subtree, the right
// subtree is probed only over (tMin, tLeft) -- the interval-tightening
// step that makes the nearer hit win without a second full traversal.
func (n *Node) Hit(r core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.box.Hit(r, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(r, tMin, tMax)

	rightMax := tMax
	if hitLeft {
		rightMax = leftHit.T
	}
	rightHit, hitRight := n.right.Hit(r, tMin, rightMax)

	switch {
	case hitRight:
		return rightHit, true
	case hitLeft:
		return leftHit, true
	default:
		return nil, false
	}
}
