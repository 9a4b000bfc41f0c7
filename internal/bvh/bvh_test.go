package bvh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/material"
)

func TestBVHThreeSpheresOrdering(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects := []hittable.Hittable{
		hittable.NewSphere(core.NewVec3(-2, 0, 0), 1, mat),
		hittable.NewSphere(core.NewVec3(0, 0, 0), 1, mat),
		hittable.NewSphere(core.NewVec3(2, 0, 0), 1, mat),
	}

	rng := rand.New(rand.NewSource(3))
	root, err := New(objects, 0, 1, rng)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	r := core.NewRay(core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := root.Hit(r, 0.001, core.Infinity)
	if !ok {
		t.Fatal("expected a hit")
	}

	if math.Abs(hit.T-7) > 1e-6 {
		t.Errorf("t = %v, want ~7 (the near surface of the x=-2, radius-1 sphere)", hit.T)
	}

	wantP := core.NewVec3(-3, 0, 0)
	if hit.P.Sub(wantP).Length() > 1e-6 {
		t.Errorf("P = %v, want %v (surface of the x=-2 sphere)", hit.P, wantP)
	}
}

func TestBVHNodeContainsChildBoxes(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	objects := []hittable.Hittable{
		hittable.NewSphere(core.NewVec3(-2, 0, 0), 0.5, mat),
		hittable.NewSphere(core.NewVec3(0, 3, 0), 0.5, mat),
		hittable.NewSphere(core.NewVec3(2, -1, 0), 0.5, mat),
		hittable.NewSphere(core.NewVec3(5, 0, 2), 0.5, mat),
	}

	rng := rand.New(rand.NewSource(11))
	root, err := New(objects, 0, 1, rng)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	nodeBox, _ := root.BoundingBox(0, 1)
	for _, obj := range objects {
		objBox, _ := obj.BoundingBox(0, 1)
		if !nodeBox.Contains(objBox) {
			t.Errorf("root box %v does not contain object box %v", nodeBox, objBox)
		}
	}
}

func TestBVHBuildRejectsEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := New(nil, 0, 1, rng); err == nil {
		t.Error("expected an error building a BVH from zero objects")
	}
}
