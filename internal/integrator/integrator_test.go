package integrator

import (
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/material"
)

func TestRadianceMissReturnsBackground(t *testing.T) {
	world := hittable.NewList()
	lights := hittable.NewList()
	background := core.NewVec3(0.5, 0.7, 1.0)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	got := Radiance(r, background, world, lights, 10, rng)
	if got != background {
		t.Errorf("Radiance on a miss = %v, want background %v", got, background)
	}
}

func TestRadianceZeroDepthReturnsBlack(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := hittable.NewList(hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat))
	lights := hittable.NewList()

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	got := Radiance(r, core.Vec3{}, world, lights, 0, rng)
	if got != (core.Vec3{}) {
		t.Errorf("Radiance at maxDepth=0 = %v, want black", got)
	}
}

func TestRadianceEmissiveSurfaceGlowsWithoutScatter(t *testing.T) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	world := hittable.NewList(hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, light))
	lights := hittable.NewList()

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	rng := rand.New(rand.NewSource(1))

	got := Radiance(r, core.Vec3{}, world, lights, 10, rng)
	want := core.NewVec3(4, 4, 4)
	if got != want {
		t.Errorf("Radiance hitting a pure emitter = %v, want %v", got, want)
	}
}
