package camera

import (
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
)

func TestGetRayNoDefocusBlurStaysAtOrigin(t *testing.T) {
	cam := New(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1, 0, 1, 0, 0,
	)

	rng := rand.New(rand.NewSource(1))
	r := cam.GetRay(rng, 0.5, 0.5)

	if r.Origin != (core.Vec3{}) {
		t.Errorf("with aperture=0, ray origin should stay at look_from, got %v", r.Origin)
	}
}

func TestGetRayCenterPointsAtLookAt(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	cam := New(lookFrom, lookAt, core.NewVec3(0, 1, 0), 90, 1, 0, 1, 0, 0)

	rng := rand.New(rand.NewSource(1))
	r := cam.GetRay(rng, 0.5, 0.5)

	dir := r.Direction.Unit()
	wantDir := lookAt.Sub(lookFrom).Unit()
	if dir.Sub(wantDir).Length() > 1e-6 {
		t.Errorf("center ray direction = %v, want %v", dir, wantDir)
	}
}

func TestGetRayTimeWithinShutter(t *testing.T) {
	cam := New(
		core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0),
		90, 1, 0, 1, 0.2, 0.8,
	)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		r := cam.GetRay(rng, 0.5, 0.5)
		if r.Time < 0.2 || r.Time > 0.8 {
			t.Fatalf("Time = %v, want within [0.2, 0.8]", r.Time)
		}
	}
}
