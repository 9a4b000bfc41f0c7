package hittable

import (
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/material"
)

func TestFlipFaceInvertsOnlyFrontFace(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	flipped := NewFlipFace(sphere)

	r := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	innerHit, _ := sphere.Hit(r, 0.001, core.Infinity)
	flippedHit, _ := flipped.Hit(r, 0.001, core.Infinity)

	if flippedHit.FrontFace == innerHit.FrontFace {
		t.Errorf("FlipFace did not invert FrontFace: inner=%v flipped=%v", innerHit.FrontFace, flippedHit.FrontFace)
	}
	if flippedHit.Normal != innerHit.Normal {
		t.Errorf("FlipFace must not alter Normal: inner=%v flipped=%v", innerHit.Normal, flippedHit.Normal)
	}
	if flippedHit.P != innerHit.P || flippedHit.T != innerHit.T {
		t.Error("FlipFace must not alter the hit point or t")
	}
}

func TestRotateYRoundTrip(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(1, 0, 0), 0.5, mat)

	const angle = 0.7
	forward := NewRotateY(sphere, angle)
	roundTrip := NewRotateY(forward, -angle)

	r := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0.2, 0, 1).Unit())

	want, wantOK := sphere.Hit(r, 0.001, core.Infinity)
	got, gotOK := roundTrip.Hit(r, 0.001, core.Infinity)

	if wantOK != gotOK {
		t.Fatalf("round-trip hit mismatch: inner ok=%v, round-trip ok=%v", wantOK, gotOK)
	}
	if !wantOK {
		return
	}

	const eps = 1e-6
	if got.P.Sub(want.P).Length() > eps {
		t.Errorf("round-trip P = %v, want %v", got.P, want.P)
	}
	if got.Normal.Sub(want.Normal).Length() > eps {
		t.Errorf("round-trip Normal = %v, want %v", got.Normal, want.Normal)
	}
	if got.FrontFace != want.FrontFace {
		t.Errorf("round-trip FrontFace = %v, want %v", got.FrontFace, want.FrontFace)
	}
}

func TestTranslateShiftsHitPoint(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	offset := core.NewVec3(10, 0, 0)
	translated := NewTranslate(sphere, offset)

	r := core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := translated.Hit(r, 0.001, core.Infinity)
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}

	want := core.NewVec3(10, 0, -0.5)
	if hit.P.Sub(want).Length() > 1e-9 {
		t.Errorf("P = %v, want %v", hit.P, want)
	}
}
