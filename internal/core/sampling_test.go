package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitDisk(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.Z != 0 {
			t.Fatalf("RandomInUnitDisk produced non-zero Z: %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("RandomInUnitDisk produced point outside unit disk: %v", p)
		}
	}
}

func TestRandomCosineDirectionHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	normal := NewVec3(0, 0, 1)

	const n = 5000
	var sumCosine float64
	for i := 0; i < n; i++ {
		dir := RandomCosineDirection(normal, rng)
		if math.Abs(dir.Length()-1) > 1e-6 {
			t.Fatalf("direction not unit length: %v", dir.Length())
		}
		cosine := dir.Dot(normal)
		if cosine < 0 {
			t.Fatalf("cosine-weighted sample fell below the hemisphere: %v", dir)
		}
		sumCosine += cosine
	}

	// E[cos] under p = cos/pi is the integral of cos^2/pi over the
	// hemisphere, which works out to 2/3.
	avg := sumCosine / n
	want := 2.0 / 3.0
	if math.Abs(avg-want) > 0.02 {
		t.Errorf("average cosine = %v, want close to %v", avg, want)
	}
}

func TestRandomToSphereWithinCone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	radius := 1.0
	distSquared := 100.0 // distance 10 from a radius-1 sphere

	cosThetaMax := math.Sqrt(1 - radius*radius/distSquared)
	for i := 0; i < 1000; i++ {
		dir := RandomToSphere(radius, distSquared, rng)
		if dir.Z < cosThetaMax-1e-9 {
			t.Fatalf("sampled direction z=%v outside cone (cosThetaMax=%v)", dir.Z, cosThetaMax)
		}
		if math.Abs(dir.LengthSquared()-1) > 1e-6 {
			t.Fatalf("sampled direction not unit length: %v", dir)
		}
	}
}
