package material

import (
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
)

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray originating inside the sphere, past the critical angle: a
	// direction about 45 degrees off the normal (critical angle ~41.8
	// degrees for index 1.5) makes sin(theta) exceed 1/refractiveIndex,
	// forcing total internal reflection regardless of the Schlick coin flip.
	hit := HitRecord{
		P:         core.NewVec3(0.5, 0, 0),
		Normal:    core.NewVec3(-1, 0, 0), // oriented against the incoming ray (inside the shell)
		FrontFace: false,
	}
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0.999, 0))

	rng := rand.New(rand.NewSource(1))
	scatter, ok := glass.Scatter(rayIn, hit, rng)
	if !ok {
		t.Fatal("expected dielectric Scatter to always report ok=true")
	}

	if !scatter.IsSpecular {
		t.Fatal("expected a specular scatter record")
	}

	// Under total internal reflection the outgoing direction must be the
	// mirror reflection of the incoming direction, never a refraction.
	unitDir := rayIn.Direction.Unit()
	wantDir := reflect(unitDir, hit.Normal)
	if scatter.SpecularRay.Direction.Sub(wantDir).Length() > 1e-9 {
		t.Errorf("SpecularRay.Direction = %v, want mirror reflection %v", scatter.SpecularRay.Direction, wantDir)
	}
}

func TestReflectanceAtNormalIncidence(t *testing.T) {
	// At normal incidence (cosine=1), Schlick's approximation reduces to
	// the base reflectance r0 exactly, since (1-cosine)^5 = 0.
	refIdx := 1.5
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0

	got := Reflectance(1, refIdx)
	if got != r0 {
		t.Errorf("Reflectance(1, %v) = %v, want %v", refIdx, got, r0)
	}
}
