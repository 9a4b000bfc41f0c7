package material

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
)

// Metal is a specular reflector perturbed by a fuzziness factor.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, up to 1 = very fuzzy
}

// NewMetal creates a metal material, clamping fuzz to [0, 1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Scatter implements Material: always a specular ScatterRecord.
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	reflected := reflect(rayIn.Direction.Unit(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Mul(m.Fuzz))
	}

	scattered := core.NewRayAtTime(hit.P, reflected, rayIn.Time)
	ok := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterRecord{
		Attenuation: m.Albedo,
		SpecularRay: scattered,
		IsSpecular:  true,
	}, ok
}

// ScatteringPDF implements Material: specular materials have no PDF.
func (m *Metal) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements Material: metal never emits.
func (m *Metal) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
