package material

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/texture"
)

// Isotropic is the phase function of a constant-density volume: it
// scatters uniformly in all directions, as a specular (delta) bounce so
// the integrator doesn't try to MIS against the volume interior.
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an isotropic phase function with a solid albedo.
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

// Scatter implements Material.
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	direction := core.RandomUnitVector(rng)
	return ScatterRecord{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
		SpecularRay: core.NewRayAtTime(hit.P, direction, rayIn.Time),
		IsSpecular:  true,
	}, true
}

// ScatteringPDF implements Material.
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements Material.
func (i *Isotropic) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
