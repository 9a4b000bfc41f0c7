package material

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/texture"
)

// Lambertian is a perfectly diffuse material. It emits nothing and
// scatters toward a cosine-weighted PDF so the integrator can combine it
// with light sampling under MIS.
type Lambertian struct {
	Albedo texture.Texture
}

// NewLambertian creates a Lambertian material with a solid albedo.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture creates a Lambertian material with an arbitrary
// albedo texture (checker, marble, image, ...).
func NewLambertianTexture(albedo texture.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements Material.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF implements Material: cos(theta)/pi where theta is the
// angle between the scattered direction and the normal.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Unit())
	return math.Max(0, cosine/math.Pi)
}

// Emitted implements Material: Lambertian surfaces never emit.
func (l *Lambertian) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
