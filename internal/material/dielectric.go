package material

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
)

// Dielectric is a transparent material that both reflects and refracts,
// e.g. glass or water. A negative-Radius sphere (see the hittable
// package's Sphere) paired with this material forms a hollow
// glass shell: the sign flip happens entirely in the normal computation,
// this material only ever sees FrontFace.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric material with the given index of
// refraction (1.5 for standard glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Reflectance approximates Fresnel reflectance via Schlick's polynomial.
func Reflectance(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// Scatter implements Material: always specular, either reflected or
// refracted depending on the angle, Fresnel reflectance, and total
// internal reflection.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	eta := d.RefractiveIndex
	if hit.FrontFace {
		eta = 1 / d.RefractiveIndex
	}

	unitDir := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Negate().Dot(hit.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, eta) > rng.Float64() {
		direction = reflect(unitDir, hit.Normal)
	} else {
		direction = refract(unitDir, hit.Normal, eta, cosTheta)
	}

	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SpecularRay: core.NewRayAtTime(hit.P, direction, rayIn.Time),
		IsSpecular:  true,
	}, true
}

func refract(uv, n core.Vec3, etaiOverEtat, cosTheta float64) core.Vec3 {
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// ScatteringPDF implements Material: specular materials have no PDF.
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements Material: glass never emits.
func (d *Dielectric) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
