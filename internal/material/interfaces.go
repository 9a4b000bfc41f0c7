// Package material implements the scattering models: the HitRecord every
// intersection produces, the Material scatter/emit/pdf contract, and its
// five variants.
package material

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
)

// HitRecord is produced by every successful ray/primitive intersection.
type HitRecord struct {
	P         core.Vec3 // hit point
	Normal    core.Vec3 // unit normal, oriented against the incoming ray
	Material  Material
	T         float64
	U, V      float64 // surface parametrization, (0,0) for media
	FrontFace bool
}

// SetFaceNormal orients Normal against the ray direction and records
// which face was hit. outward must be the primitive's geometric normal.
func (h *HitRecord) SetFaceNormal(r core.Ray, outward core.Vec3) {
	h.FrontFace = r.Direction.Dot(outward) < 0
	if h.FrontFace {
		h.Normal = outward
	} else {
		h.Normal = outward.Negate()
	}
}

// ScatterRecord is the result of a material scattering an incoming ray.
// Exactly one of (Specular ray) or (PDF) applies: a non-nil PDF means
// diffuse scattering to be combined with light sampling via MIS; a nil
// PDF with SpecularRay set means a delta-distribution bounce that skips
// MIS entirely.
type ScatterRecord struct {
	Attenuation core.Vec3
	PDF         PDF
	SpecularRay core.Ray
	IsSpecular  bool
}

// PDF is the probability density over outgoing directions a material or
// light can be importance-sampled from.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(rng *rand.Rand) core.Vec3
}

// Material is the scattering contract every surface implements. A
// material with no meaningful Scatter (a pure emitter or absorber)
// returns ok=false.
type Material interface {
	Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool)
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}
