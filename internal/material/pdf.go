package material

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
)

// CosinePDF is a cosine-weighted hemisphere distribution around a normal,
// matching a Lambertian BRDF's natural importance sampling.
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF builds a cosine PDF oriented around normal.
func NewCosinePDF(normal core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(normal)}
}

// Value implements PDF.
func (c *CosinePDF) Value(direction core.Vec3) float64 {
	cosine := direction.Unit().Dot(c.uvw.W())
	return math.Max(0, cosine/math.Pi)
}

// Generate implements PDF.
func (c *CosinePDF) Generate(rng *rand.Rand) core.Vec3 {
	return core.RandomCosineDirection(c.uvw.W(), rng)
}

// SampledShape is the capability subset of a Hittable a HittablePDF needs
// to importance-sample it as a light. Any Hittable implementation
// satisfies this interface structurally, with no package dependency.
type SampledShape interface {
	PDFValue(origin, direction core.Vec3) float64
	Random(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// HittablePDF samples directions toward a shape as seen from a point,
// using the shape's own PDFValue/Random (a Sphere samples uniformly over
// the solid angle it subtends, a Rect uniformly over its area), the basis
// of next-event-estimation light sampling.
type HittablePDF struct {
	Origin core.Vec3
	Shape  SampledShape
}

// NewHittablePDF creates a PDF that samples shape as seen from origin.
func NewHittablePDF(shape SampledShape, origin core.Vec3) *HittablePDF {
	return &HittablePDF{Origin: origin, Shape: shape}
}

// Value implements PDF.
func (h *HittablePDF) Value(direction core.Vec3) float64 {
	return h.Shape.PDFValue(h.Origin, direction)
}

// Generate implements PDF.
func (h *HittablePDF) Generate(rng *rand.Rand) core.Vec3 {
	return h.Shape.Random(h.Origin, rng)
}

// MixturePDF combines two PDFs with equal weight, the standard way of
// blending BSDF sampling with light sampling under MIS.
type MixturePDF struct {
	P [2]PDF
}

// NewMixturePDF creates an equal-weight mixture of p0 and p1.
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{P: [2]PDF{p0, p1}}
}

// Value implements PDF.
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.P[0].Value(direction) + 0.5*m.P[1].Value(direction)
}

// Generate implements PDF.
func (m *MixturePDF) Generate(rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return m.P[0].Generate(rng)
	}
	return m.P[1].Generate(rng)
}
