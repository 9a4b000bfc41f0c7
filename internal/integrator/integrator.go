// Package integrator implements the recursive path-tracing estimator:
// given a ray, the scene, and an explicit set of lights to importance
// sample, it returns an unbiased Monte Carlo estimate of incident
// radiance along that ray.
package integrator

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/material"
)

// shadowEpsilon offsets the next bounce's tMin away from zero to avoid
// re-intersecting the surface a ray just left because of floating-point
// rounding in the hit point.
const shadowEpsilon = 0.001

// Radiance estimates the incident radiance along r, recursing up to
// maxDepth bounces. background is returned directly on a miss. lights,
// when non-empty, is importance sampled alongside each material's own
// PDF under multiple importance sampling; an empty lights list falls
// back to sampling the material's PDF alone.
func Radiance(r core.Ray, background core.Vec3, world hittable.Hittable, lights hittable.Hittable, maxDepth int, rng *rand.Rand) core.Vec3 {
	if maxDepth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(r, shadowEpsilon, core.Infinity)
	if !ok {
		return background
	}

	emitted := hit.Material.Emitted(r, *hit)

	scatter, ok := hit.Material.Scatter(r, *hit, rng)
	if !ok {
		return emitted
	}

	if scatter.IsSpecular {
		reflected := Radiance(scatter.SpecularRay, background, world, lights, maxDepth-1, rng)
		return emitted.Add(scatter.Attenuation.MulVec(reflected))
	}

	pdf := scatter.PDF
	if hasLights(lights) {
		lightPDF := material.NewHittablePDF(lights, hit.P)
		pdf = material.NewMixturePDF(scatter.PDF, lightPDF)
	}

	scatteredDirection := pdf.Generate(rng)
	scattered := core.NewRayAtTime(hit.P, scatteredDirection, r.Time)
	pdfVal := pdf.Value(scatteredDirection)

	if pdfVal <= 0 {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(r, *hit, scattered)

	incoming := Radiance(scattered, background, world, lights, maxDepth-1, rng)
	if incoming.HasNaN() {
		incoming = core.Vec3{}
	}

	sample := emitted.Add(scatter.Attenuation.MulVec(incoming).Mul(scatteringPDF / pdfVal))
	if sample.HasNaN() {
		return emitted
	}
	return sample
}

// hasLights reports whether lights contains at least one sampleable
// object. A nil interface or an empty hittable.List both count as "no
// lights", triggering the scatter-PDF-only fallback.
func hasLights(lights hittable.Hittable) bool {
	if lights == nil {
		return false
	}
	list, ok := lights.(*hittable.List)
	if !ok {
		return true
	}
	return len(list.Objects) > 0
}
