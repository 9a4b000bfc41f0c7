package material

import (
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/texture"
)

// DiffuseLight does not scatter; it only emits, and only from its front
// face (combine with a FlipFace hittable decorator to make an area light
// one-sided, which is required for unbiased MIS against it).
type DiffuseLight struct {
	Emit texture.Texture
}

// NewDiffuseLight creates a diffuse light with a solid emission color.
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(emission)}
}

// Scatter implements Material: diffuse lights absorb everything.
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF implements Material.
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emitted implements Material: black on the back face.
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.U, hit.V, hit.P)
}
