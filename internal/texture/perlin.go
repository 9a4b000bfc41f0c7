package texture

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/jmercer/pathtracer/internal/core"
)

// perlinAlpha/perlinBeta/perlinOctave match the defaults the go-perlin
// README uses for a single, un-accumulated lattice-gradient sample; the
// turbulence accumulation itself (turb, below) is done by hand per the
// classic Perlin-marble recipe rather than relying on the library's own
// multi-octave summation, so the two don't double up.
const (
	perlinAlpha          = 2.0
	perlinBeta           = 2.0
	perlinOctave   int32 = 1
)

// Noise wraps a seeded lattice-gradient noise generator used for marble
// and turbulence textures.
type Noise struct {
	gen *perlin.Perlin
}

// NewNoise creates a noise source seeded for reproducible renders.
func NewNoise(seed int64) *Noise {
	return &Noise{gen: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed)}
}

// noise3D returns a single lattice-gradient sample, roughly in [-1, 1].
func (n *Noise) noise3D(p core.Vec3) float64 {
	return n.gen.Noise3D(p.X, p.Y, p.Z)
}

// Turb sums |noise| at geometrically doubling frequencies and halving
// weights, giving the turbulent look used by marble and cloud textures.
func (n *Noise) Turb(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(n.noise3D(temp))
		weight *= 0.5
		temp = temp.Mul(2)
	}

	return accum
}

// Marble is a Perlin-noise texture that looks like polished marble: a
// sinusoid along Z perturbed by turbulence.
type Marble struct {
	noise *Noise
	Scale float64
	Color core.Vec3
}

// NewMarble creates a marble texture with the given frequency scale and
// base tint, seeded for reproducibility.
func NewMarble(scale float64, color core.Vec3, seed int64) *Marble {
	return &Marble{noise: NewNoise(seed), Scale: scale, Color: color}
}

// Value implements Texture.
func (m *Marble) Value(u, v float64, p core.Vec3) core.Vec3 {
	t := 0.5 * (1 + math.Sin(m.Scale*p.Z+10*m.noise.Turb(p, 7)))
	return m.Color.Mul(t)
}
