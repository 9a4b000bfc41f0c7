// Package texture implements the spatially-varying color sources
// materials sample: solid colors, a 3-D checker pattern, Perlin marble,
// and decoded images.
package texture

import (
	"math"

	"github.com/jmercer/pathtracer/internal/core"
)

// Texture maps a surface parametrization and world point to a color.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// Solid is a texture with a single uniform color.
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a solid-color texture.
func NewSolid(c core.Vec3) *Solid { return &Solid{Color: c} }

// Value implements Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 { return s.Color }

// Checker is a 3-D checkerboard pattern alternating between two
// sub-textures based on the sign of sin(scale*x)*sin(scale*y)*sin(scale*z).
type Checker struct {
	Scale float64
	Odd   Texture
	Even  Texture
}

// NewChecker creates a checker texture from two solid colors.
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: NewSolid(even), Odd: NewSolid(odd)}
}

// Value implements Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
