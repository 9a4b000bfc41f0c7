// Package camera implements a thin-lens camera with defocus blur and a
// shutter interval for motion blur, matching the ray-generation model
// the rest of the renderer assumes.
package camera

import (
	"math"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/core"
)

// Camera generates primary rays for a pinhole-or-thin-lens view.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	shutter0        float64
	shutter1        float64
}

// New builds a camera looking from lookFrom to lookAt, with up direction
// vup, vertical field of view vfov in degrees, the given aspect ratio,
// aperture diameter (0 disables defocus blur), a focus distance, and a
// shutter interval [shutter0, shutter1] over which GetRay picks a random
// exposure time.
func New(lookFrom, lookAt, vup core.Vec3, vfov, aspect, aperture, focusDist, shutter0, shutter1 float64) *Camera {
	theta := vfov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := aspect * viewportHeight

	w := lookFrom.Sub(lookAt).Unit()
	u := vup.Cross(w).Unit()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Mul(viewportWidth * focusDist)
	vertical := v.Mul(viewportHeight * focusDist)

	lowerLeftCorner := origin.
		Sub(horizontal.Div(2)).
		Sub(vertical.Div(2)).
		Sub(w.Mul(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		shutter0:        shutter0,
		shutter1:        shutter1,
	}
}

// GetRay returns a ray through normalized viewport coordinates (s, t),
// jittered over the lens aperture and stamped with a random time within
// the shutter interval.
func (c *Camera) GetRay(rng *rand.Rand, s, t float64) core.Ray {
	rd := core.RandomInUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(c.origin).
		Sub(offset)

	time := c.shutter0 + rng.Float64()*(c.shutter1-c.shutter0)

	return core.NewRayAtTime(c.origin.Add(offset), direction, time)
}
