// Package scene provides the factories that assemble a world, its
// lights, a camera, and render parameters from a scene_id string -- the
// "scene construction" external collaborator named by the core render
// pipeline's contract.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/jmercer/pathtracer/internal/bvh"
	"github.com/jmercer/pathtracer/internal/camera"
	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/material"
	"github.com/jmercer/pathtracer/internal/texture"
)

// Scene is everything a render needs beyond sample/depth/size, which
// live in config.Options.
type Scene struct {
	World       hittable.Hittable
	Lights      hittable.Hittable
	Camera      *camera.Camera
	Background  core.Vec3
	AspectRatio float64
}

// Build selects and constructs the scene named by id. rng seeds BVH
// construction's random axis choice; the same id+rng seed always
// produces the same BVH shape.
func Build(id string, aspectRatio float64, rng *rand.Rand) (Scene, error) {
	switch id {
	case "bouncing-spheres":
		return bouncingSpheres(aspectRatio, rng)
	case "cornell":
		return cornellBox(aspectRatio, rng, false)
	case "cornell-smoke":
		return cornellBox(aspectRatio, rng, true)
	case "final-next-week":
		return finalNextWeek(aspectRatio, rng)
	default:
		return Scene{}, fmt.Errorf("scene: unknown scene_id %q", id)
	}
}

// NewHollowGlassSphere builds the classic nested positive/negative-radius
// dielectric shell: an outer sphere of refractive index refIdx, and an
// inner sphere of the same center with a negative radius (see sphere.go)
// that carves out a glass shell instead of a solid ball.
func NewHollowGlassSphere(center core.Vec3, radius, refIdx float64) *hittable.List {
	glass := material.NewDielectric(refIdx)
	return hittable.NewList(
		hittable.NewSphere(center, radius, glass),
		hittable.NewSphere(center, -radius*0.9, glass),
	)
}

func buildBVH(objects []hittable.Hittable, rng *rand.Rand) hittable.Hittable {
	root, err := bvh.New(objects, 0, 1, rng)
	if err != nil {
		panic(err)
	}
	return root
}

// bouncingSpheres is the "Ray Tracing in One Weekend" closing scene: a
// checkered ground plane, a field of small random spheres (some of them
// moving for motion blur), and three large showcase spheres.
func bouncingSpheres(aspectRatio float64, rng *rand.Rand) (Scene, error) {
	checker := texture.NewChecker(10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewLambertianTexture(checker)

	var objects []hittable.Hittable
	objects = append(objects, hittable.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if center.Sub(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := rng.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng, 0, 1).MulVec(core.RandomVec3(rng, 0, 1))
				mat := material.NewLambertian(albedo)
				center2 := center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0))
				objects = append(objects, hittable.NewMovingSphere(center, center2, 0, 1, 0.2, mat))
			case chooseMat < 0.95:
				albedo := core.RandomVec3(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				mat := material.NewMetal(albedo, fuzz)
				objects = append(objects, hittable.NewSphere(center, 0.2, mat))
			default:
				mat := material.NewDielectric(1.5)
				objects = append(objects, hittable.NewSphere(center, 0.2, mat))
			}
		}
	}

	objects = append(objects,
		hittable.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		hittable.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		hittable.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)
	cam := camera.New(lookFrom, lookAt, core.NewVec3(0, 1, 0), 20, aspectRatio, 0.1, 10, 0, 1)

	return Scene{
		World:       buildBVH(objects, rng),
		Lights:      hittable.NewList(),
		Camera:      cam,
		Background:  core.NewVec3(0.70, 0.80, 1.00),
		AspectRatio: aspectRatio,
	}, nil
}

// cornellBox is the standard Cornell box: five colored walls, two
// tilted boxes, and a ceiling light. withSmoke replaces the two solid
// boxes with constant-density smoke/fog volumes.
func cornellBox(aspectRatio float64, rng *rand.Rand, withSmoke bool) (Scene, error) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	var objects []hittable.Hittable

	// The light rect's outward normal is +Y, away from the box interior;
	// FlipFace turns it into a downward-facing one-sided emitter.
	objects = append(objects,
		hittable.NewRect(hittable.PlaneYZ, 0, 555, 0, 555, 555, green),
		hittable.NewRect(hittable.PlaneYZ, 0, 555, 0, 555, 0, red),
		hittable.NewFlipFace(hittable.NewRect(hittable.PlaneXZ, 213, 343, 227, 332, 554, light)),
		hittable.NewRect(hittable.PlaneXZ, 0, 555, 0, 555, 555, white),
		hittable.NewRect(hittable.PlaneXZ, 0, 555, 0, 555, 0, white),
		hittable.NewRect(hittable.PlaneXY, 0, 555, 0, 555, 555, white),
	)

	box1 := hittable.NewRotateY(
		hittable.NewTranslate(hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white), core.NewVec3(265, 0, 295)),
		15*core.DegreesToRadians,
	)
	box2 := hittable.NewRotateY(
		hittable.NewTranslate(hittable.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white), core.NewVec3(130, 0, 65)),
		-18*core.DegreesToRadians,
	)

	if withSmoke {
		objects = append(objects,
			hittable.NewConstantMedium(box1, 0.01, core.NewVec3(0, 0, 0)),
			hittable.NewConstantMedium(box2, 0.01, core.NewVec3(1, 1, 1)),
		)
	} else {
		objects = append(objects, box1, box2)
	}

	lights := hittable.NewList(
		hittable.NewFlipFace(hittable.NewRect(hittable.PlaneXZ, 213, 343, 227, 332, 554, light)),
	)

	lookFrom := core.NewVec3(278, 278, -800)
	lookAt := core.NewVec3(278, 278, 0)
	cam := camera.New(lookFrom, lookAt, core.NewVec3(0, 1, 0), 40, aspectRatio, 0, 800, 0, 1)

	return Scene{
		World:       buildBVH(objects, rng),
		Lights:      lights,
		Camera:      cam,
		Background:  core.Vec3{},
		AspectRatio: aspectRatio,
	}, nil
}

// finalNextWeek is "The Next Week"'s closing scene: a field of boxes
// forming a ground slab, a smoke-filled glass sphere, a marble sphere, a
// rotated cluster of spheres, and a volumetric fog sphere bounding the
// whole scene.
func finalNextWeek(aspectRatio float64, rng *rand.Rand) (Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))

	var boxes []hittable.Hittable
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y0 := 0.0
			x1 := x0 + w
			y1 := 1 + 100*rng.Float64()
			z1 := z0 + w
			boxes = append(boxes, hittable.NewBox(core.NewVec3(x0, y0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}

	var objects []hittable.Hittable
	objects = append(objects, buildBVH(boxes, rng))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	objects = append(objects, hittable.NewFlipFace(hittable.NewRect(hittable.PlaneXZ, 123, 423, 147, 412, 554, light)))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	movingSphereMat := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))
	objects = append(objects, hittable.NewMovingSphere(center0, center1, 0, 1, 50, movingSphereMat))

	objects = append(objects,
		hittable.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		hittable.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1)),
	)

	boundary := hittable.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects,
		boundary,
		hittable.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
	)

	fogBoundary := hittable.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, hittable.NewConstantMedium(fogBoundary, 0.0001, core.NewVec3(1, 1, 1)))

	marble := material.NewLambertianTexture(texture.NewMarble(0.1, core.NewVec3(1, 1, 1), 42))
	objects = append(objects, hittable.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	var cluster []hittable.Hittable
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	for i := 0; i < 1000; i++ {
		cluster = append(cluster, hittable.NewSphere(core.RandomVec3(rng, 0, 165), 10, white))
	}
	clusterBVH := buildBVH(cluster, rng)
	objects = append(objects,
		hittable.NewTranslate(
			hittable.NewRotateY(clusterBVH, 15*core.DegreesToRadians),
			core.NewVec3(-100, 270, 395),
		),
	)

	lights := hittable.NewList(
		hittable.NewFlipFace(hittable.NewRect(hittable.PlaneXZ, 123, 423, 147, 412, 554, light)),
	)

	lookFrom := core.NewVec3(478, 278, -600)
	lookAt := core.NewVec3(278, 278, 0)
	cam := camera.New(lookFrom, lookAt, core.NewVec3(0, 1, 0), 40, aspectRatio, 0, 800, 0, 1)

	return Scene{
		World:       buildBVH(objects, rng),
		Lights:      lights,
		Camera:      cam,
		Background:  core.Vec3{},
		AspectRatio: aspectRatio,
	}, nil
}
