// Package renderer drives the parallel tile/pixel evaluator: a
// work-stealing pool of workers, each owning its own RNG, pulls image
// rows off a shared queue and asks the integrator for each pixel's
// radiance estimate.
package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jmercer/pathtracer/internal/camera"
	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/hittable"
	"github.com/jmercer/pathtracer/internal/integrator"
)

// Scene bundles everything a render needs: the intersectable world (the
// BVH root or any other Hittable), the lights list used for next-event
// estimation (may be empty), the camera, and the background radiance
// returned on a miss.
type Scene struct {
	World      hittable.Hittable
	Lights     hittable.Hittable
	Camera     *camera.Camera
	Background core.Vec3
	Width      int
	Height     int
	Samples    int
	MaxDepth   int
}

// ProgressFunc is called after each completed row, with the number of
// rows completed so far and the total row count.
type ProgressFunc func(rowsDone, totalRows int)

// Render computes the full image, one core.Vec3 per pixel in row-major
// order with row 0 at the top, using numWorkers goroutines (runtime.NumCPU
// if numWorkers <= 0). seed fixes the first worker's RNG stream; each
// worker derives its own stream from it. With a single worker a given
// (scene, seed) pair reproduces pixel-identical output (for scenes without
// a ConstantMedium, which draws from the global math/rand source). With
// more workers, which worker renders which row depends on goroutine
// scheduling, so output is not pixel-identical across runs.
func Render(scene Scene, numWorkers int, seed int64, onProgress ProgressFunc) [][]core.Vec3 {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pixels := make([][]core.Vec3, scene.Height)
	for j := range pixels {
		pixels[j] = make([]core.Vec3, scene.Width)
	}

	rows := make(chan int, scene.Height)
	for j := 0; j < scene.Height; j++ {
		rows <- j
	}
	close(rows)

	var completed int64
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		workerSeed := seed + int64(w)*9781

		go func(rng *rand.Rand) {
			defer wg.Done()
			for j := range rows {
				renderRow(scene, j, rng, pixels[j])
				if onProgress != nil {
					onProgress(int(atomic.AddInt64(&completed, 1)), scene.Height)
				}
			}
		}(rand.New(rand.NewSource(workerSeed)))
	}

	wg.Wait()
	return pixels
}

// renderRow fills one row of the output. Image row j is counted from the
// top (j=0 is the top row, matching PPM's top-to-bottom scan order),
// while the camera's v coordinate runs bottom-to-top, so v is flipped
// from j here.
func renderRow(scene Scene, j int, rng *rand.Rand, row []core.Vec3) {
	for i := 0; i < scene.Width; i++ {
		var sum core.Vec3
		for s := 0; s < scene.Samples; s++ {
			du := rng.Float64()
			dv := rng.Float64()

			u := (float64(i) + du) / float64(scene.Width-1)
			v := (float64(scene.Height-1-j) + dv) / float64(scene.Height-1)

			r := scene.Camera.GetRay(rng, u, v)
			sum = sum.Add(integrator.Radiance(r, scene.Background, scene.World, scene.Lights, scene.MaxDepth, rng))
		}

		row[i] = finalize(sum, scene.Samples)
	}
}

// finalize averages accumulated samples, coerces NaN to black, applies
// gamma-2 correction, and clamps to the encodable range.
func finalize(sum core.Vec3, samples int) core.Vec3 {
	if sum.HasNaN() {
		sum = core.Vec3{}
	}

	scale := 1.0 / float64(samples)
	c := core.NewVec3(gammaSqrt(sum.X*scale), gammaSqrt(sum.Y*scale), gammaSqrt(sum.Z*scale))
	return c.Clamp(0, 0.999)
}

func gammaSqrt(c float64) float64 {
	if c < 0 {
		return 0
	}
	return math.Sqrt(c)
}
