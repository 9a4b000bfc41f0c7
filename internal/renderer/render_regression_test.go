package renderer

import (
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
	"github.com/jmercer/pathtracer/internal/scene"
)

// renderCornell builds the Cornell box from a fixed seed and renders it
// at fixture size: 16x16, 4 samples per pixel, depth 2, one worker.
func renderCornell(t *testing.T) [][]core.Vec3 {
	t.Helper()

	sc, err := scene.Build("cornell", 1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("building cornell scene: %v", err)
	}

	return Render(Scene{
		World:      sc.World,
		Lights:     sc.Lights,
		Camera:     sc.Camera,
		Background: sc.Background,
		Width:      16,
		Height:     16,
		Samples:    4,
		MaxDepth:   2,
	}, 1, 42, nil)
}

// TestRenderCornellDeterministic pins the end-to-end pipeline: a fixed
// scene seed, worker seed, and single worker must reproduce the image
// bit-for-bit across runs, and every finalized channel must land in the
// encodable range.
func TestRenderCornellDeterministic(t *testing.T) {
	first := renderCornell(t)
	second := renderCornell(t)

	for j := range first {
		for i := range first[j] {
			if first[j][i] != second[j][i] {
				t.Fatalf("pixel (%d,%d) differs between identical runs: %v vs %v", i, j, first[j][i], second[j][i])
			}
			for _, c := range []float64{first[j][i].X, first[j][i].Y, first[j][i].Z} {
				if c < 0 || c > 0.999 {
					t.Fatalf("pixel (%d,%d) channel %v outside [0, 0.999]", i, j, c)
				}
			}
		}
	}
}
