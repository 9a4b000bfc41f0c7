package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jmercer/pathtracer/internal/core"
)

func TestLambertianScatterIsDiffuse(t *testing.T) {
	lam := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{P: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}
	rng := rand.New(rand.NewSource(5))

	scatter, ok := lam.Scatter(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), hit, rng)
	if !ok {
		t.Fatal("expected Lambertian.Scatter to report ok=true")
	}
	if scatter.IsSpecular {
		t.Error("expected a non-specular (PDF-driven) scatter record")
	}
	if scatter.PDF == nil {
		t.Fatal("expected a non-nil PDF")
	}

	dir := scatter.PDF.Generate(rng)
	if dir.Dot(hit.Normal) < 0 {
		t.Errorf("sampled direction %v fell below the hemisphere around %v", dir, hit.Normal)
	}
}

func TestLambertianScatteringPDFIntegratesToOne(t *testing.T) {
	lam := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{Normal: normal}
	rng := rand.New(rand.NewSource(9))

	// Monte Carlo estimate of the hemisphere integral of the scattering
	// PDF: uniform directions over the hemisphere (pdf 1/2pi), so the
	// estimate is the mean PDF value times 2pi.
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := core.RandomUnitVector(rng)
		if dir.Z < 0 {
			dir.Z = -dir.Z
		}
		sum += lam.ScatteringPDF(core.Ray{}, hit, core.NewRay(core.Vec3{}, dir))
	}

	integral := sum / n * 2 * math.Pi
	if math.Abs(integral-1) > 0.02 {
		t.Errorf("scattering PDF integrates to %v over the hemisphere, want 1", integral)
	}
}

func TestLambertianScatteringPDFMatchesCosine(t *testing.T) {
	lam := NewLambertian(core.NewVec3(1, 1, 1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}
	scattered := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	got := lam.ScatteringPDF(core.Ray{}, hit, scattered)
	want := 1 / math.Pi
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ScatteringPDF = %v, want %v", got, want)
	}
}
