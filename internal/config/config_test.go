package config

import "testing"

func TestMergeOverridesOnlyNonZeroFields(t *testing.T) {
	base := Defaults()
	overrides := FlagSet{SceneID: "cornell-smoke", SamplesPerPixel: 200}

	got := Merge(base, overrides)

	if got.SceneID != "cornell-smoke" {
		t.Errorf("SceneID = %q, want %q", got.SceneID, "cornell-smoke")
	}
	if got.SamplesPerPixel != 200 {
		t.Errorf("SamplesPerPixel = %d, want 200", got.SamplesPerPixel)
	}
	if got.MaxDepth != base.MaxDepth {
		t.Errorf("MaxDepth = %d, want unchanged default %d", got.MaxDepth, base.MaxDepth)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	opts, err := Load("/nonexistent/path/options.yaml")
	if err != nil {
		t.Fatalf("Load returned error for a missing file: %v", err)
	}
	if opts != Defaults() {
		t.Errorf("Load(missing) = %+v, want defaults %+v", opts, Defaults())
	}
}

func TestImageWidthDerivesFromAspectRatio(t *testing.T) {
	opts := Options{ImageHeight: 400, AspectRatio: 1.5}
	if got := opts.ImageWidth(); got != 600 {
		t.Errorf("ImageWidth() = %d, want 600", got)
	}
}
