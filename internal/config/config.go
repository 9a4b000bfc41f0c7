// Package config resolves render options from a YAML options file and
// command-line flags, with flags taking precedence over file values.
package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds every recognized render option.
type Options struct {
	SceneID         string  `yaml:"scene_id"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	ImageHeight     int     `yaml:"image_height"`
	AspectRatio     float64 `yaml:"aspect_ratio"`
}

// Defaults returns the options used when neither a file nor a flag sets
// a value.
func Defaults() Options {
	return Options{
		SceneID:         "cornell",
		SamplesPerPixel: 100,
		MaxDepth:        50,
		ImageHeight:     400,
		AspectRatio:     1.0,
	}
}

// Load reads path as a YAML options file and overlays it on top of
// Defaults. A missing file is not an error -- callers without a file
// flag simply run on defaults and CLI flags.
func Load(path string) (Options, error) {
	opts := Defaults()
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}

// FlagSet describes the command-line overrides for Options. Zero values
// (empty string, 0) mean "not set on the command line" and leave the
// file/default value untouched.
type FlagSet struct {
	SceneID         string
	SamplesPerPixel int
	MaxDepth        int
	ImageHeight     int
	AspectRatio     float64
}

// ParseFlags registers and parses the recognized flags against the
// standard flag.CommandLine. The optionsFile flag names the YAML file to
// load before flags are applied. progressAddr, when non-empty, is a
// "host:port" the driver should serve a live-progress websocket on; it
// is process configuration, not a render option, so it is not part of
// Options and is never read from the YAML file.
func ParseFlags(args []string) (optionsFile string, overrides FlagSet, progressAddr string) {
	fs := flag.NewFlagSet("pathtracer", flag.ExitOnError)
	fs.StringVar(&optionsFile, "options", "", "path to a YAML render-options file")
	fs.StringVar(&overrides.SceneID, "scene", "", "scene_id to render (overrides options file)")
	fs.IntVar(&overrides.SamplesPerPixel, "samples", 0, "samples per pixel (overrides options file)")
	fs.IntVar(&overrides.MaxDepth, "max-depth", 0, "max recursion depth (overrides options file)")
	fs.IntVar(&overrides.ImageHeight, "height", 0, "image height in pixels (overrides options file)")
	fs.Float64Var(&overrides.AspectRatio, "aspect", 0, "aspect ratio, width/height (overrides options file)")
	fs.StringVar(&progressAddr, "progress-addr", "", "optional host:port to serve live row-progress over websocket")
	fs.Parse(args)
	return optionsFile, overrides, progressAddr
}

// Merge applies non-zero fields of overrides on top of opts.
func Merge(opts Options, overrides FlagSet) Options {
	if overrides.SceneID != "" {
		opts.SceneID = overrides.SceneID
	}
	if overrides.SamplesPerPixel != 0 {
		opts.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.MaxDepth != 0 {
		opts.MaxDepth = overrides.MaxDepth
	}
	if overrides.ImageHeight != 0 {
		opts.ImageHeight = overrides.ImageHeight
	}
	if overrides.AspectRatio != 0 {
		opts.AspectRatio = overrides.AspectRatio
	}
	return opts
}

// ImageWidth derives the pixel width from height and aspect ratio.
func (o Options) ImageWidth() int {
	return int(float64(o.ImageHeight) * o.AspectRatio)
}
