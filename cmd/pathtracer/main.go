// Command pathtracer renders a scene to a PPM image using an offline
// Monte Carlo path tracer.
package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/jmercer/pathtracer/internal/config"
	"github.com/jmercer/pathtracer/internal/progress"
	"github.com/jmercer/pathtracer/internal/renderer"
	"github.com/jmercer/pathtracer/internal/rtlog"
	"github.com/jmercer/pathtracer/internal/scene"
)

func main() {
	log := rtlog.New()
	defer log.Sync()

	optionsFile, overrides, progressAddr := config.ParseFlags(os.Args[1:])

	opts, err := config.Load(optionsFile)
	if err != nil {
		log.Fatalw("loading render options", "error", err)
	}
	opts = config.Merge(opts, overrides)

	log.Infow("starting render",
		"scene_id", opts.SceneID,
		"samples_per_pixel", opts.SamplesPerPixel,
		"max_depth", opts.MaxDepth,
		"image_height", opts.ImageHeight,
		"aspect_ratio", opts.AspectRatio)

	sceneRNG := rand.New(rand.NewSource(1))
	sc, err := scene.Build(opts.SceneID, opts.AspectRatio, sceneRNG)
	if err != nil {
		log.Fatalw("building scene", "error", err)
	}

	width := opts.ImageWidth()
	height := opts.ImageHeight

	rScene := renderer.Scene{
		World:      sc.World,
		Lights:     sc.Lights,
		Camera:     sc.Camera,
		Background: sc.Background,
		Width:      width,
		Height:     height,
		Samples:    opts.SamplesPerPixel,
		MaxDepth:   opts.MaxDepth,
	}

	var hub *progress.Hub
	if progressAddr != "" {
		hub = progress.NewHub()
		mux := http.NewServeMux()
		mux.Handle("/progress", hub)
		srv := &http.Server{Addr: progressAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Errorw("progress server stopped", "error", err)
			}
		}()
		log.Infow("serving live progress", "addr", progressAddr, "path", "/progress")
	}

	start := time.Now()
	pixels := renderer.Render(rScene, 0, time.Now().UnixNano(), func(rowsDone, totalRows int) {
		if hub != nil {
			hub.Report(rowsDone, totalRows)
		}
		if rowsDone%32 == 0 || rowsDone == totalRows {
			log.Infow("render progress", "rows_done", rowsDone, "total_rows", totalRows)
		}
	})
	log.Infow("render complete", "elapsed", time.Since(start).String())

	if err := renderer.WritePPM(os.Stdout, pixels); err != nil {
		log.Fatalw("writing image", "error", err)
	}

	fmt.Fprintf(os.Stderr, "rendered %dx%d in %v\n", width, height, time.Since(start))
}
