package renderer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jmercer/pathtracer/internal/core"
)

// WritePPM encodes pixels (row 0 = top, as produced by Render) as ASCII
// PPM (P3): header "P3\nW H\n255\n" followed by one "r g b" triple per
// pixel, rows emitted top-to-bottom to match the header.
func WritePPM(w io.Writer, pixels [][]core.Vec3) error {
	if len(pixels) == 0 {
		return fmt.Errorf("renderer: cannot write an empty image")
	}
	height := len(pixels)
	width := len(pixels[0])

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := pixels[j][i]
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", quantize(c.X), quantize(c.Y), quantize(c.Z)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// quantize maps a gamma-corrected, clamped channel in [0, 0.999] to an
// 8-bit integer.
func quantize(c float64) int {
	return int(256 * c)
}
