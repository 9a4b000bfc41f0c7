package texture

import (
	"fmt"
	stdimage "image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/jmercer/pathtracer/internal/core"
)

// Image is a texture backed by a decoded raster image. Decoding happens
// once at scene-build time; the pixel buffer is read-only thereafter and
// safe to share across render workers.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x]
	Bilinear      bool
}

// LoadImage decodes a PNG or JPEG file into an Image texture. Decoding
// failures abort scene construction; they are never silently absorbed
// the way hot-path numerical degeneracies are.
func LoadImage(path string, bilinear bool) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := stdimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*w+x] = core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
		}
	}

	return &Image{Width: w, Height: h, Pixels: pixels, Bilinear: bilinear}, nil
}

// at returns the stored color at clamped pixel coordinates.
func (img *Image) at(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	return img.Pixels[y*img.Width+x]
}

// Value implements Texture. v is flipped so v=1 maps to the image's top
// row, matching image-origin-top-left storage against the book's
// v-origin-bottom UV convention.
func (img *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	u -= math.Floor(u)
	v -= math.Floor(v)

	fx := u * float64(img.Width)
	fy := (1 - v) * float64(img.Height)

	if !img.Bilinear {
		x := int(fx)
		y := int(fy)
		return img.at(x, y)
	}

	fx -= 0.5
	fy -= 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := img.at(x0, y0)
	c10 := img.at(x0+1, y0)
	c01 := img.at(x0, y0+1)
	c11 := img.at(x0+1, y0+1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}
