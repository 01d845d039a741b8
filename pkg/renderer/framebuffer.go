package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Framebuffer is a dense row-major grid of linear-RGB pixels, the only
// mutable state in a render. Each pixel is written exactly once.
type Framebuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFramebuffer creates a framebuffer with the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the framebuffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// Set writes the linear color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// At returns the linear color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Equal reports whether two framebuffers have identical dimensions and
// bit-identical pixel values
func (fb *Framebuffer) Equal(other *Framebuffer) bool {
	if fb.width != other.width || fb.height != other.height {
		return false
	}
	for i := range fb.pixels {
		if fb.pixels[i] != other.pixels[i] {
			return false
		}
	}
	return true
}

// ToImage converts the framebuffer to an RGBA image. This is the only
// clamp boundary in the system: each component maps NaN to 0, clamps to
// [0, 1], and scales to 8 bits. The linear values themselves may exceed 1.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		v = 0
	}
	return uint8(255 * max(0, min(1, v)))
}
