package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestFramebuffer_SetAt(t *testing.T) {
	fb := NewFramebuffer(4, 3)

	c := core.NewVec3(0.1, 0.2, 0.3)
	fb.Set(3, 2, c)
	if got := fb.At(3, 2); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}

	// Neighboring pixels stay untouched
	if got := fb.At(2, 2); got != (core.Vec3{}) {
		t.Errorf("Expected zero pixel, got %v", got)
	}
	if got := fb.At(3, 1); got != (core.Vec3{}) {
		t.Errorf("Expected zero pixel, got %v", got)
	}
}

func TestFramebuffer_ToImage_Clamping(t *testing.T) {
	// Out-of-range components clamp, NaN maps to 0, Inf clamps to 1
	fb := NewFramebuffer(4, 1)
	fb.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	fb.Set(1, 0, core.NewVec3(2.0, -1.0, 1.0))
	fb.Set(2, 0, core.NewVec3(math.NaN(), math.NaN(), 0.5))
	fb.Set(3, 0, core.NewVec3(math.Inf(1), 0, 0))

	img := fb.ToImage()

	tests := []struct {
		name     string
		x        int
		expected color.RGBA
	}{
		{"mid gray", 0, color.RGBA{127, 127, 127, 255}},
		{"clamped", 1, color.RGBA{255, 0, 255, 255}},
		{"NaN to black", 2, color.RGBA{0, 0, 127, 255}},
		{"Inf to white", 3, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, 0); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFramebuffer_Equal(t *testing.T) {
	a := NewFramebuffer(2, 2)
	b := NewFramebuffer(2, 2)
	if !a.Equal(b) {
		t.Error("Expected empty framebuffers to be equal")
	}

	a.Set(1, 1, core.NewVec3(1, 0, 0))
	if a.Equal(b) {
		t.Error("Expected framebuffers to differ after write")
	}

	if a.Equal(NewFramebuffer(2, 3)) {
		t.Error("Expected different dimensions to compare unequal")
	}
}
