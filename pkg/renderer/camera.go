package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Settings describes one render: image dimensions, vertical field of view
// in radians, and the camera position. Orientation is fixed looking down
// the -Z axis. Immutable per render.
type Settings struct {
	Width  int
	Height int
	FOV    float64
	Camera core.Vec3
}

// DefaultSettings returns the standard render configuration
func DefaultSettings() Settings {
	return Settings{
		Width:  1024,
		Height: 768,
		FOV:    math.Pi / 3,
		Camera: core.NewVec3(0, 0, 0),
	}
}

// Camera maps pixel coordinates to primary rays under a pinhole projection
type Camera struct {
	origin      core.Vec3
	width       float64
	height      float64
	fovScale    float64
	aspectRatio float64
}

// NewCamera creates a pinhole camera from render settings
func NewCamera(settings Settings) *Camera {
	return &Camera{
		origin:      settings.Camera,
		width:       float64(settings.Width),
		height:      float64(settings.Height),
		fovScale:    math.Tan(settings.FOV / 2),
		aspectRatio: float64(settings.Width) / float64(settings.Height),
	}
}

// Ray returns the primary ray through the center of pixel (i, j), with
// aspect-ratio correction and field-of-view scaling. The direction is
// normalized camera-space (x, y, -1).
func (c *Camera) Ray(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/c.width - 1) * c.fovScale * c.aspectRatio
	y := -(2*(float64(j)+0.5)/c.height - 1) * c.fovScale
	direction := core.NewVec3(x, y, -1).Normalize()
	return core.NewRay(c.origin, direction)
}
