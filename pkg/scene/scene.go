package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Light is a point light with no falloff parameters beyond intensity;
// distance damping is applied at shade time
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// Scene contains all the elements needed for rendering: shapes, point
// lights, and the background color returned for rays that hit nothing.
// A scene is immutable for the duration of a render.
type Scene struct {
	Shapes     []geometry.Shape
	Lights     []Light
	Background core.Vec3
}

// NearestHit scans every shape and returns the closest intersection
// distance along the ray together with the shape that produced it.
// Strict less-than keeps the earlier shape when two are equidistant.
// Returns (+Inf, nil) when nothing is hit.
func (s *Scene) NearestHit(ray core.Ray) (float64, geometry.Shape) {
	nearest := math.Inf(1)
	var nearestShape geometry.Shape

	for _, shape := range s.Shapes {
		if dist, hit := shape.Intersect(ray); hit && dist < nearest {
			nearest = dist
			nearestShape = shape
		}
	}

	return nearest, nearestShape
}
