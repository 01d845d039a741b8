package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Shape is the interface for objects that can be hit by rays.
// Intersect returns the distance along the ray to the nearest valid
// intersection; a miss returns (math.Inf(1), false). NormalAt returns the
// unit surface normal at a point assumed to lie on the shape.
type Shape interface {
	Intersect(ray core.Ray) (float64, bool)
	NormalAt(point core.Vec3) core.Vec3
	Material() *material.Material
}
