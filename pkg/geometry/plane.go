package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane through Center whose orientation is
// derived from its position: the normal is normalize(-Center), constant
// over the whole plane. Tying orientation to the defining point keeps the
// scene description to a single vector; supporting arbitrarily oriented
// planes means adding an independent normal field.
type Plane struct {
	Center core.Vec3
	Mat    *material.Material
}

// NewPlane creates a new plane through the given point
func NewPlane(center core.Vec3, mat *material.Material) *Plane {
	return &Plane{Center: center, Mat: mat}
}

// Intersect tests the ray against the plane. Rays parallel to the plane or
// intersecting behind the origin miss.
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	normal := p.normal()

	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < 1e-8 {
		return math.Inf(1), false
	}

	t := p.Center.Subtract(ray.Origin).Dot(normal) / denom
	if t <= 0 {
		return math.Inf(1), false
	}
	return t, true
}

// NormalAt returns the plane normal, constant regardless of hit point
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.normal()
}

func (p *Plane) normal() core.Vec3 {
	return p.Center.Negate().Normalize()
}

// Material returns the plane's material
func (p *Plane) Material() *material.Material {
	return p.Mat
}
