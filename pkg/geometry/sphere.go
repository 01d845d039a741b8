package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Intersect tests the ray against the sphere using the projection-distance
// form of the ray-sphere quadratic. The near intersection is preferred;
// when the ray origin is inside the sphere the near root is behind the
// origin and the far root is returned instead.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca

	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return math.Inf(1), false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t <= 0 {
		t = tca + thc
	}
	if t <= 0 {
		// Sphere is entirely behind the ray origin
		return math.Inf(1), false
	}
	return t, true
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() *material.Material {
	return s.Mat
}
