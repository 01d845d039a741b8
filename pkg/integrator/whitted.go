// Package integrator implements recursive Whitted-style shading: Phong
// diffuse and specular terms from point lights with hard shadows, plus
// reflective and refractive contributions gathered by bounded recursion.
package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth is the recursion budget shared by all primary rays:
// the number of reflective/refractive bounces a ray may still spawn
const DefaultMaxDepth = 3

// surfaceOffset nudges secondary-ray origins off the surface to prevent
// self-intersection acne
const surfaceOffset = 1e-3

// lightFalloffScale tunes the inverse-square light damping. Not physically
// normalized; the built-in scenes are calibrated against this value.
const lightFalloffScale = 3000.0

var white = core.NewVec3(1, 1, 1)

// Whitted evaluates the Whitted shading model against a scene
type Whitted struct{}

// NewWhitted creates a new Whitted integrator
func NewWhitted() *Whitted {
	return &Whitted{}
}

// CastRay returns the color seen along the ray. The ray direction must be
// unit length. An exhausted depth budget or a ray that escapes the scene
// returns the background color. Degenerate numeric cases propagate as
// sentinels or NaN; clamping happens only at the image encoding boundary.
func (w *Whitted) CastRay(s *scene.Scene, ray core.Ray, depth int) core.Vec3 {
	if depth <= 0 {
		return s.Background
	}

	dist, shape := s.NearestHit(ray)
	if shape == nil {
		return s.Background
	}

	point := ray.At(dist)
	normal := shape.NormalAt(point)
	mat := shape.Material()

	diffuse, specular := w.lightContributions(s, ray, point, normal, mat)

	color := mat.DiffuseColor.Multiply(diffuse * mat.Albedo[material.Diffuse]).
		Add(white.Multiply(specular * mat.Albedo[material.Specular]))

	if weight := mat.Albedo[material.Reflective]; weight > 0 {
		color = color.Add(w.reflectedColor(s, ray, point, normal, depth).Multiply(weight))
	}
	if weight := mat.Albedo[material.Refractive]; weight > 0 {
		color = color.Add(w.refractedColor(s, ray, point, normal, mat, depth).Multiply(weight))
	}

	return color
}

// lightContributions accumulates the Phong diffuse and specular intensities
// from every light that is not occluded at the hit point
func (w *Whitted) lightContributions(s *scene.Scene, ray core.Ray, point, normal core.Vec3, mat *material.Material) (diffuse, specular float64) {
	for _, light := range s.Lights {
		toLight := light.Position.Subtract(point)
		lightDir := toLight.Normalize()
		lightDist := toLight.Length()

		shadowOrigin := offsetOrigin(point, normal, lightDir)
		if w.occluded(s, shadowOrigin, lightDir, lightDist) {
			continue
		}

		damping := lightFalloffScale / light.Position.Subtract(shadowOrigin).LengthSquared()

		diffuse += math.Max(0, normal.Dot(lightDir)) * light.Intensity * damping

		highlight := core.Reflect(lightDir.Negate(), normal).Negate().Dot(ray.Direction)
		specular += math.Pow(math.Max(0, highlight), mat.SpecularExponent) * light.Intensity * damping
	}
	return diffuse, specular
}

// occluded reports whether any shape blocks the segment from the shadow
// origin to the light. Occlusion is binary: hard shadows, no penumbra.
func (w *Whitted) occluded(s *scene.Scene, origin, lightDir core.Vec3, lightDist float64) bool {
	dist, shape := s.NearestHit(core.NewRay(origin, lightDir))
	return shape != nil && dist < lightDist
}

func (w *Whitted) reflectedColor(s *scene.Scene, ray core.Ray, point, normal core.Vec3, depth int) core.Vec3 {
	dir := core.Reflect(ray.Direction, normal).Normalize()
	origin := offsetOrigin(point, normal, dir)
	return w.CastRay(s, core.NewRay(origin, dir), depth-1)
}

func (w *Whitted) refractedColor(s *scene.Scene, ray core.Ray, point, normal core.Vec3, mat *material.Material, depth int) core.Vec3 {
	refracted, ok := core.Refract(ray.Direction, normal, mat.RefractiveIndex)
	if !ok {
		// Total internal reflection: no transmitted contribution
		return core.Vec3{}
	}
	dir := refracted.Normalize()
	origin := offsetOrigin(point, normal, dir)
	return w.CastRay(s, core.NewRay(origin, dir), depth-1)
}

// offsetOrigin shifts a secondary-ray origin off the surface, on the side
// of the surface the outgoing direction points toward
func offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(surfaceOffset))
	}
	return point.Add(normal.Multiply(surfaceOffset))
}
