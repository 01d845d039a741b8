// Package material defines the surface description used by the Whitted
// shading model: a base color plus independent weights for the diffuse,
// specular, reflective and refractive contributions.
package material

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Albedo component indices
const (
	Diffuse = iota
	Specular
	Reflective
	Refractive
)

// Material describes how a surface responds to light. The albedo weights
// independently scale the four additive contributions and are not required
// to sum to 1. Materials are immutable after construction and shared by
// pointer across every shape that uses them.
type Material struct {
	RefractiveIndex  float64
	Albedo           [4]float64
	DiffuseColor     core.Vec3
	SpecularExponent float64
}

// New creates a material with the given refractive index, albedo weights,
// base color and Phong specular exponent
func New(refractiveIndex float64, albedo [4]float64, color core.Vec3, specularExponent float64) *Material {
	return &Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     color,
		SpecularExponent: specularExponent,
	}
}

// NewIvory creates the matte ivory preset: mostly diffuse with a modest highlight
func NewIvory() *Material {
	return New(1.0, [4]float64{0.6, 0.3, 0.1, 0.0}, core.NewVec3(0.4, 0.4, 0.3), 50)
}

// NewGlass creates the transparent glass preset
func NewGlass() *Material {
	return New(1.5, [4]float64{0.0, 0.5, 0.1, 0.8}, core.NewVec3(0.6, 0.7, 0.8), 125)
}

// NewRedRubber creates the dull red rubber preset
func NewRedRubber() *Material {
	return New(1.0, [4]float64{0.9, 0.1, 0.0, 0.0}, core.NewVec3(0.3, 0.1, 0.1), 10)
}

// NewMirror creates the near-perfect mirror preset
func NewMirror() *Material {
	return New(1.0, [4]float64{0.0, 10.0, 0.8, 0.0}, core.NewVec3(1.0, 1.0, 1.0), 1425)
}
