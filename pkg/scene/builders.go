package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the classic four-sphere scene, one sphere per
// material archetype, plus a floor plane and three point lights
func NewDefaultScene() *Scene {
	ivory := material.NewIvory()
	glass := material.NewGlass()
	redRubber := material.NewRedRubber()
	mirror := material.NewMirror()

	return &Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory),
			geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, glass),
			geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber),
			geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror),
			geometry.NewPlane(core.NewVec3(0, -4, 0), redRubber),
		},
		Lights: []Light{
			NewLight(core.NewVec3(-20, 20, 20), 1.5),
			NewLight(core.NewVec3(30, 50, -25), 1.8),
			NewLight(core.NewVec3(30, 20, 30), 1.7),
		},
		Background: core.NewVec3(0.2, 0.7, 0.8),
	}
}

// NewGlassScene creates a refraction-heavy variant: a large glass sphere
// in front of colored diffuse spheres, so most primary rays transmit
func NewGlassScene() *Scene {
	glass := material.NewGlass()
	ivory := material.NewIvory()
	redRubber := material.NewRedRubber()

	return &Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, -10), 3, glass),
			geometry.NewSphere(core.NewVec3(-3, 1, -20), 2, redRubber),
			geometry.NewSphere(core.NewVec3(3, -1, -20), 2, ivory),
			geometry.NewPlane(core.NewVec3(0, -5, 0), ivory),
		},
		Lights: []Light{
			NewLight(core.NewVec3(-20, 20, 20), 1.5),
			NewLight(core.NewVec3(20, 30, 10), 1.7),
		},
		Background: core.NewVec3(0.1, 0.1, 0.15),
	}
}

// NewShadowScene creates a variant with a small occluder between the only
// light and a large matte sphere, producing a pronounced hard shadow
func NewShadowScene() *Scene {
	ivory := material.NewIvory()
	redRubber := material.NewRedRubber()

	return &Scene{
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, -2, -16), 4, ivory),
			geometry.NewSphere(core.NewVec3(-3, 4, -10), 1, redRubber),
			geometry.NewPlane(core.NewVec3(0, -6, 0), redRubber),
		},
		Lights: []Light{
			NewLight(core.NewVec3(-15, 25, 5), 2.0),
		},
		Background: core.NewVec3(0.05, 0.05, 0.08),
	}
}
