package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

func TestScene_NearestHit_PicksClosest(t *testing.T) {
	mat := material.NewIvory()
	near := geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat)
	far := geometry.NewSphere(core.NewVec3(0, 0, -20), 1, mat)

	s := &Scene{Shapes: []geometry.Shape{far, near}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	dist, shape := s.NearestHit(ray)
	if shape != near {
		t.Errorf("Expected nearest sphere, got %v", shape)
	}
	if math.Abs(dist-9) > 1e-9 {
		t.Errorf("Expected distance 9, got %f", dist)
	}
}

func TestScene_NearestHit_Miss(t *testing.T) {
	s := &Scene{Shapes: []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, 0, -10), 1, material.NewIvory()),
	}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	dist, shape := s.NearestHit(ray)
	if shape != nil {
		t.Errorf("Expected no shape, got %v", shape)
	}
	if !math.IsInf(dist, 1) {
		t.Errorf("Expected +Inf distance, got %f", dist)
	}
}

func TestScene_NearestHit_TieKeepsFirstListed(t *testing.T) {
	// Two coincident spheres: strict less-than keeps the earlier entry
	mat := material.NewIvory()
	first := geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat)
	second := geometry.NewSphere(core.NewVec3(0, 0, -10), 1, mat)

	s := &Scene{Shapes: []geometry.Shape{first, second}}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	_, shape := s.NearestHit(ray)
	if shape != first {
		t.Error("Expected tie to keep the first-listed shape")
	}
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Scene
	}{
		{"default", NewDefaultScene},
		{"glass", NewGlassScene},
		{"shadow", NewShadowScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()
			if len(s.Shapes) == 0 {
				t.Error("Expected shapes in scene")
			}
			if len(s.Lights) == 0 {
				t.Error("Expected lights in scene")
			}
			for i, l := range s.Lights {
				if l.Intensity <= 0 {
					t.Errorf("Light %d has non-positive intensity %f", i, l.Intensity)
				}
			}
		})
	}
}
