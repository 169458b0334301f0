package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates two shiny spheres in front of a checkered back wall
// lit by a single directional light
func NewDefaultScene() *Scene {
	s := New()
	s.Ambient = core.NewColor(0.1, 0.1, 0.1, 1.0)

	// Create materials
	red := s.AddMaterial(material.NewMaterial(core.NewColor(0.8, 0.15, 0.1, 1.0)).WithExponent(10))
	green := s.AddMaterial(material.NewMaterial(core.NewColor(0.15, 0.7, 0.2, 1.0)).WithExponent(30))
	wall := s.AddMaterial(material.NewMaterial(core.NewColor(0.3, 0.4, 0.8, 1.0)).WithExponent(5))

	// Spheres sit between the camera and the wall at z=-3
	s.AddSphere(core.NewVec3(-0.45, -0.1, -1.5), 0.4, red)
	s.AddSphere(core.NewVec3(0.5, 0.25, -2.2), 0.5, green)

	// Wall facing the camera: -z - 3 = 0
	s.AddPlane(core.NewVec3(0, 0, -1), -3, wall)

	s.AddDirectionalLight(core.NewVec3(0.5, -0.7, -1), core.NewColor(0.9, 0.9, 0.9, 1.0))

	return s
}
