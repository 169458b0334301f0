package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewGlassScene creates a transparent sphere in front of a checkered wall.
// The wall pattern shows through the sphere bent by refraction.
func NewGlassScene() *Scene {
	s := New()
	s.Ambient = core.NewColor(0.15, 0.15, 0.15, 1.0)

	// Create materials
	glass := s.AddMaterial(material.NewTransparent(core.Gray(1.0)).WithExponent(50))
	yellow := s.AddMaterial(material.NewMaterial(core.NewColor(0.9, 0.8, 0.2, 1.0)).WithExponent(8))
	wall := s.AddMaterial(material.NewMaterial(core.NewColor(0.9, 0.9, 0.9, 1.0)).WithExponent(1))

	s.AddSphere(core.NewVec3(0, 0, -1.6), 0.5, glass)
	s.AddSphere(core.NewVec3(0.9, -0.4, -3), 0.4, yellow)

	s.AddPlane(core.NewVec3(0, 0, -1), -4, wall)

	s.AddDirectionalLight(core.NewVec3(0.2, -0.5, -1), core.NewColor(0.9, 0.9, 0.9, 1.0))

	return s
}
