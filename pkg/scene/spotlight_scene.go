package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSpotlightScene creates a row of spheres lit by a narrow spotlight
// and a dim directional fill light
func NewSpotlightScene() *Scene {
	s := New()
	s.Ambient = core.NewColor(0.05, 0.05, 0.05, 1.0)

	// Create materials
	white := s.AddMaterial(material.NewMaterial(core.NewColor(0.9, 0.9, 0.9, 1.0)).WithExponent(20))
	blue := s.AddMaterial(material.NewMaterial(core.NewColor(0.2, 0.3, 0.9, 1.0)).WithExponent(20))
	wall := s.AddMaterial(material.NewMaterial(core.NewColor(0.6, 0.6, 0.6, 1.0)).WithExponent(1))

	s.AddSphere(core.NewVec3(-0.8, -0.3, -2.5), 0.45, white)
	s.AddSphere(core.NewVec3(0, -0.3, -2.5), 0.45, blue)
	s.AddSphere(core.NewVec3(0.8, -0.3, -2.5), 0.45, white)

	s.AddPlane(core.NewVec3(0, 0, -1), -4, wall)

	// Spotlight above the camera aimed at the middle sphere, 20 degree half-angle
	spotPosition := core.NewVec3(0, 1.5, 0)
	spotDirection := core.NewVec3(0, -0.3, -2.5).Subtract(spotPosition)
	s.AddSpotLight(spotPosition, spotDirection, core.NewColor(1.0, 0.95, 0.8, 1.0), math.Cos(20*math.Pi/180))

	s.AddDirectionalLight(core.NewVec3(0, 0, -1), core.NewColor(0.15, 0.15, 0.15, 1.0))

	return s
}
