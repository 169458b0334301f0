package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewMirrorScene creates a mirror sphere flanked by two matte spheres.
// The mirror picks up both neighbours and the checkered floor.
func NewMirrorScene() *Scene {
	s := New()
	s.Ambient = core.NewColor(0.1, 0.1, 0.1, 1.0)

	// Create materials
	mirror := s.AddMaterial(material.NewReflective(core.Gray(1.0)))
	orange := s.AddMaterial(material.NewMaterial(core.NewColor(0.9, 0.5, 0.1, 1.0)).WithExponent(15))
	teal := s.AddMaterial(material.NewMaterial(core.NewColor(0.1, 0.6, 0.6, 1.0)).WithExponent(15))
	floor := s.AddMaterial(material.NewMaterial(core.NewColor(0.7, 0.7, 0.7, 1.0)).WithExponent(2))
	wall := s.AddMaterial(material.NewMaterial(core.NewColor(0.5, 0.2, 0.5, 1.0)).WithExponent(2))

	s.AddSphere(core.NewVec3(0, -0.2, -2.5), 0.8, mirror)
	s.AddSphere(core.NewVec3(-1.2, -0.6, -2), 0.4, orange)
	s.AddSphere(core.NewVec3(1.2, -0.6, -2), 0.4, teal)

	// Floor at y=-1 seen from above: -y - 1 = 0
	s.AddPlane(core.NewVec3(0, -1, 0), -1, floor)

	// Back wall at z=-5
	s.AddPlane(core.NewVec3(0, 0, -1), -5, wall)

	s.AddDirectionalLight(core.NewVec3(-0.4, -1, -0.6), core.NewColor(0.8, 0.8, 0.8, 1.0))
	s.AddDirectionalLight(core.NewVec3(0.6, -0.3, -1), core.NewColor(0.3, 0.3, 0.3, 1.0))

	return s
}
