package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Epsilon offsets secondary ray origins off the surface they leave
const Epsilon = 0.001

// Default refractive indices
const (
	DefaultInsideRefractiveIndex  = 1.5 // Glass spheres
	DefaultOutsideRefractiveIndex = 1.0 // Air
)

// ErrInvalidScene is wrapped by every error returned from Validate
var ErrInvalidScene = errors.New("invalid scene")

// Scene contains all the elements needed for rendering. A scene must not
// be modified while a render is using it.
type Scene struct {
	Camera                 Camera
	Ambient                core.Color
	InsideRefractiveIndex  float64 // Index inside transparent spheres
	OutsideRefractiveIndex float64 // Index of the surrounding medium
	AntiAliasing           bool    // Average several samples per pixel

	Spheres   []geometry.Sphere
	Planes    []geometry.Plane
	Lights    []lights.Light
	Materials []material.Material
}

// New creates an empty scene with default settings
func New() *Scene {
	return &Scene{
		Camera:                 DefaultCamera(),
		Ambient:                core.Gray(1.0),
		InsideRefractiveIndex:  DefaultInsideRefractiveIndex,
		OutsideRefractiveIndex: DefaultOutsideRefractiveIndex,
		AntiAliasing:           true,
	}
}

// AddMaterial registers a material and returns its index
func (s *Scene) AddMaterial(m material.Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// AddSphere adds a sphere using the material at materialIndex
func (s *Scene) AddSphere(center core.Vec3, radius float64, materialIndex int) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, materialIndex))
}

// AddPlane adds the plane dot(normal, P) + d = 0
func (s *Scene) AddPlane(normal core.Vec3, d float64, materialIndex int) {
	s.Planes = append(s.Planes, geometry.NewPlane(normal, d, materialIndex))
}

// AddDirectionalLight adds a light travelling along direction
func (s *Scene) AddDirectionalLight(direction core.Vec3, intensity core.Color) {
	s.Lights = append(s.Lights, lights.NewDirectionalLight(direction, intensity))
}

// AddSpotLight adds a spotlight at position aimed along direction.
// cutoff is the cosine of the cone half-angle.
func (s *Scene) AddSpotLight(position, direction core.Vec3, intensity core.Color, cutoff float64) {
	s.Lights = append(s.Lights, lights.NewSpotLight(position, direction, intensity, cutoff))
}

// MaterialAt returns the material of the object a hit refers to
func (s *Scene) MaterialAt(kind geometry.ObjectKind, index int) (material.Material, error) {
	var materialIndex int
	switch kind {
	case geometry.KindSphere:
		if index < 0 || index >= len(s.Spheres) {
			return material.Material{}, fmt.Errorf("sphere index %d out of range", index)
		}
		materialIndex = s.Spheres[index].MaterialIndex
	case geometry.KindPlane:
		if index < 0 || index >= len(s.Planes) {
			return material.Material{}, fmt.Errorf("plane index %d out of range", index)
		}
		materialIndex = s.Planes[index].MaterialIndex
	default:
		return material.Material{}, fmt.Errorf("no material for object kind %s", kind)
	}

	if materialIndex < 0 || materialIndex >= len(s.Materials) {
		return material.Material{}, fmt.Errorf("material index %d out of range", materialIndex)
	}
	return s.Materials[materialIndex], nil
}

// Intersector returns a brute-force intersector over the scene geometry
func (s *Scene) Intersector() geometry.Intersector {
	return geometry.NewLinearIntersector(s.Spheres, s.Planes)
}

// Validate checks every element of the scene before rendering.
// All returned errors wrap ErrInvalidScene.
func (s *Scene) Validate() error {
	if !(s.InsideRefractiveIndex > 0) || !(s.OutsideRefractiveIndex > 0) {
		return fmt.Errorf("%w: refractive indices must be positive, got %g and %g",
			ErrInvalidScene, s.InsideRefractiveIndex, s.OutsideRefractiveIndex)
	}

	for i, m := range s.Materials {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: material %d: %v", ErrInvalidScene, i, err)
		}
	}

	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("%w: sphere %d: %v", ErrInvalidScene, i, err)
		}
		if !s.validMaterial(sphere.MaterialIndex) {
			return fmt.Errorf("%w: sphere %d: material index %d out of range [0,%d)",
				ErrInvalidScene, i, sphere.MaterialIndex, len(s.Materials))
		}
	}

	for i, plane := range s.Planes {
		if err := plane.Validate(); err != nil {
			return fmt.Errorf("%w: plane %d: %v", ErrInvalidScene, i, err)
		}
		if !s.validMaterial(plane.MaterialIndex) {
			return fmt.Errorf("%w: plane %d: material index %d out of range [0,%d)",
				ErrInvalidScene, i, plane.MaterialIndex, len(s.Materials))
		}
	}

	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return fmt.Errorf("%w: light %d: %v", ErrInvalidScene, i, err)
		}
	}

	return nil
}

func (s *Scene) validMaterial(index int) bool {
	return index >= 0 && index < len(s.Materials)
}

// Clone returns a deep copy of the scene
func (s *Scene) Clone() *Scene {
	clone := *s
	clone.Spheres = append([]geometry.Sphere(nil), s.Spheres...)
	clone.Planes = append([]geometry.Plane(nil), s.Planes...)
	clone.Lights = append([]lights.Light(nil), s.Lights...)
	clone.Materials = append([]material.Material(nil), s.Materials...)
	return &clone
}
