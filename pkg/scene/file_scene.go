package scene

import (
	"fmt"
	"io"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// NewSceneFromFile creates a scene from a scene text file
func NewSceneFromFile(filename string) (*Scene, error) {
	desc, err := loaders.LoadSceneText(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return FromSceneText(desc)
}

// ParseScene creates a scene from scene text read from r
func ParseScene(r io.Reader) (*Scene, error) {
	desc, err := loaders.ParseSceneText(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return FromSceneText(desc)
}

// FromSceneText converts parsed scene text into a scene. Each object gets
// its own material built from the color record at the same position, and
// spotlights take their positions from the p records in order.
func FromSceneText(desc *loaders.SceneText) (*Scene, error) {
	s := New()

	if desc.Eye != nil {
		v := desc.Eye.Values
		s.Camera = NewCamera(core.NewVec3(v[0], v[1], v[2]))
		s.AntiAliasing = v[3] > 0
	}
	if desc.Ambient != nil {
		s.Ambient = recordColor(*desc.Ambient)
	}

	if err := convertObjects(desc, s); err != nil {
		return nil, err
	}
	if err := convertLights(desc, s); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// convertObjects adds spheres, planes and their materials
func convertObjects(desc *loaders.SceneText, s *Scene) error {
	if len(desc.Colors) != len(desc.Objects) {
		return fmt.Errorf("scene has %d objects but %d colors", len(desc.Objects), len(desc.Colors))
	}

	for i, obj := range desc.Objects {
		color := desc.Colors[i]
		materialIndex := s.AddMaterial(convertMaterial(obj.Type, color))

		v := obj.Values
		if v[3] >= 0 {
			s.AddSphere(core.NewVec3(v[0], v[1], v[2]), v[3], materialIndex)
		} else {
			s.AddPlane(core.NewVec3(v[0], v[1], v[2]), v[3], materialIndex)
		}
	}
	return nil
}

// convertMaterial builds the material for an object record type.
// The color record's fourth value is both the alpha channel and the
// specular exponent.
func convertMaterial(objectType byte, color loaders.Record) material.Material {
	albedo := recordColor(color)

	var m material.Material
	switch objectType {
	case 'r':
		m = material.NewReflective(albedo)
	case 't':
		m = material.NewTransparent(albedo)
	default:
		m = material.NewMaterial(albedo)
	}
	return m.WithExponent(color.Values[3])
}

// convertLights adds directional lights and spotlights
func convertLights(desc *loaders.SceneText, s *Scene) error {
	if len(desc.Intensities) != len(desc.Lights) {
		return fmt.Errorf("scene has %d lights but %d intensities", len(desc.Lights), len(desc.Intensities))
	}

	spotCount := 0
	for _, light := range desc.Lights {
		if isSpot(light) {
			spotCount++
		}
	}
	if spotCount != len(desc.SpotPositions) {
		return fmt.Errorf("scene has %d spotlights but %d spot positions", spotCount, len(desc.SpotPositions))
	}

	nextSpot := 0
	for i, light := range desc.Lights {
		v := light.Values
		direction := core.NewVec3(v[0], v[1], v[2])
		intensity := recordColor(desc.Intensities[i])

		if isSpot(light) {
			p := desc.SpotPositions[nextSpot].Values
			nextSpot++
			s.AddSpotLight(core.NewVec3(p[0], p[1], p[2]), direction, intensity, p[3])
		} else {
			s.AddDirectionalLight(direction, intensity)
		}
	}
	return nil
}

func isSpot(light loaders.Record) bool {
	return light.Values[3] == 1
}

func recordColor(r loaders.Record) core.Color {
	return core.NewColor(r.Values[0], r.Values[1], r.Values[2], r.Values[3])
}
