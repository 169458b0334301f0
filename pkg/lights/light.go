package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Light is a directional light or a spotlight. Directional lights only use
// Direction and Intensity; spotlights add a Position and a Cutoff which is
// the cosine of the cone half-angle.
type Light struct {
	Type      LightType
	Direction core.Vec3  // Direction the light travels in
	Position  core.Vec3  // Spotlight position
	Intensity core.Color // Light color and strength
	Cutoff    float64    // Spotlight cone cosine
}

// NewDirectionalLight creates a light arriving from infinitely far away
// travelling along direction
func NewDirectionalLight(direction core.Vec3, intensity core.Color) Light {
	return Light{
		Type:      LightTypeDirectional,
		Direction: direction,
		Intensity: intensity,
	}
}

// NewSpotLight creates a spotlight at position aimed along direction.
// cutoff is the cosine of the cone half-angle.
func NewSpotLight(position, direction core.Vec3, intensity core.Color, cutoff float64) Light {
	return Light{
		Type:      LightTypeSpot,
		Direction: direction,
		Position:  position,
		Intensity: intensity,
		Cutoff:    cutoff,
	}
}

// Sample returns the direction and distance from point to the light.
// It reports false when point lies outside a spotlight's cone.
func (l Light) Sample(point core.Vec3) (LightSample, bool) {
	if l.Type == LightTypeSpot {
		toLight := l.Position.Subtract(point).Normalize()
		if !l.InCone(toLight) {
			return LightSample{}, false
		}
		return LightSample{
			Direction: toLight,
			Distance:  l.Position.Distance(point),
			Intensity: l.Intensity,
		}, true
	}

	return LightSample{
		Direction: l.Direction.Normalize().Negate(),
		Distance:  math.Inf(1),
		Intensity: l.Intensity,
	}, true
}

// InCone reports whether a direction toward the light is inside the spot
// cone. Directional lights have no cone.
func (l Light) InCone(toLight core.Vec3) bool {
	if l.Type != LightTypeSpot {
		return true
	}
	cosAngle := l.Direction.Normalize().Negate().Dot(toLight)
	return !(cosAngle < l.Cutoff)
}

// Validate checks the light is well formed
func (l Light) Validate() error {
	switch l.Type {
	case LightTypeDirectional, LightTypeSpot:
	default:
		return fmt.Errorf("unknown light type %q", l.Type)
	}
	if l.Direction.IsZero() {
		return fmt.Errorf("%s light has zero direction", l.Type)
	}
	if l.Type == LightTypeSpot && (l.Cutoff < -1 || l.Cutoff > 1) {
		return fmt.Errorf("spot cutoff %g is not a cosine", l.Cutoff)
	}
	return nil
}
