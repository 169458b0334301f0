package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

type LightType string

const (
	LightTypeDirectional LightType = "directional"
	LightTypeSpot        LightType = "spot"
)

// LightSample describes how a light reaches a shading point
type LightSample struct {
	Direction core.Vec3  // Unit direction from the shading point toward the light
	Distance  float64    // Distance to the light, +Inf for directional lights
	Intensity core.Color // Light intensity
}
