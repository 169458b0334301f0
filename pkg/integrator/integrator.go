package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the color seen along ray, recursing at most depth
	// times for secondary rays
	RayColor(ray core.Ray, depth int) core.Color
}
