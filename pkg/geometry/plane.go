package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// parallelEpsilon rejects rays running along a plane
const parallelEpsilon = 1e-6

// Plane represents an infinite plane dot(Normal, P) + D = 0
type Plane struct {
	Normal        core.Vec3 // Plane normal, need not be unit length
	D             float64   // Signed offset
	MaterialIndex int
}

// NewPlane creates a new plane
func NewPlane(normal core.Vec3, d float64, materialIndex int) Plane {
	return Plane{
		Normal:        normal,
		D:             d,
		MaterialIndex: materialIndex,
	}
}

// Intersect returns the distance along the ray to the plane
func (p Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.D) / denominator
	if t < 0 {
		return 0, false
	}
	return t, true
}

// SurfaceNormal returns the shading normal. It always faces against the
// stored normal, whichever side the ray arrives from.
func (p Plane) SurfaceNormal() core.Vec3 {
	return p.Normal.Normalize().Negate()
}

// Validate checks the plane has a usable normal
func (p Plane) Validate() error {
	if p.Normal.IsZero() {
		return fmt.Errorf("plane normal must be non-zero")
	}
	return nil
}
