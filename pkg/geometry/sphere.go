package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// tangentEpsilon rejects rays that graze a sphere
const tangentEpsilon = 1e-6

// Sphere represents a sphere shape
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	MaterialIndex int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) Sphere {
	return Sphere{
		Center:        center,
		Radius:        radius,
		MaterialIndex: materialIndex,
	}
}

// Intersect returns the distance to the near side of the sphere.
// Only the smaller root is considered, so rays starting inside the sphere
// do not hit it.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Ray origin relative to sphere center
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < tangentEpsilon {
		return 0, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2.0 * a)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Validate checks the sphere has a positive radius
func (s Sphere) Validate() error {
	if !(s.Radius > 0) {
		return fmt.Errorf("sphere radius must be positive, got %g", s.Radius)
	}
	return nil
}
