package core

// Ray represents a ray with an origin and direction.
// Direction does not need to be normalized.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Inside    bool // travelling inside a refractive medium
}

// NewRay creates a new ray travelling outside any medium
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
