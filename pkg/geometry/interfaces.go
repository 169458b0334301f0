package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Intersector finds the nearest surface along a ray
type Intersector interface {
	TraceNearest(ray core.Ray) HitRecord
}
