package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LinearIntersector tests every sphere and plane for each ray
type LinearIntersector struct {
	Spheres []Sphere
	Planes  []Plane
}

// NewLinearIntersector creates an intersector over the given geometry.
// The slices are shared, not copied, and must not change while in use.
func NewLinearIntersector(spheres []Sphere, planes []Plane) *LinearIntersector {
	return &LinearIntersector{
		Spheres: spheres,
		Planes:  planes,
	}
}

// TraceNearest returns the closest hit along the ray, or Miss().
// When a sphere and a plane are equally close the sphere wins.
func (li *LinearIntersector) TraceNearest(ray core.Ray) HitRecord {
	closestSphere := -1
	sphereT := math.MaxFloat64
	for i, sphere := range li.Spheres {
		if t, ok := sphere.Intersect(ray); ok && t < sphereT {
			sphereT = t
			closestSphere = i
		}
	}

	closestPlane := -1
	planeT := math.MaxFloat64
	for i, plane := range li.Planes {
		if t, ok := plane.Intersect(ray); ok && t < planeT {
			planeT = t
			closestPlane = i
		}
	}

	if closestSphere < 0 && closestPlane < 0 {
		return Miss()
	}
	if closestSphere < 0 || planeT < sphereT {
		return li.planeHit(ray, planeT, closestPlane)
	}
	return li.sphereHit(ray, sphereT, closestSphere)
}

func (li *LinearIntersector) sphereHit(ray core.Ray, t float64, index int) HitRecord {
	point := ray.At(t)
	return HitRecord{
		Distance:    t,
		Position:    point,
		Normal:      li.Spheres[index].NormalAt(point),
		ObjectIndex: index,
		Kind:        KindSphere,
	}
}

func (li *LinearIntersector) planeHit(ray core.Ray, t float64, index int) HitRecord {
	return HitRecord{
		Distance:    t,
		Position:    ray.At(t),
		Normal:      li.Planes[index].SurfaceNormal(),
		ObjectIndex: index,
		Kind:        KindPlane,
	}
}
