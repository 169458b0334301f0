package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// MissDistance is the hit distance reported when a ray hits nothing
const MissDistance = -1.0

// ObjectKind tags which collection a hit object belongs to
type ObjectKind int

const (
	KindNone ObjectKind = iota
	KindSphere
	KindPlane
)

func (k ObjectKind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	default:
		return "none"
	}
}

// HitRecord contains information about the nearest ray-object intersection
type HitRecord struct {
	Distance    float64    // Parameter t along the ray, MissDistance on a miss
	Position    core.Vec3  // World-space point of intersection
	Normal      core.Vec3  // World-space surface normal
	ObjectIndex int        // Index into the scene's spheres or planes
	Kind        ObjectKind // Which collection ObjectIndex refers to
}

// Miss returns the record for a ray that hit nothing
func Miss() HitRecord {
	return HitRecord{Distance: MissDistance, ObjectIndex: -1, Kind: KindNone}
}

// IsHit reports whether the record describes an intersection
func (h HitRecord) IsHit() bool {
	return h.Distance >= 0
}
