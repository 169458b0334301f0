package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Camera places the eye in the scene. Primary rays only depend on
// Position; Target and Up are carried for scene descriptions and are not
// used by the projection.
type Camera struct {
	Position core.Vec3
	Target   core.Vec3
	Up       core.Vec3
}

// DefaultCamera returns a camera one unit in front of the origin looking down -Z
func DefaultCamera() Camera {
	return Camera{
		Position: core.NewVec3(0, 0, 1),
		Target:   core.NewVec3(0, 0, 0),
		Up:       core.NewVec3(0, 1, 0),
	}
}

// NewCamera creates a camera at position with the default target and up vectors
func NewCamera(position core.Vec3) Camera {
	c := DefaultCamera()
	c.Position = position
	return c
}
