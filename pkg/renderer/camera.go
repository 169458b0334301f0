package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// PrimaryRay returns the ray through pixel (x, y) of a width x height image.
// Pixels map onto the square [-1,1]x[-1,1] on the z=0 plane with y=0 at the
// bottom; the ray runs from the camera position toward that point offset by
// the camera position, so direction = (ndcX, ndcY, 0) - position.
func PrimaryRay(camera scene.Camera, x, y, width, height int) core.Ray {
	ndcX := float64(x)/float64(width)*2 - 1
	ndcY := float64(y)/float64(height)*2 - 1

	direction := core.NewVec3(ndcX, ndcY, 0).Subtract(camera.Position)
	return core.NewRay(camera.Position, direction)
}
