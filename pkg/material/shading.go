package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Diffuse returns the Lambert term color * dot(normal, lightDir).
// The cosine is not clamped: surfaces facing away from the light
// receive a negative contribution.
func Diffuse(lightDir, normal core.Vec3, color core.Color) core.Color {
	return color.Scale(normal.Dot(lightDir))
}

// Specular returns the highlight term for a light direction.
// view is the incoming ray direction as traced, not the direction back
// toward the viewer.
func Specular(view, lightDir, normal core.Vec3, specular core.Color, exponent float64) core.Color {
	v := view.Normalize()
	r := lightDir.Reflect(normal).Normalize()
	vr := math.Max(v.Dot(r), 0)
	return specular.Scale(math.Pow(vr, exponent))
}
