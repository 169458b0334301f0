package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// WhittedIntegrator implements recursive Whitted ray tracing: local
// illumination with hard shadows on opaque surfaces, plus mirror
// reflection and refraction rays.
type WhittedIntegrator struct {
	scene       *scene.Scene
	intersector geometry.Intersector
}

// NewWhittedIntegrator creates an integrator for a scene using brute-force
// intersection
func NewWhittedIntegrator(s *scene.Scene) *WhittedIntegrator {
	return NewWhittedIntegratorWithIntersector(s, s.Intersector())
}

// NewWhittedIntegratorWithIntersector creates an integrator that finds hits
// with the given intersector. The intersector must index the scene's
// spheres and planes.
func NewWhittedIntegratorWithIntersector(s *scene.Scene, intersector geometry.Intersector) *WhittedIntegrator {
	return &WhittedIntegrator{
		scene:       s,
		intersector: intersector,
	}
}

// RayColor computes the color for a single ray
func (w *WhittedIntegrator) RayColor(ray core.Ray, depth int) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black
	}

	hit := w.intersector.TraceNearest(ray)
	if !hit.IsHit() {
		return core.Black
	}

	mat, err := w.scene.MaterialAt(hit.Kind, hit.ObjectIndex)
	if err != nil {
		// Validated scenes never get here
		return core.Black
	}

	color := core.Black

	// Mirrors and glass only show what their secondary rays bring back
	if mat.IsOpaque() {
		objectColor := w.objectColor(hit, mat)
		color = objectColor.Mul(w.scene.Ambient)
		color = color.Add(w.localIllumination(ray, hit, mat, objectColor))
	}

	if mat.Reflectivity > 0 {
		color = color.Add(w.reflection(ray, hit, mat, depth))
	}

	if mat.Transparency > 0 {
		color = color.Add(w.refraction(ray, hit, mat, depth))
	}

	return color
}

// objectColor returns the surface color at the hit. Planes are shaded with a
// checkerboard of their albedo.
func (w *WhittedIntegrator) objectColor(hit geometry.HitRecord, mat material.Material) core.Color {
	var source material.ColorSource = material.NewSolidColor(mat.Albedo)
	if hit.Kind == geometry.KindPlane {
		source = material.NewCheckerboard(mat.Albedo)
	}
	return source.Evaluate(hit.Position)
}

// localIllumination sums diffuse and specular terms over every light that
// reaches the hit point unoccluded
func (w *WhittedIntegrator) localIllumination(ray core.Ray, hit geometry.HitRecord, mat material.Material, objectColor core.Color) core.Color {
	total := core.Black

	for _, light := range w.scene.Lights {
		sample, ok := light.Sample(hit.Position)
		if !ok {
			continue
		}

		if w.inShadow(hit, sample.Direction, sample.Distance) {
			continue
		}

		diffuse := material.Diffuse(sample.Direction, hit.Normal, objectColor)
		specular := material.Specular(ray.Direction, sample.Direction, hit.Normal, mat.Specular, mat.Exponent)
		total = total.Add(diffuse.Add(specular).Mul(sample.Intensity))
	}

	return total
}

// inShadow reports whether anything lies between the hit and a light
// distance away along toLight
func (w *WhittedIntegrator) inShadow(hit geometry.HitRecord, toLight core.Vec3, distance float64) bool {
	shadowRay := core.NewRay(hit.Position.Add(hit.Normal.Multiply(scene.Epsilon)), toLight)
	blocker := w.intersector.TraceNearest(shadowRay)
	return blocker.IsHit() && blocker.Distance < distance
}

// reflection traces the mirror ray, tinted by the specular color
func (w *WhittedIntegrator) reflection(ray core.Ray, hit geometry.HitRecord, mat material.Material, depth int) core.Color {
	origin := hit.Position.Add(hit.Normal.Multiply(scene.Epsilon))
	reflected := core.NewRay(origin, ray.Direction.Reflect(hit.Normal))
	return mat.Specular.Mul(w.RayColor(reflected, depth-1))
}

// refraction traces the transmitted ray, scaled by transparency. Rays
// outside a medium enter it and rays inside leave it.
func (w *WhittedIntegrator) refraction(ray core.Ray, hit geometry.HitRecord, mat material.Material, depth int) core.Color {
	n1, n2 := w.scene.OutsideRefractiveIndex, w.scene.InsideRefractiveIndex
	if ray.Inside {
		n1, n2 = n2, n1
	}

	direction := material.Refract(ray.Direction, hit.Normal, n1, n2)
	if direction.IsZero() {
		// Total internal reflection
		return core.Black
	}

	origin := hit.Position.Subtract(hit.Normal.Multiply(scene.Epsilon))
	refracted := core.Ray{Origin: origin, Direction: direction, Inside: !ray.Inside}
	return w.RayColor(refracted, depth-1).Scale(mat.Transparency)
}
