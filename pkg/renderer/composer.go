package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Composer turns pixel coordinates into packed colors for one scene, camera
// and image size. It holds no mutable state and may be shared by workers.
type Composer struct {
	integrator integrator.Integrator
	camera     scene.Camera
	width      int
	height     int
	maxDepth   int
	samples    int // Samples averaged per pixel
}

// NewComposer creates a composer rendering s through camera with a Whitted
// integrator
func NewComposer(s *scene.Scene, camera scene.Camera, width, height int, config SamplingConfig) *Composer {
	return NewComposerWithIntegrator(integrator.NewWhittedIntegrator(s), s.AntiAliasing, camera, width, height, config)
}

// NewComposerWithIntegrator creates a composer around any integrator
func NewComposerWithIntegrator(integ integrator.Integrator, antiAliasing bool, camera scene.Camera, width, height int, config SamplingConfig) *Composer {
	samples := 1
	if antiAliasing && config.AntiAliasSamples > 1 {
		samples = config.AntiAliasSamples
	}

	return &Composer{
		integrator: integ,
		camera:     camera,
		width:      width,
		height:     height,
		maxDepth:   config.MaxDepth,
		samples:    samples,
	}
}

// SamplesPerPixel returns how many rays are averaged for each pixel
func (c *Composer) SamplesPerPixel() int {
	return c.samples
}

// PixelColor returns the unclamped color of pixel (x, y). With
// anti-aliasing every sample uses the same primary ray, so the average
// equals a single sample up to rounding.
func (c *Composer) PixelColor(x, y int) core.Color {
	ray := PrimaryRay(c.camera, x, y, c.width, c.height)

	if c.samples == 1 {
		return c.integrator.RayColor(ray, c.maxDepth)
	}

	colorAccum := core.Black
	for sample := 0; sample < c.samples; sample++ {
		colorAccum = colorAccum.Add(c.integrator.RayColor(ray, c.maxDepth))
	}
	return colorAccum.Scale(1.0 / float64(c.samples))
}

// RenderPixel returns the packed color of pixel (x, y)
func (c *Composer) RenderPixel(x, y int) uint32 {
	return PackColor(c.PixelColor(x, y))
}

// RenderRow fills row with the packed colors of image row y. row must hold
// at least width pixels.
func (c *Composer) RenderRow(y int, row []uint32) {
	for x := 0; x < c.width; x++ {
		row[x] = c.RenderPixel(x, y)
	}
}
