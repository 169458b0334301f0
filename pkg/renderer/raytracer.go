package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Default image size
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	MaxDepth         int // Maximum ray recursion depth
	AntiAliasSamples int // Samples per pixel when the scene enables anti-aliasing
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		MaxDepth:         5,
		AntiAliasSamples: 20,
	}
}

// Raytracer renders scenes into framebuffers. It keeps no state between
// renders, so one Raytracer may serve concurrent Render calls.
type Raytracer struct {
	Width      int
	Height     int
	Config     SamplingConfig
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	Logger     core.Logger // Progress output, nil for none
}

// NewRaytracer creates a raytracer for images of the given size
func NewRaytracer(width, height int) *Raytracer {
	return &Raytracer{
		Width:  width,
		Height: height,
		Config: DefaultSamplingConfig(),
	}
}

// NewDefaultRaytracer creates an 800x800 raytracer
func NewDefaultRaytracer() *Raytracer {
	return NewRaytracer(DefaultWidth, DefaultHeight)
}

// Render validates the scene and renders it through camera, one row per
// worker task. Rows complete in no particular order.
func (rt *Raytracer) Render(s *scene.Scene, camera scene.Camera) (*Framebuffer, RenderStats, error) {
	if rt.Width <= 0 || rt.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", rt.Width, rt.Height)
	}
	if rt.Config.MaxDepth <= 0 {
		return nil, RenderStats{}, fmt.Errorf("max depth must be positive, got %d", rt.Config.MaxDepth)
	}
	if err := s.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("cannot render: %w", err)
	}

	logger := rt.Logger
	if logger == nil {
		logger = discardLogger{}
	}

	start := time.Now()
	framebuffer := NewFramebuffer(rt.Width, rt.Height)
	composer := NewComposer(s, camera, rt.Width, rt.Height, rt.Config)

	workerPool := NewWorkerPool(composer, framebuffer, rt.NumWorkers)
	workerPool.Start()

	logger.Printf("Rendering %dx%d, %d samples per pixel (using %d workers)...\n",
		rt.Width, rt.Height, composer.SamplesPerPixel(), workerPool.GetNumWorkers())

	for y := 0; y < rt.Height; y++ {
		workerPool.SubmitTask(RowTask{Y: y})
	}

	stats := RenderStats{
		SamplesPerPixel: composer.SamplesPerPixel(),
		Workers:         workerPool.GetNumWorkers(),
	}

	var firstErr error
	for i := 0; i < rt.Height; i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
	}
	workerPool.Stop()

	if firstErr != nil {
		return nil, stats, fmt.Errorf("render failed: %w", firstErr)
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(framebuffer.Image())

	logger.Printf("Rendered %d pixels (%d samples) in %v\n",
		stats.TotalPixels, stats.TotalSamples, stats.Duration)

	return framebuffer, stats, nil
}
