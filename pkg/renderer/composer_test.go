package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// createRedSphereScene creates a red sphere at (0,0,-1) lit head-on, seen by
// the default camera
func createRedSphereScene() *scene.Scene {
	s := scene.New()
	s.Ambient = core.NewColor(0.1, 0.1, 0.1, 1)
	s.AntiAliasing = false

	red := s.AddMaterial(material.NewMaterial(core.NewColor(1, 0, 0, 1)).WithSpecular(core.Black))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, red)
	s.AddDirectionalLight(core.NewVec3(0, 0, -1), core.Gray(1))
	return s
}

// countingIntegrator returns a fixed color and counts calls
type countingIntegrator struct {
	color core.Color
	calls int
	depth int
}

func (c *countingIntegrator) RayColor(ray core.Ray, depth int) core.Color {
	c.calls++
	c.depth = depth
	return c.color
}

func TestComposer_SampleCount(t *testing.T) {
	tests := []struct {
		name         string
		antiAliasing bool
		config       SamplingConfig
		expected     int
	}{
		{"anti-aliasing off", false, DefaultSamplingConfig(), 1},
		{"anti-aliasing on", true, DefaultSamplingConfig(), 20},
		{"custom sample count", true, SamplingConfig{MaxDepth: 3, AntiAliasSamples: 4}, 4},
		{"zero samples falls back to one", true, SamplingConfig{MaxDepth: 3}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integ := &countingIntegrator{color: core.Gray(0.5)}
			c := NewComposerWithIntegrator(integ, tt.antiAliasing, scene.DefaultCamera(), 4, 4, tt.config)

			color := c.PixelColor(1, 1)
			if integ.calls != tt.expected {
				t.Errorf("Expected %d samples, got %d", tt.expected, integ.calls)
			}
			if c.SamplesPerPixel() != tt.expected {
				t.Errorf("SamplesPerPixel() = %d, want %d", c.SamplesPerPixel(), tt.expected)
			}
			if integ.depth != tt.config.MaxDepth {
				t.Errorf("Expected depth %d, got %d", tt.config.MaxDepth, integ.depth)
			}
			if !color.ApproxEqual(core.Gray(0.5)) {
				t.Errorf("Expected averaged color 0.5, got %v", color)
			}
		})
	}
}

func TestComposer_AntiAliasingMatchesSingleSample(t *testing.T) {
	s := createRedSphereScene()
	s.Ambient = core.NewColor(0.13, 0.07, 0.29, 1)

	single := NewComposer(s, s.Camera, 16, 16, DefaultSamplingConfig())

	s.AntiAliasing = true
	averaged := NewComposer(s, s.Camera, 16, 16, DefaultSamplingConfig())

	for y := 0; y < 16; y += 3 {
		for x := 0; x < 16; x += 3 {
			a := single.PixelColor(x, y)
			b := averaged.PixelColor(x, y)
			for i := 0; i < 4; i++ {
				if math.Abs(a[i]-b[i]) > 1e-9 {
					t.Fatalf("Pixel (%d,%d): single %v, averaged %v", x, y, a, b)
				}
			}
		}
	}
}

func TestComposer_RenderRow(t *testing.T) {
	s := createRedSphereScene()
	c := NewComposer(s, s.Camera, 8, 8, DefaultSamplingConfig())

	row := make([]uint32, 8)
	c.RenderRow(4, row)

	for x := 0; x < 8; x++ {
		if row[x] != c.RenderPixel(x, 4) {
			t.Errorf("Row pixel %d = %#08x, RenderPixel = %#08x", x, row[x], c.RenderPixel(x, 4))
		}
	}
}

func TestComposer_CenterPixelIsRed(t *testing.T) {
	s := createRedSphereScene()
	c := NewComposer(s, s.Camera, 10, 10, DefaultSamplingConfig())

	color := UnpackColor(c.RenderPixel(5, 5))
	if color.R() != 1 || color.G() != 0 || color.B() != 0 {
		t.Errorf("Expected saturated red at the center, got %v", color)
	}

	// Corner rays miss the sphere
	if corner := c.RenderPixel(0, 0); corner != 0 {
		t.Errorf("Expected black corner, got %#08x", corner)
	}
}
