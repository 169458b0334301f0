package material

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestDiffuse_MatchesCosineWithoutClamping(t *testing.T) {
	albedo := core.NewColor(0.8, 0.4, 0.2, 1)
	normal := core.NewVec3(0, 0, 1)

	tests := []struct {
		name     string
		lightDir core.Vec3
		cosine   float64
	}{
		{"head-on", core.NewVec3(0, 0, 1), 1},
		{"60 degrees", core.NewVec3(math.Sqrt(3)/2, 0, 0.5), 0.5},
		{"grazing", core.NewVec3(1, 0, 0), 0},
		{"behind surface stays negative", core.NewVec3(0, 0, -1), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diffuse(tt.lightDir, normal, albedo)
			expected := albedo.Scale(tt.cosine)
			if !got.ApproxEqual(expected) {
				t.Errorf("Expected %v, got %v", expected, got)
			}
		})
	}
}

func TestSpecular(t *testing.T) {
	specular := core.NewColor(0.7, 0.7, 0.7, 1)
	normal := core.NewVec3(0, 0, 1)
	view := core.NewVec3(0, 0, -1) // incoming ray direction

	// Reflecting the head-on light gives (0,0,-1), aligned with the incoming ray
	got := Specular(view, core.NewVec3(0, 0, 1), normal, specular, 16)
	if !got.ApproxEqual(specular) {
		t.Errorf("Expected full highlight %v, got %v", specular, got)
	}

	// A grazing light reflects perpendicular to the ray
	got = Specular(view, core.NewVec3(0, 1, 0), normal, specular, 16)
	if !got.ApproxEqual(core.Black) {
		t.Errorf("Expected no highlight, got %v", got)
	}

	// Zero exponent turns any non-negative alignment into a full highlight
	got = Specular(view, core.NewVec3(0, 1, 1).Normalize(), normal, specular, 0)
	if !got.ApproxEqual(specular) {
		t.Errorf("Expected full highlight for zero exponent, got %v", got)
	}
}
