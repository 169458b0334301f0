package material

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewMaterial_Defaults(t *testing.T) {
	albedo := core.NewColor(0.2, 0.3, 0.4, 1)
	m := NewMaterial(albedo)

	if m.Albedo != albedo || m.Diffuse != albedo {
		t.Errorf("Expected albedo and diffuse %v, got %v / %v", albedo, m.Albedo, m.Diffuse)
	}
	if m.Specular != DefaultSpecular {
		t.Errorf("Expected default specular %v, got %v", DefaultSpecular, m.Specular)
	}
	if !m.IsOpaque() {
		t.Error("Plain material should be opaque")
	}
}

func TestMaterial_IsOpaque(t *testing.T) {
	tests := []struct {
		name     string
		material Material
		expected bool
	}{
		{"plain", NewMaterial(core.Gray(1)), true},
		{"mirror", NewReflective(core.Gray(1)), false},
		{"glass", NewTransparent(core.Gray(1)), false},
		{"partially reflective", Material{Reflectivity: 0.25}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.IsOpaque(); got != tt.expected {
				t.Errorf("Expected IsOpaque=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name        string
		material    Material
		expectError bool
	}{
		{"valid", NewMaterial(core.Gray(1)).WithExponent(32), false},
		{"reflectivity above one", Material{Reflectivity: 1.5}, true},
		{"negative transparency", Material{Transparency: -0.1}, true},
		{"negative exponent", Material{Exponent: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.material.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
