package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const twoLightScene = `# Scene: Test
e 0 0.5 3 1
a 0.1 0.2 0.3 1
o 0 0 -1 0.5
r 1 0 -2 0.25
t -1 0 -2 0.25
o 0 0 -1 -4
c 1 0 0 10
c 0.9 0.9 0.9 20
c 1 1 1 30
c 0.5 0.5 0.5 5
d 0 -1 -1 0
d 0 -0.5 -1 1
p 0 2 1 0.9
i 0.8 0.8 0.8 1
i 1 1 0.5 1
`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(twoLightScene))
	if err != nil {
		t.Fatalf("ParseScene() error: %v", err)
	}

	if s.Camera.Position != core.NewVec3(0, 0.5, 3) {
		t.Errorf("Expected eye (0,0.5,3), got %v", s.Camera.Position)
	}
	if !s.AntiAliasing {
		t.Error("Expected anti-aliasing from eye record")
	}
	if s.Ambient != core.NewColor(0.1, 0.2, 0.3, 1) {
		t.Errorf("Unexpected ambient %v", s.Ambient)
	}

	if len(s.Spheres) != 3 || len(s.Planes) != 1 || len(s.Materials) != 4 {
		t.Fatalf("Expected 3 spheres, 1 plane, 4 materials; got %d, %d, %d",
			len(s.Spheres), len(s.Planes), len(s.Materials))
	}

	// Material index follows object order across spheres and planes
	if s.Planes[0].MaterialIndex != 3 {
		t.Errorf("Expected plane material 3, got %d", s.Planes[0].MaterialIndex)
	}
	if s.Planes[0].D != -4 || s.Planes[0].Normal != core.NewVec3(0, 0, -1) {
		t.Errorf("Unexpected plane %+v", s.Planes[0])
	}

	opaque := s.Materials[0]
	if !opaque.IsOpaque() || opaque.Exponent != 10 {
		t.Errorf("Unexpected opaque material %+v", opaque)
	}
	if opaque.Specular != core.NewColor(0.7, 0.7, 0.7, 1) {
		t.Errorf("Expected default specular, got %v", opaque.Specular)
	}
	if opaque.Diffuse != opaque.Albedo {
		t.Errorf("Expected diffuse to equal albedo, got %v and %v", opaque.Diffuse, opaque.Albedo)
	}
	if s.Materials[1].Reflectivity != 1 || s.Materials[1].Transparency != 0 {
		t.Errorf("Expected reflective material, got %+v", s.Materials[1])
	}
	if s.Materials[2].Transparency != 1 || s.Materials[2].Reflectivity != 0 {
		t.Errorf("Expected transparent material, got %+v", s.Materials[2])
	}

	if len(s.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(s.Lights))
	}
	if s.Lights[0].Type != lights.LightTypeDirectional {
		t.Errorf("Expected first light directional, got %s", s.Lights[0].Type)
	}
	spot := s.Lights[1]
	if spot.Type != lights.LightTypeSpot {
		t.Fatalf("Expected second light spot, got %s", spot.Type)
	}
	if spot.Position != core.NewVec3(0, 2, 1) || math.Abs(spot.Cutoff-0.9) > 1e-12 {
		t.Errorf("Unexpected spot position/cutoff %v %f", spot.Position, spot.Cutoff)
	}
	if spot.Intensity != core.NewColor(1, 1, 0.5, 1) {
		t.Errorf("Unexpected spot intensity %v", spot.Intensity)
	}
}

func TestParseScene_AntiAliasingOff(t *testing.T) {
	s, err := ParseScene(strings.NewReader("e 0 0 2 0\n"))
	if err != nil {
		t.Fatalf("ParseScene() error: %v", err)
	}
	if s.AntiAliasing {
		t.Error("Expected anti-aliasing off")
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		errText    string
		invalidErr bool
	}{
		{
			name:    "missing color",
			content: "o 0 0 -1 0.5\n",
			errText: "1 objects but 0 colors",
		},
		{
			name:    "missing intensity",
			content: "d 0 -1 0 0\n",
			errText: "1 lights but 0 intensities",
		},
		{
			name:    "missing spot position",
			content: "d 0 -1 0 1\ni 1 1 1 1\n",
			errText: "1 spotlights but 0 spot positions",
		},
		{
			name:       "zero plane normal",
			content:    "o 0 0 0 -1\nc 1 1 1 1\n",
			errText:    "normal",
			invalidErr: true,
		},
		{
			name:    "syntax error",
			content: "o 0 0\n",
			errText: "expected 4 values",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %v", tt.errText, err)
			}
			if errors.Is(err, ErrInvalidScene) != tt.invalidErr {
				t.Errorf("errors.Is(err, ErrInvalidScene) = %t, want %t", !tt.invalidErr, tt.invalidErr)
			}
		})
	}
}
