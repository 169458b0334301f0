package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultSpecular is the highlight color given to materials that do not set one
var DefaultSpecular = core.NewColor(0.7, 0.7, 0.7, 1.0)

// Material describes how a surface responds to light. Materials are small
// value types shared by index from the scene geometry.
type Material struct {
	Albedo       core.Color // Base surface color
	Diffuse      core.Color // Diffuse color (kept alongside albedo, shading uses albedo)
	Specular     core.Color // Highlight color, also the reflection attenuation
	Reflectivity float64    // 0 = not a mirror, >0 spawns reflection rays
	Transparency float64    // 0 = opaque, >0 spawns refraction rays
	Exponent     float64    // Specular exponent
}

// NewMaterial creates an opaque, non-reflective material with the given albedo
func NewMaterial(albedo core.Color) Material {
	return Material{
		Albedo:   albedo,
		Diffuse:  albedo,
		Specular: DefaultSpecular,
	}
}

// NewReflective creates a mirror material
func NewReflective(albedo core.Color) Material {
	m := NewMaterial(albedo)
	m.Reflectivity = 1.0
	return m
}

// NewTransparent creates a fully transparent material
func NewTransparent(albedo core.Color) Material {
	m := NewMaterial(albedo)
	m.Transparency = 1.0
	return m
}

// WithExponent returns a copy of the material with the given specular exponent
func (m Material) WithExponent(exponent float64) Material {
	m.Exponent = exponent
	return m
}

// WithSpecular returns a copy of the material with the given specular color
func (m Material) WithSpecular(specular core.Color) Material {
	m.Specular = specular
	return m
}

// IsOpaque reports whether the material neither reflects nor transmits rays.
// Only opaque materials receive local illumination.
func (m Material) IsOpaque() bool {
	return m.Reflectivity <= 0 && m.Transparency <= 0
}

// Validate checks the scalar parameters are within range
func (m Material) Validate() error {
	if m.Reflectivity < 0 || m.Reflectivity > 1 {
		return fmt.Errorf("reflectivity %g outside [0,1]", m.Reflectivity)
	}
	if m.Transparency < 0 || m.Transparency > 1 {
		return fmt.Errorf("transparency %g outside [0,1]", m.Transparency)
	}
	if m.Exponent < 0 {
		return fmt.Errorf("negative specular exponent %g", m.Exponent)
	}
	return nil
}
