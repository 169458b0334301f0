package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// PackColor clamps a color to [0,1] and packs it into 32 bits with red in
// the least significant byte and alpha in the most significant. Channels are
// truncated, not rounded.
func PackColor(c core.Color) uint32 {
	c = c.Clamp(0.0, 1.0)

	r := uint32(c.R() * 255)
	g := uint32(c.G() * 255)
	b := uint32(c.B() * 255)
	a := uint32(c.A() * 255)

	return r | g<<8 | b<<16 | a<<24
}

// UnpackColor is the inverse of PackColor up to quantization
func UnpackColor(p uint32) core.Color {
	return core.NewColor(
		float64(p&0xff)/255,
		float64(p>>8&0xff)/255,
		float64(p>>16&0xff)/255,
		float64(p>>24&0xff)/255,
	)
}
