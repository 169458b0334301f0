package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Color is a four channel RGBA color. Channels are nominally in [0,1]
// but are not clamped until the color is packed for output.
type Color mgl64.Vec4

// NewColor creates a color from its channels
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// Gray creates a color with all four channels set to v
func Gray(v float64) Color {
	return Color{v, v, v, v}
}

// Black is the zero color
var Black = Color{}

// R returns the red channel
func (c Color) R() float64 { return c[0] }

// G returns the green channel
func (c Color) G() float64 { return c[1] }

// B returns the blue channel
func (c Color) B() float64 { return c[2] }

// A returns the alpha channel
func (c Color) A() float64 { return c[3] }

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color(mgl64.Vec4(c).Add(mgl64.Vec4(other)))
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color(mgl64.Vec4(c).Mul(s))
}

// Mul returns the channel-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c[0] * other[0], c[1] * other[1], c[2] * other[2], c[3] * other[3]}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		max(minVal, min(maxVal, c[0])),
		max(minVal, min(maxVal, c[1])),
		max(minVal, min(maxVal, c[2])),
		max(minVal, min(maxVal, c[3])),
	}
}

// ApproxEqual reports whether two colors match within the mgl64 epsilon
func (c Color) ApproxEqual(other Color) bool {
	return mgl64.Vec4(c).ApproxEqual(mgl64.Vec4(other))
}
