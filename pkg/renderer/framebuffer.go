package renderer

import (
	"image"
	"image/color"
)

// Framebuffer holds packed pixels in row-major order. Pixel (x, y) lives at
// index x + y*Width and row 0 is the bottom of the picture.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// At returns the packed pixel at (x, y)
func (fb *Framebuffer) At(x, y int) uint32 {
	return fb.Pixels[x+y*fb.Width]
}

// Row returns the slice backing row y. Writes go straight to the buffer.
func (fb *Framebuffer) Row(y int) []uint32 {
	start := y * fb.Width
	return fb.Pixels[start : start+fb.Width : start+fb.Width]
}

// Image converts the buffer to an image with row 0 at the bottom. Channels
// are stored unpremultiplied, as packed.
func (fb *Framebuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for j := 0; j < fb.Height; j++ {
		for i := 0; i < fb.Width; i++ {
			p := fb.At(i, j)
			img.SetNRGBA(i, fb.Height-1-j, color.NRGBA{
				R: uint8(p),
				G: uint8(p >> 8),
				B: uint8(p >> 16),
				A: uint8(p >> 24),
			})
		}
	}

	return img
}
