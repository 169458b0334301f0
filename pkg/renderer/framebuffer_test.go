package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestFramebuffer_Indexing(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	if len(fb.Pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(fb.Pixels))
	}

	row := fb.Row(1)
	row[2] = 0xdeadbeef

	if fb.Pixels[2+1*3] != 0xdeadbeef {
		t.Error("Row(1) does not alias the framebuffer")
	}
	if fb.At(2, 1) != 0xdeadbeef {
		t.Errorf("At(2,1) = %#08x, want 0xdeadbeef", fb.At(2, 1))
	}
	if len(row) != 3 || cap(row) != 3 {
		t.Errorf("Row should be exactly one row wide, got len %d cap %d", len(row), cap(row))
	}
}

func TestFramebuffer_ImageFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Row(0)[0] = PackColor(core.NewColor(1, 0, 0, 1)) // bottom left
	fb.Row(1)[1] = PackColor(core.NewColor(0, 0, 1, 1)) // top right

	img := fb.Image()

	if c := img.NRGBAAt(0, 1); c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Expected red at image bottom left, got %v", c)
	}
	if c := img.NRGBAAt(1, 0); c != (color.NRGBA{B: 255, A: 255}) {
		t.Errorf("Expected blue at image top right, got %v", c)
	}
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{}) {
		t.Errorf("Expected empty pixel at image top left, got %v", c)
	}
}
