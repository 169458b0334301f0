package export

import (
	"fmt"
	"image"

	"github.com/nfnt/resize"
)

// Thumbnail scales img so that its longer side is size pixels, keeping
// the aspect ratio. Images already within size are returned unchanged.
func Thumbnail(img image.Image, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("thumbnail size must be positive, got %d", size)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= size && bounds.Dy() <= size {
		return img, nil
	}

	// resize keeps the aspect ratio when one dimension is 0
	if bounds.Dx() >= bounds.Dy() {
		return resize.Resize(uint(size), 0, img, resize.Bilinear), nil
	}
	return resize.Resize(0, uint(size), img, resize.Bilinear), nil
}
