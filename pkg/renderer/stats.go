package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of primary rays traced
	SamplesPerPixel  int           // Samples averaged per pixel
	Rows             int           // Rows completed
	Workers          int           // Workers used
	Duration         time.Duration // Wall time of the render
	AverageLuminance float64       // Mean luminance of the final image
}

// merge adds the counters of a row result
func (s *RenderStats) merge(row RenderStats) {
	s.TotalPixels += row.TotalPixels
	s.TotalSamples += row.TotalSamples
	s.Rows += row.Rows
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image
// with channels scaled to [0,1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			total += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return total / float64(pixels)
}
