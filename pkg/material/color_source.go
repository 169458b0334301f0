package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for surfaces
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Vec3) core.Color
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Color {
	return s.Color
}

// CheckerTileSize is the edge length of one checkerboard tile in world units
const CheckerTileSize = 0.5

// Checkerboard is a procedural pattern over world X/Y that alternates
// between the full color and the color at half intensity.
type Checkerboard struct {
	Color    core.Color
	TileSize float64
}

// NewCheckerboard creates a checkerboard with the standard tile size
func NewCheckerboard(color core.Color) *Checkerboard {
	return &Checkerboard{Color: color, TileSize: CheckerTileSize}
}

// Evaluate returns the tile color containing point
func (c *Checkerboard) Evaluate(point core.Vec3) core.Color {
	tiles := c.tileIndex(point.X) + c.tileIndex(point.Y)

	// odd tile sums take the dimmed color
	half := tiles*0.5 - math.Trunc(tiles*0.5)
	if half*2 > 0.5 {
		return c.Color.Scale(0.5)
	}
	return c.Color
}

// tileIndex maps a coordinate onto its tile number. Negative coordinates
// are measured from +0.5 so the pattern mirrors around the origin.
func (c *Checkerboard) tileIndex(coord float64) float64 {
	if coord < 0 {
		return math.Floor((0.5 - coord) / c.TileSize)
	}
	return math.Floor(coord / c.TileSize)
}
