// Package raster draws points, lines and triangles onto any DrawTarget.
//
// Every algorithm is a free function built on the single Draw primitive, so
// a new backing store only has to supply Draw and Size. Depth-tested
// triangles additionally take a depth buffer of the same dimensions.
package raster

import (
	"softrender/internal/framebuf"
	"softrender/internal/linalg"
)

// Color is the sample type written to draw targets.
type Color = framebuf.Color

// Point is an integer pixel position.
type Point = linalg.Vec2[int]

// DrawTarget is a pixel sink. Draw must ignore coordinates outside Size.
type DrawTarget interface {
	Draw(x, y int, c Color)
	Size() (w, h int)
}

// Sampler maps a texture coordinate to a color.
type Sampler interface {
	Sample(uv linalg.Vec2[float32]) Color
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(uv linalg.Vec2[float32]) Color

func (f SamplerFunc) Sample(uv linalg.Vec2[float32]) Color { return f(uv) }

// DrawPoint sets a single pixel.
func DrawPoint(dt DrawTarget, p Point, c Color) {
	dt.Draw(p[0], p[1], c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int { return min(a, min(b, c)) }
func max3(a, b, c int) int { return max(a, max(b, c)) }

// bbox returns the screen-clamped bounding box of three points. ok is false
// when the box lies entirely off screen.
func bbox(dt DrawTarget, a, b, c Point) (minX, minY, maxX, maxY int, ok bool) {
	w, h := dt.Size()
	minX = max(min3(a[0], b[0], c[0]), 0)
	minY = max(min3(a[1], b[1], c[1]), 0)
	maxX = min(max3(a[0], b[0], c[0]), w-1)
	maxY = min(max3(a[1], b[1], c[1]), h-1)
	return minX, minY, maxX, maxY, minX <= maxX && minY <= maxY
}
