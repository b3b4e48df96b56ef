package framebuf

import "math"

// Color is an 8-bit RGB triple. The zero value is black.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
	Gray  = Color{160, 160, 170}
)

// RGB returns a color from its channels.
func RGB(r, g, b uint8) Color { return Color{r, g, b} }

// Scale multiplies every channel by f and truncates each product back to
// 8 bits. Products are not clamped: see Truncate8.
func (c Color) Scale(f float32) Color {
	return Color{
		Truncate8(float32(c.R) * f),
		Truncate8(float32(c.G) * f),
		Truncate8(float32(c.B) * f),
	}
}

// Truncate8 converts f to a byte by truncating toward zero and keeping the
// low 8 bits, so 300.7 becomes 44 and -10.2 becomes 246. NaN and values
// outside the int64 range become 0.
func Truncate8(f float32) uint8 {
	if math.IsNaN(float64(f)) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return uint8(int64(f))
}
