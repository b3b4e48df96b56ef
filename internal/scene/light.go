package scene

import (
	"math"

	"softrender/internal/linalg"
)

// Light is a directional light. Dir points from the surface toward the
// light and must be normalized.
type Light struct {
	Dir     Vec3
	Ambient float32
	Direct  float32
	// TwoSided lights back faces as if they faced the light.
	TwoSided bool
}

// DefaultLight shines straight down the view axis at full strength.
func DefaultLight() Light {
	return Light{Dir: Vec3{0, 0, 1}, Direct: 1}
}

// Intensity returns Ambient + Direct·max(n·Dir, 0) for a unit normal n.
// Negative dot products are clamped so back faces get only ambient light;
// the clamp keeps Color.Scale from wrapping on negative factors.
func (l Light) Intensity(n Vec3) float32 {
	d := n.Dot(l.Dir)
	if l.TwoSided {
		d = float32(math.Abs(float64(d)))
	}
	return l.Ambient + l.Direct*max(d, 0)
}

// faceNormal is the unit normal of the counter-clockwise triangle a, b, c.
func faceNormal(a, b, c Vec3) Vec3 {
	return linalg.Normalize(b.Sub(a).Cross(c.Sub(a)))
}
