package framebuf

import (
	"image"
	"math"
)

// ColorBuffer is the render target: a bottom-up buffer of colors.
type ColorBuffer struct {
	*Buffer[Color]
}

// NewColor allocates a black w×h color buffer with a bottom-left origin.
func NewColor(w, h int) *ColorBuffer {
	return &ColorBuffer{NewFlipped[Color](w, h)}
}

// Draw writes c at (x, y). Writes outside the buffer are ignored.
func (cb *ColorBuffer) Draw(x, y int, c Color) {
	if !cb.InBounds(x, y) {
		return
	}
	cb.Set(x, y, c)
}

// Size returns the buffer dimensions.
func (cb *ColorBuffer) Size() (int, int) { return cb.Width(), cb.Height() }

// NRGBA copies the buffer into an opaque image, top row first.
func (cb *ColorBuffer) NRGBA() *image.NRGBA {
	return ToNRGBA(cb.Data(), cb.Width(), cb.Height())
}

// ToNRGBA converts raw row-major samples into an opaque image.
func ToNRGBA(pix []Color, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, c := range pix[:w*h] {
		j := i * 4
		img.Pix[j] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 255
	}
	return img
}

// DepthBuffer stores one depth per pixel; larger values are nearer.
type DepthBuffer = Buffer[float32]

// NewDepth allocates a top-down depth buffer reset to -Inf.
func NewDepth(w, h int) *DepthBuffer {
	d := New[float32](w, h)
	ResetDepth(d)
	return d
}

// ResetDepth fills d with the farthest representable depth.
func ResetDepth(d *DepthBuffer) {
	d.Fill(float32(math.Inf(-1)))
}
