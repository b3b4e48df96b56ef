// Package framebuf provides the pixel storage of the renderer: a generic
// width×height grid used both as the color target and as the depth buffer.
package framebuf

// Buffer is a fixed-size 2D grid of samples stored row-major in one slice.
//
// A buffer is created either bottom-up (row stored = height−y−1, used for
// color buffers so y grows upwards on screen) or top-down (row stored = y,
// used for depth). Get and Set do not check bounds; callers clamp first.
type Buffer[D any] struct {
	width  int
	height int
	flipY  bool
	data   []D
}

// New allocates a top-down buffer filled with the zero value of D.
func New[D any](w, h int) *Buffer[D] {
	return &Buffer[D]{width: w, height: h, data: make([]D, w*h)}
}

// NewFlipped allocates a bottom-up buffer filled with the zero value of D.
func NewFlipped[D any](w, h int) *Buffer[D] {
	b := New[D](w, h)
	b.flipY = true
	return b
}

func (b *Buffer[D]) Width() int  { return b.width }
func (b *Buffer[D]) Height() int { return b.height }

// Data returns the raw samples, row-major with the storage row order.
// For a bottom-up buffer the first row is the top of the image.
func (b *Buffer[D]) Data() []D { return b.data }

func (b *Buffer[D]) index(x, y int) int {
	if b.flipY {
		y = b.height - y - 1
	}
	return y*b.width + x
}

// Get returns the sample at (x, y).
func (b *Buffer[D]) Get(x, y int) D { return b.data[b.index(x, y)] }

// Set stores v at (x, y).
func (b *Buffer[D]) Set(x, y int, v D) { b.data[b.index(x, y)] = v }

// InBounds reports whether (x, y) addresses a sample.
func (b *Buffer[D]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Clear resets every sample to the zero value of D.
func (b *Buffer[D]) Clear() {
	clear(b.data)
}

// Fill broadcasts v to every sample.
func (b *Buffer[D]) Fill(v D) {
	for i := range b.data {
		b.data[i] = v
	}
}
