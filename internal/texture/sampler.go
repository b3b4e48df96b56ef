package texture

import (
	"fmt"
	"image"
	"strings"

	"softrender/internal/framebuf"
	"softrender/internal/linalg"
)

// Filter selects how a Texture reconstructs colors between texels.
type Filter int

const (
	// Nearest picks the texel under (u·w, h·(1−v)), clamped to the image.
	Nearest Filter = iota
	// Bilinear blends the four surrounding texels with wrapped UVs.
	Bilinear
)

// ParseFilter accepts "nearest" (or empty) and "bilinear".
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "", "nearest":
		return Nearest, nil
	case "bilinear":
		return Bilinear, nil
	}
	return Nearest, fmt.Errorf("texture: unknown filter %q", s)
}

// Texture samples an image with v = 0 at the bottom row.
type Texture struct {
	img    *image.NRGBA
	filter Filter
}

// New wraps img for sampling.
func New(img *image.NRGBA, filter Filter) *Texture {
	return &Texture{img: img, filter: filter}
}

// Image returns the underlying image.
func (t *Texture) Image() *image.NRGBA { return t.img }

// Sample implements raster.Sampler.
func (t *Texture) Sample(uv linalg.Vec2[float32]) framebuf.Color {
	if t.filter == Bilinear {
		r, g, b, _ := sampleBilinear(t.img, float64(uv[0]), 1-float64(uv[1]))
		return framebuf.Color{R: r, G: g, B: b}
	}
	return t.sampleNearest(uv)
}

func (t *Texture) sampleNearest(uv linalg.Vec2[float32]) framebuf.Color {
	w, h := t.img.Rect.Dx(), t.img.Rect.Dy()
	x := int(uv[0] * float32(w))
	y := int(float32(h) * (1 - uv[1]))
	x = min(max(x, 0), w-1)
	y = min(max(y, 0), h-1)
	i := y*t.img.Stride + x*4
	return framebuf.Color{R: t.img.Pix[i], G: t.img.Pix[i+1], B: t.img.Pix[i+2]}
}

// sampleBilinear filters with UV wrapping; v is measured from the top row.
func sampleBilinear(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	blend := func(c int) uint8 {
		f := float64(pix[i00+c])*w00 + float64(pix[i10+c])*w10 +
			float64(pix[i01+c])*w01 + float64(pix[i11+c])*w11
		return uint8(f + 0.5)
	}
	return blend(0), blend(1), blend(2), blend(3)
}
