// Package postprocess transforms finished frames before they are presented.
package postprocess

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// ParseKernel maps nearest, bilinear or catmullrom to a scaler.
func ParseKernel(name string) (draw.Scaler, error) {
	switch strings.ToLower(name) {
	case "", "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.ApproxBiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("postprocess: unknown kernel %q", name)
}

// Resize scales img to w×h with the given kernel. The image is returned
// unchanged when it already has that size.
func Resize(img *image.NRGBA, w, h int, k draw.Scaler) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	k.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ScaleBy resizes img by an integer factor.
func ScaleBy(img *image.NRGBA, factor int, k draw.Scaler) *image.NRGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	return Resize(img, b.Dx()*factor, b.Dy()*factor, k)
}
