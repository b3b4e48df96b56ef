package present

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"softrender/internal/framebuf"
	"softrender/internal/postprocess"
)

// ErrUnsupportedFormat is returned for output extensions with no encoder.
var ErrUnsupportedFormat = errors.New("present: unsupported image format")

// Format is an output image encoding.
type Format string

const (
	WebP Format = "webp"
	PNG  Format = "png"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case WebP, PNG, TGA:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case PNG:
		return png.Encode(w, img)
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// WriteFile encodes img to path, creating parent directories. The format
// comes from the extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("present: mkdir %s: %w", path, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("present: create %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("present: encode %s: %w", path, err)
	}
	return out.Close()
}

// FramePath inserts a zero-padded frame number before the extension:
// out/spin.webp, 7 -> out/spin_0007.webp.
func FramePath(path string, frame int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_%04d%s", strings.TrimSuffix(path, ext), frame, ext)
}

// ImageWriter is a Presenter that encodes each frame to a file.
type ImageWriter struct {
	// Path is the output file; its extension selects the encoder.
	Path string
	// Numbered writes frame n to FramePath(Path, n) instead of overwriting Path.
	Numbered bool
	// Scale resizes frames by an integer factor before encoding.
	Scale  int
	Kernel draw.Scaler

	frame int
}

// Present implements Presenter.
func (iw *ImageWriter) Present(pix []framebuf.Color, w, h int) error {
	path := iw.Path
	if iw.Numbered {
		path = FramePath(iw.Path, iw.frame)
	}
	iw.frame++
	return WriteFile(path, iw.Image(pix, w, h))
}

// Image converts a frame to the image that will be encoded.
func (iw *ImageWriter) Image(pix []framebuf.Color, w, h int) *image.NRGBA {
	img := framebuf.ToNRGBA(pix, w, h)
	if iw.Scale > 1 {
		k := iw.Kernel
		if k == nil {
			k = draw.NearestNeighbor
		}
		img = postprocess.ScaleBy(img, iw.Scale, k)
	}
	return img
}

// Frames returns how many frames have been presented.
func (iw *ImageWriter) Frames() int { return iw.frame }
