// Package present hands finished frames to their destination: encoded image
// files or a live window (see the window subpackage).
package present

import (
	"errors"

	"softrender/internal/framebuf"
)

// ErrExit is returned by a frame step to stop an interactive presenter.
var ErrExit = errors.New("present: exit requested")

// Presenter consumes the raw row-major samples of a finished color buffer.
// pix is stored top row first, as framebuf.ColorBuffer lays it out.
type Presenter interface {
	Present(pix []framebuf.Color, w, h int) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(pix []framebuf.Color, w, h int) error

func (f PresenterFunc) Present(pix []framebuf.Color, w, h int) error { return f(pix, w, h) }

// Discard drops every frame.
var Discard Presenter = PresenterFunc(func([]framebuf.Color, int, int) error { return nil })
