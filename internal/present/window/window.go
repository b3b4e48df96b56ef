// Package window presents frames in a desktop window and turns key presses
// into camera events.
package window

import (
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"softrender/internal/framebuf"
	"softrender/internal/present"
)

// Step renders the next frame in response to ev and presents it through
// the window. Returning present.ErrExit closes the window cleanly.
type Step func(ev present.Event) error

var keymap = []struct {
	key ebiten.Key
	ev  present.Event
}{
	{ebiten.KeyEscape, present.Exit},
	{ebiten.KeyW, present.Go},
	{ebiten.KeyS, present.Back},
	{ebiten.KeyA, present.TurnLeft},
	{ebiten.KeyD, present.TurnRight},
	{ebiten.KeyQ, present.Up},
	{ebiten.KeyZ, present.Down},
}

// Window is a live Presenter. Frames handed to Present are shown on the
// next redraw.
type Window struct {
	title  string
	width  int
	height int
	zoom   int

	mu    sync.Mutex
	frame *image.NRGBA
	dirty bool

	screen *ebiten.Image
	step   Step
}

// New creates a window for w×h frames, shown zoom times larger.
func New(title string, w, h, zoom int) *Window {
	if zoom < 1 {
		zoom = 1
	}
	return &Window{title: title, width: w, height: h, zoom: zoom}
}

// Present implements present.Presenter.
func (win *Window) Present(pix []framebuf.Color, w, h int) error {
	img := framebuf.ToNRGBA(pix, w, h)
	win.mu.Lock()
	win.frame = img
	win.dirty = true
	win.mu.Unlock()
	return nil
}

// Run opens the window and calls step once per tick with the polled event.
// It blocks until the window closes or step fails.
func (win *Window) Run(step Step) error {
	win.step = step
	ebiten.SetWindowTitle(win.title)
	ebiten.SetWindowSize(win.width*win.zoom, win.height*win.zoom)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(win)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (win *Window) Update() error {
	ev := poll()
	if win.step == nil {
		if ev == present.Exit {
			return ebiten.Termination
		}
		return nil
	}
	if err := win.step(ev); err != nil {
		if errors.Is(err, present.ErrExit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game.
func (win *Window) Draw(screen *ebiten.Image) {
	win.mu.Lock()
	frame, dirty := win.frame, win.dirty
	win.dirty = false
	win.mu.Unlock()
	if frame == nil {
		return
	}

	b := frame.Bounds()
	if win.screen == nil || win.screen.Bounds() != b {
		if win.screen != nil {
			win.screen.Deallocate()
		}
		win.screen = ebiten.NewImage(b.Dx(), b.Dy())
		dirty = true
	}
	if dirty {
		win.screen.WritePixels(frame.Pix)
	}
	screen.DrawImage(win.screen, nil)
}

// Layout implements ebiten.Game.
func (win *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return win.width, win.height
}

// poll returns the first mapped key pressed this tick.
func poll() present.Event {
	for _, k := range keymap {
		if inpututil.IsKeyJustPressed(k.key) {
			return k.ev
		}
	}
	return present.Nothing
}
