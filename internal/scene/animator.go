package scene

import (
	"context"
	"fmt"

	"softrender/internal/mesh"
	"softrender/internal/present"
	"softrender/internal/raster"
	"softrender/internal/transform"
)

// Animator spins a mesh about Axis by Step radians per frame.
type Animator struct {
	Renderer *Renderer
	Mesh     mesh.Provider
	Sampler  raster.Sampler
	// Base is applied before the per-frame rotation, typically Fit(Mesh).
	Base Mat4
	Axis Vec3
	Step float32
}

// Model returns the model transform of frame i.
func (a *Animator) Model(i int) Mat4 {
	return transform.Rotate(a.Axis, a.Step*float32(i)).Mul(a.Base)
}

// Render draws frame i into the renderer's buffers.
func (a *Animator) Render(i int) raster.Stats {
	return a.Renderer.RenderFrame(a.Mesh, a.Sampler, a.Model(i))
}

// Run renders and presents frames in order. Cancellation is checked before
// each frame; a frame already started always completes.
func (a *Animator) Run(ctx context.Context, frames int, p present.Presenter) (raster.Stats, error) {
	var total raster.Stats
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		total.Add(a.Render(i))
		if err := a.Renderer.Present(p); err != nil {
			return total, fmt.Errorf("scene: present frame %d: %w", i, err)
		}
	}
	return total, nil
}
